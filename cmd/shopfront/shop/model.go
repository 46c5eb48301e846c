// Package shop implements the interactive storefront interface using
// bubbletea. One program hosts every view: the product grid, the cart with
// checkout, order history, and the admin console (products, orders, sales
// report). All work runs as asynchronous continuations on the single update
// loop; session resolution strictly precedes any gated fetch.
package shop

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"shopfront/cmd/shopfront/ui"
	"shopfront/internal/api"
	"shopfront/internal/config"
	"shopfront/internal/nav"
	"shopfront/internal/session"
	"shopfront/internal/types"
	"shopfront/internal/view"
	"shopfront/internal/viewstate"
)

// ViewMode selects the active page.
type ViewMode int

const (
	ViewStorefront ViewMode = iota
	ViewCart
	ViewOrders
	ViewAdminProducts
	ViewAdminOrders
	ViewReport
	ViewLogin
	ViewRegister
)

// Overlay selects the active modal dialog, if any. While an overlay is up it
// captures all input; Esc dismisses without a call.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayCheckout
	OverlayConfirmRemove
	OverlayConfirmDelete
	OverlayProductForm
	OverlayOrderStatus
	OverlayOrderDetail
)

// checkoutForm holds the checkout dialog fields.
type checkoutForm struct {
	address textinput.Model
	email   textinput.Model
	remarks textinput.Model
	focus   int
}

// productForm holds the add/edit product dialog fields. An editing id of
// zero means "create". The image path is optional; uploading it is the
// secondary step of the composite save.
type productForm struct {
	id        int64
	name      textinput.Model
	desc      textinput.Model
	price     textinput.Model
	stock     textinput.Model
	imagePath textinput.Model
	focus     int
}

// authForm holds the login/register dialog fields.
type authForm struct {
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int
}

// Model is the bubbletea model for the whole storefront client.
type Model struct {
	// UI components
	spinner  spinner.Model
	styles   ui.Styles
	frags    view.Styles
	renderer *glamour.TermRenderer

	viewMode ViewMode
	overlay  Overlay

	// Collection panes, one container per rendered fragment.
	products     viewstate.Container[types.Product]
	cart         viewstate.Container[types.CartItem]
	orders       viewstate.Container[types.Order]
	adminOrders  viewstate.Container[types.Order]
	recentOrders viewstate.Container[types.Order]

	// Report aggregate (not a collection; tracked with its own generation).
	summary    *types.SalesSummary
	summaryErr string
	summaryGen int

	// Shared navigation state
	badge nav.Badge
	user  *types.User

	// Selection and filters
	selected     int
	statusFilter types.OrderStatus // empty means all
	statusPick   int
	detailOrder  *types.Order

	// Forms
	checkout checkoutForm
	product  productForm
	auth     authForm

	// Transient state
	notice    string
	noticeErr bool
	inFlight  bool
	width     int
	height    int
	ready     bool

	// Backend
	client   *api.Client
	resolver *session.Resolver
	config   *config.Config
}

// New creates the storefront model.
func New(cfg *config.Config, client *api.Client) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(72),
		)
	}

	m := Model{
		spinner:      sp,
		styles:       styles,
		frags:        view.DefaultStyles(),
		renderer:     renderer,
		viewMode:     ViewStorefront,
		products:     viewstate.NewContainer[types.Product]("No products available yet"),
		cart:         viewstate.NewContainer[types.CartItem]("Your cart is empty"),
		orders:       viewstate.NewContainer[types.Order]("You have no orders yet"),
		adminOrders:  viewstate.NewContainer[types.Order]("No orders found"),
		recentOrders: viewstate.NewContainer[types.Order]("No order data yet"),
		client:       client,
		resolver:     session.NewResolver(client),
		config:       cfg,
	}
	m.checkout = newCheckoutForm()
	m.product = newProductForm()
	m.auth = newAuthForm()
	return m
}

// Init starts the spinner and kicks off the first load. The load itself is
// driven from the update loop so its generation token lands on the model the
// program actually keeps.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return initMsg{} },
	)
}

func newCheckoutForm() checkoutForm {
	address := textinput.New()
	address.Placeholder = "Shipping address"
	address.CharLimit = 200
	address.Width = 48
	address.Focus()

	email := textinput.New()
	email.Placeholder = "Contact email"
	email.CharLimit = 120
	email.Width = 48

	remarks := textinput.New()
	remarks.Placeholder = "Remarks (optional)"
	remarks.CharLimit = 200
	remarks.Width = 48

	return checkoutForm{address: address, email: email, remarks: remarks}
}

func newProductForm() productForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 120
	name.Width = 40
	name.Focus()

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 400
	desc.Width = 40

	price := textinput.New()
	price.Placeholder = "Price, e.g. 19.90"
	price.CharLimit = 12
	price.Width = 40

	stock := textinput.New()
	stock.Placeholder = "Stock"
	stock.CharLimit = 8
	stock.Width = 40

	imagePath := textinput.New()
	imagePath.Placeholder = "Image file path (optional)"
	imagePath.CharLimit = 260
	imagePath.Width = 40

	return productForm{name: name, desc: desc, price: price, stock: stock, imagePath: imagePath}
}

func newAuthForm() authForm {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 120
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	return authForm{username: username, email: email, password: password}
}
