package shop

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/action"
	"shopfront/internal/api"
	"shopfront/internal/logging"
	"shopfront/internal/session"
	"shopfront/internal/types"
)

// Update is the single-threaded event loop. Every branch either mutates the
// model and returns, or issues commands whose completions come back here.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case initMsg:
		gen := m.products.Begin()
		return m, tea.Batch(m.resolveSessionCmd(ViewStorefront), m.fetchProductsCmd(gen))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionMsg:
		return m.handleSession(msg)

	case productsMsg:
		m.products.Apply(msg.gen, msg.items, msg.err)
		m.clampSelection()
		return m, nil

	case cartMsg:
		m.cart.Apply(msg.gen, msg.items, msg.err)
		m.clampSelection()
		return m, nil

	case ordersMsg:
		m.orders.Apply(msg.gen, msg.items, msg.err)
		return m, nil

	case adminOrdersMsg:
		m.adminOrders.Apply(msg.gen, msg.items, msg.err)
		m.clampSelection()
		return m, nil

	case recentOrdersMsg:
		m.recentOrders.Apply(msg.gen, msg.items, msg.err)
		return m, nil

	case summaryMsg:
		if msg.gen == m.summaryGen {
			if msg.err != nil {
				m.summary = nil
				m.summaryErr = api.UserMessage(msg.err)
			} else {
				m.summary = msg.summary
				m.summaryErr = ""
			}
		}
		return m, nil

	case badgeMsg:
		m.badge.Set(msg.count)
		return m, nil

	case productDetailMsg:
		if msg.err != nil {
			m.setNotice(api.UserMessage(msg.err), true)
			return m, nil
		}
		m.product = filledProductForm(*msg.product)
		m.overlay = OverlayProductForm
		return m, textinput.Blink

	case orderDetailMsg:
		if msg.err != nil {
			m.setNotice(api.UserMessage(msg.err), true)
			return m, nil
		}
		m.detailOrder = msg.order
		m.overlay = OverlayOrderDetail
		return m, nil

	case redirectLoginMsg:
		m.viewMode = ViewLogin
		m.auth = newAuthForm()
		m.inFlight = false
		return m, textinput.Blink

	case mutationMsg:
		return m.handleMutation(msg)
	}

	return m, nil
}

// handleSession applies a session resolution: update the navbar identity,
// then gate the view the user was navigating to. Authorization failures
// redirect and never render an error notice.
func (m Model) handleSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	m.user = msg.user

	var cmds []tea.Cmd
	if m.user != nil {
		cmds = append(cmds, m.refreshBadgeCmd())
	} else {
		m.badge.Set(0)
	}

	switch msg.target {
	case ViewStorefront:
		// Navbar-only resolution; the storefront is public.

	case ViewCart, ViewOrders:
		if session.RequireUser(m.user) == session.GateLogin {
			m.viewMode = ViewLogin
			m.auth = newAuthForm()
			return m, tea.Batch(append(cmds, textinput.Blink)...)
		}
		cmds = append(cmds, m.enterGated(msg.target))

	case ViewAdminProducts, ViewAdminOrders, ViewReport:
		if session.RequireAdmin(m.user) == session.GateHome {
			m.viewMode = ViewStorefront
			gen := m.products.Begin()
			return m, tea.Batch(append(cmds, m.fetchProductsCmd(gen))...)
		}
		cmds = append(cmds, m.enterGated(msg.target))
	}

	return m, tea.Batch(cmds...)
}

// enterGated switches to an authorized view and begins its fetches. Only
// called after the session gate has passed.
func (m *Model) enterGated(target ViewMode) tea.Cmd {
	m.viewMode = target
	m.selected = 0
	logging.UI("entering view %d", target)

	switch target {
	case ViewCart:
		gen := m.cart.Begin()
		return m.fetchCartCmd(gen)
	case ViewOrders:
		gen := m.orders.Begin()
		return m.fetchOrdersCmd(gen)
	case ViewAdminProducts:
		gen := m.products.Begin()
		return m.fetchProductsCmd(gen)
	case ViewAdminOrders:
		gen := m.adminOrders.Begin()
		return m.fetchAdminOrdersCmd(gen, m.statusFilter)
	case ViewReport:
		m.summaryGen++
		m.summary = nil
		m.summaryErr = ""
		gen := m.recentOrders.Begin()
		// The original fires both report requests concurrently; so do we.
		return tea.Batch(m.fetchSummaryCmd(m.summaryGen), m.fetchRecentOrdersCmd(gen))
	}
	return nil
}

// handleMutation is the guaranteed cleanup point for every mutation: the
// in-flight flag clears on all branches before anything else happens.
func (m Model) handleMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	m.inFlight = false
	out := msg.outcome

	if out.Skipped {
		return m, nil
	}
	if !out.OK() {
		// Failure leaves every fragment untouched: no refetch, filters and
		// forms keep their state.
		m.setNotice(out.UserMessage(), true)
		return m, nil
	}

	notice := msg.notice
	if notice == "" {
		notice = successNotice(out.Name)
	}
	m.setNotice(notice, false)

	var cmds []tea.Cmd
	for _, f := range out.Resync {
		switch f {
		case action.ResyncCart:
			gen := m.cart.Begin()
			cmds = append(cmds, m.fetchCartCmd(gen))
		case action.ResyncProducts:
			gen := m.products.Begin()
			cmds = append(cmds, m.fetchProductsCmd(gen))
		case action.ResyncOrders:
			gen := m.orders.Begin()
			cmds = append(cmds, m.fetchOrdersCmd(gen))
		case action.ResyncAdminOrders:
			gen := m.adminOrders.Begin()
			cmds = append(cmds, m.fetchAdminOrdersCmd(gen, m.statusFilter))
		case action.ResyncBadge:
			cmds = append(cmds, m.refreshBadgeCmd())
		case action.CloseOverlay:
			m.overlay = OverlayNone
			m.checkout = newCheckoutForm()
			m.product = newProductForm()
		}
	}

	// A few mutations also navigate.
	switch out.Name {
	case "checkout":
		m.viewMode = ViewOrders
	case "login":
		m.viewMode = ViewStorefront
		m.auth = newAuthForm()
		gen := m.products.Begin()
		cmds = append(cmds, m.resolveSessionCmd(ViewStorefront), m.fetchProductsCmd(gen))
	case "register":
		m.viewMode = ViewLogin
		m.auth = newAuthForm()
	case "logout":
		m.user = nil
		m.badge.Set(0)
		m.viewMode = ViewStorefront
		gen := m.products.Begin()
		cmds = append(cmds, m.fetchProductsCmd(gen))
	}

	return m, tea.Batch(cmds...)
}

func successNotice(name string) string {
	switch name {
	case "add-to-cart":
		return "Added to cart"
	case "update-cart-quantity":
		return "Quantity updated"
	case "remove-cart-item":
		return "Item removed"
	case "checkout":
		return "Order created"
	case "create-product":
		return "Product created"
	case "update-product":
		return "Product updated"
	case "delete-product":
		return "Product deleted"
	case "update-order-status":
		return "Order status updated"
	case "login":
		return "Signed in"
	case "register":
		return "Account created, please sign in"
	case "logout":
		return "Signed out"
	default:
		return "Done"
	}
}

// handleKey routes keys to the active overlay, the auth views, or the page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.overlay != OverlayNone {
		return m.handleOverlayKey(msg)
	}
	if m.viewMode == ViewLogin || m.viewMode == ViewRegister {
		return m.handleAuthKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "1":
		return m.navigate(ViewStorefront)
	case "2":
		return m.navigate(ViewCart)
	case "3":
		return m.navigate(ViewOrders)
	case "4":
		return m.navigate(ViewAdminProducts)
	case "5":
		return m.navigate(ViewAdminOrders)
	case "6":
		return m.navigate(ViewReport)

	case "l":
		if m.user == nil {
			m.viewMode = ViewLogin
			m.auth = newAuthForm()
			return m, textinput.Blink
		}
	case "o":
		if m.user != nil && !m.inFlight {
			m.inFlight = true
			client := m.client
			return m, m.runMutationCmd(action.Mutation{
				Name: "logout",
				Call: client.Logout,
			})
		}

	case "r":
		return m.reloadCurrent()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		m.selected++
		m.clampSelection()
		return m, nil
	}

	switch m.viewMode {
	case ViewStorefront:
		return m.handleStorefrontKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewAdminProducts:
		return m.handleAdminProductsKey(msg)
	case ViewAdminOrders:
		return m.handleAdminOrdersKey(msg)
	}
	return m, nil
}

// navigate switches views. The storefront is public; everything else
// resolves the session first and fetches only after the gate passes.
func (m Model) navigate(target ViewMode) (tea.Model, tea.Cmd) {
	m.notice = ""
	if target == ViewStorefront {
		m.viewMode = ViewStorefront
		m.selected = 0
		gen := m.products.Begin()
		return m, tea.Batch(m.resolveSessionCmd(ViewStorefront), m.fetchProductsCmd(gen))
	}
	return m, m.resolveSessionCmd(target)
}

// reloadCurrent refetches the active view's data.
func (m Model) reloadCurrent() (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewStorefront:
		gen := m.products.Begin()
		return m, m.fetchProductsCmd(gen)
	case ViewCart, ViewOrders, ViewAdminProducts, ViewAdminOrders, ViewReport:
		return m, m.resolveSessionCmd(m.viewMode)
	}
	return m, nil
}

func (m Model) handleStorefrontKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "enter":
		if m.inFlight {
			return m, nil
		}
		items := m.products.Items()
		if m.selected >= len(items) {
			return m, nil
		}
		product := items[m.selected]
		if !product.InStock() {
			// Mirrors the disabled button: no request for an empty shelf.
			return m, nil
		}
		m.inFlight = true
		return m, m.addToCartCmd(product.ID)
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cart.Items()
	switch msg.String() {
	case "+", "=":
		return m.changeQuantity(+1)
	case "-", "_":
		return m.changeQuantity(-1)
	case "x", "d":
		if m.selected < len(items) {
			m.overlay = OverlayConfirmRemove
		}
		return m, nil
	case "c":
		if len(items) > 0 {
			m.checkout = newCheckoutForm()
			m.overlay = OverlayCheckout
			return m, textinput.Blink
		}
	}
	return m, nil
}

// changeQuantity submits the selected line's quantity ± 1. A result below 1
// is silently ignored, exactly like the original quantity control.
func (m Model) changeQuantity(delta int) (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	items := m.cart.Items()
	if m.selected >= len(items) {
		return m, nil
	}
	item := items[m.selected]
	quantity := item.Quantity + delta

	client := m.client
	m.inFlight = true
	return m, m.runMutationCmd(action.Mutation{
		Name: "update-cart-quantity",
		Validate: func() error {
			if quantity < 1 {
				return action.ErrSkip
			}
			return nil
		},
		Call: func(ctx context.Context) error {
			return client.UpdateCartItem(ctx, item.ID, quantity)
		},
		Resync: []action.Followup{action.ResyncCart, action.ResyncBadge},
	})
}

func (m Model) handleAdminProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.products.Items()
	switch msg.String() {
	case "n":
		m.product = newProductForm()
		m.overlay = OverlayProductForm
		return m, textinput.Blink
	case "e", "enter":
		if m.selected < len(items) {
			return m, m.fetchProductDetailCmd(items[m.selected].ID)
		}
	case "d":
		if m.selected < len(items) {
			m.overlay = OverlayConfirmDelete
		}
	}
	return m, nil
}

func (m Model) handleAdminOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.adminOrders.Items()
	switch msg.String() {
	case "f":
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.selected = 0
		gen := m.adminOrders.Begin()
		return m, m.fetchAdminOrdersCmd(gen, m.statusFilter)
	case "v", "enter":
		if m.selected < len(items) {
			return m, m.fetchOrderDetailCmd(items[m.selected].ID)
		}
	case "u":
		if m.selected < len(items) {
			m.detailOrder = &items[m.selected]
			m.statusPick = indexOfStatus(items[m.selected].Status)
			m.overlay = OverlayOrderStatus
		}
	}
	return m, nil
}

// nextStatusFilter steps from "all" through the four statuses and back to
// "all". The empty value means all and produces no query parameter.
func nextStatusFilter(current types.OrderStatus) types.OrderStatus {
	statuses := types.AllStatuses()
	if current == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == current {
			if i == len(statuses)-1 {
				return ""
			}
			return statuses[i+1]
		}
	}
	return ""
}

func indexOfStatus(s types.OrderStatus) int {
	for i, st := range types.AllStatuses() {
		if st == s {
			return i
		}
	}
	return 0
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *Model) clampSelection() {
	n := 0
	switch m.viewMode {
	case ViewStorefront, ViewAdminProducts:
		n = len(m.products.Items())
	case ViewCart:
		n = len(m.cart.Items())
	case ViewAdminOrders:
		n = len(m.adminOrders.Items())
	}
	if n == 0 {
		m.selected = 0
	} else if m.selected >= n {
		m.selected = n - 1
	}
}

// filledProductForm builds the edit form from a fetched product, mirroring
// the original's form fill before showing the dialog.
func filledProductForm(p types.Product) productForm {
	form := newProductForm()
	form.id = p.ID
	form.name.SetValue(p.Name)
	form.desc.SetValue(p.Description)
	form.price.SetValue(strconv.FormatFloat(p.Price, 'f', 2, 64))
	form.stock.SetValue(strconv.Itoa(p.Stock))
	return form
}

func trimmed(in textinput.Model) string {
	return strings.TrimSpace(in.Value())
}
