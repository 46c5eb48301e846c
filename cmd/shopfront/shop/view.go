package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopfront/cmd/shopfront/ui"
	"shopfront/internal/types"
	"shopfront/internal/view"
	"shopfront/internal/viewstate"
)

// View renders the full frame: header with navigation and the cart badge,
// the active page, any overlay, and the status bar. Rendering is a pure
// projection of the model; no fetch is ever triggered from here.
func (m Model) View() string {
	if !m.ready {
		return "Starting shopfront..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")

	if m.overlay != OverlayNone {
		sb.WriteString(m.renderOverlay())
	} else {
		sb.WriteString(m.renderPage())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.renderStatusBar())
	return sb.String()
}

func (m Model) renderHeader() string {
	nav := []string{m.navItem("1 Shop", ViewStorefront)}
	nav = append(nav, m.navItem("2 "+m.badge.Label(), ViewCart))
	nav = append(nav, m.navItem("3 Orders", ViewOrders))
	if m.user.IsAdmin() {
		nav = append(nav,
			m.navItem("4 Products", ViewAdminProducts),
			m.navItem("5 All orders", ViewAdminOrders),
			m.navItem("6 Report", ViewReport),
		)
	}

	identity := "[l] Sign in"
	if m.user != nil {
		identity = fmt.Sprintf("%s · [o] sign out", m.user.Username)
	}

	left := m.styles.Header.Render("Shopfront")
	middle := strings.Join(nav, " ")
	right := m.styles.Muted.Render(identity)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", middle, "  ", right)
}

func (m Model) navItem(label string, target ViewMode) string {
	if m.viewMode == target {
		return m.styles.NavOn.Render(label)
	}
	return m.styles.NavItem.Render(label)
}

func (m Model) renderPage() string {
	switch m.viewMode {
	case ViewStorefront:
		return m.renderStorefront()
	case ViewCart:
		return m.renderCart()
	case ViewOrders:
		return m.renderOrders()
	case ViewAdminProducts:
		return m.renderAdminProducts()
	case ViewAdminOrders:
		return m.renderAdminOrders()
	case ViewReport:
		return m.renderReport()
	case ViewLogin:
		return m.renderAuth(false)
	case ViewRegister:
		return m.renderAuth(true)
	}
	return ""
}

func (m Model) renderStorefront() string {
	title := m.styles.Title.Render("Products")

	idx := 0
	body := m.products.Render(func(p types.Product) string {
		card := view.ProductCard(m.frags, p)
		card = m.withCursor(card, idx == m.selected)
		idx++
		return card
	}, "\n", m.loadingLine("Loading products..."))

	out := title + "\n" + body

	if desc := m.selectedDescription(); desc != "" {
		out += "\n" + m.styles.Subtitle.Render("About this product") + "\n" + desc
	}
	return out
}

// selectedDescription renders the highlighted product's description as
// markdown below the grid; plain text when the renderer is unavailable.
func (m Model) selectedDescription() string {
	items := m.products.Items()
	if m.selected >= len(items) {
		return ""
	}
	desc := items[m.selected].Description
	if desc == "" {
		return ""
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(desc); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return m.styles.Body.Render(desc)
}

func (m Model) renderCart() string {
	title := m.styles.Title.Render("Your cart")

	idx := 0
	body := m.cart.Render(func(item types.CartItem) string {
		row := view.CartItemRow(m.frags, item)
		row = m.withCursor(row, idx == m.selected)
		idx++
		return row
	}, "\n", m.loadingLine("Loading cart..."))

	out := title + "\n" + body
	if m.cart.State() == viewstate.StateReady {
		out += "\n\n" + view.CartTotalLine(m.frags, m.cart.Items())
		out += "\n" + m.styles.Muted.Render("[c] Checkout")
	}
	return out
}

func (m Model) renderOrders() string {
	title := m.styles.Title.Render("Your orders")
	body := m.orders.Render(func(o types.Order) string {
		return view.OrderCard(m.frags, o)
	}, "\n", m.loadingLine("Loading orders..."))
	return title + "\n" + body
}

func (m Model) renderAdminProducts() string {
	title := m.styles.Title.Render("Manage products")

	switch m.products.State() {
	case viewstate.StateLoading:
		return title + "\n" + m.loadingLine("Loading products...")
	case viewstate.StateEmpty, viewstate.StateFailed:
		return title + "\n" + m.products.Message()
	}

	table := ui.NewSimpleTable("", []string{"", "ID", "Name", "Description", "Price", "Stock"})
	for i, p := range m.products.Items() {
		row := append([]string{cursorCell(i == m.selected)}, view.ProductRow(p)...)
		table.AddRow(row...)
	}
	hints := m.styles.Muted.Render("[n] New  [e] Edit  [d] Delete")
	return title + "\n" + table.View(m.styles) + "\n" + hints
}

func (m Model) renderAdminOrders() string {
	title := m.styles.Title.Render("All orders")
	filter := m.styles.Subtitle.Render("Filter: " + m.filterLabel() + "  [f] cycle")

	switch m.adminOrders.State() {
	case viewstate.StateLoading:
		return title + "\n" + filter + "\n" + m.loadingLine("Loading orders...")
	case viewstate.StateEmpty, viewstate.StateFailed:
		return title + "\n" + filter + "\n" + m.adminOrders.Message()
	}

	table := ui.NewSimpleTable("", []string{"", "ID", "User", "Amount", "Address", "Email", "Status", "Created"})
	for i, o := range m.adminOrders.Items() {
		row := append([]string{cursorCell(i == m.selected)}, view.OrderRow(m.frags, o)...)
		table.AddRow(row...)
	}
	hints := m.styles.Muted.Render("[v] View  [u] Update status")
	return title + "\n" + filter + "\n" + table.View(m.styles) + "\n" + hints
}

func (m Model) filterLabel() string {
	if m.statusFilter == "" {
		return "All statuses"
	}
	return view.StatusLabel(m.statusFilter)
}

func (m Model) renderReport() string {
	title := m.styles.Title.Render("Sales report")

	var summary string
	switch {
	case m.summaryErr != "":
		summary = m.styles.Error.Render(m.summaryErr)
	case m.summary == nil:
		summary = m.loadingLine("Loading summary...")
	default:
		summary = view.SalesSummaryPanel(m.frags, *m.summary)
	}

	recentTitle := m.styles.Subtitle.Render("Recent orders (latest 10)")
	var recent string
	switch m.recentOrders.State() {
	case viewstate.StateLoading:
		recent = m.loadingLine("Loading orders...")
	case viewstate.StateEmpty, viewstate.StateFailed:
		recent = m.recentOrders.Message()
	default:
		table := ui.NewSimpleTable("", []string{"ID", "Amount", "Status", "Created"})
		items := m.recentOrders.Items()
		if len(items) > 10 {
			items = items[:10]
		}
		for _, o := range items {
			table.AddRow(view.RecentOrderRow(m.frags, o)...)
		}
		recent = table.View(m.styles)
	}

	return title + "\n" + summary + "\n\n" + recentTitle + "\n" + recent
}

func (m Model) renderAuth(registering bool) string {
	title := "Sign in"
	hint := "[enter] Sign in  [ctrl+r] Create an account  [esc] Back"
	if registering {
		title = "Create account"
		hint = "[enter] Register  [ctrl+l] Back to sign in  [esc] Back"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.auth.username.View())
	sb.WriteString("\n")
	if registering {
		sb.WriteString(m.auth.email.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.auth.password.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render(hint))
	return m.styles.Content.Render(sb.String())
}

func (m Model) renderOverlay() string {
	switch m.overlay {
	case OverlayCheckout:
		return m.renderCheckoutOverlay()
	case OverlayConfirmRemove:
		return m.renderConfirm("Remove this item from your cart?")
	case OverlayConfirmDelete:
		return m.renderConfirm("Delete this product?")
	case OverlayProductForm:
		return m.renderProductFormOverlay()
	case OverlayOrderStatus:
		return m.renderOrderStatusOverlay()
	case OverlayOrderDetail:
		return m.renderOrderDetailOverlay()
	}
	return ""
}

func (m Model) renderCheckoutOverlay() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Checkout"))
	sb.WriteString("\n")
	sb.WriteString(m.checkout.address.View())
	sb.WriteString("\n")
	sb.WriteString(m.checkout.email.View())
	sb.WriteString("\n")
	sb.WriteString(m.checkout.remarks.View())
	sb.WriteString("\n\n")
	sb.WriteString(view.CartTotalLine(m.frags, m.cart.Items()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[enter] Place order  [esc] Cancel"))
	return m.styles.Overlay.Render(sb.String())
}

func (m Model) renderConfirm(question string) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Warning.Render(question))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("[y] Yes  [n] No"))
	return m.styles.Overlay.Render(sb.String())
}

func (m Model) renderProductFormOverlay() string {
	title := "New product"
	if m.product.id != 0 {
		title = fmt.Sprintf("Edit product #%d", m.product.id)
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.product.name.View())
	sb.WriteString("\n")
	sb.WriteString(m.product.desc.View())
	sb.WriteString("\n")
	sb.WriteString(m.product.price.View())
	sb.WriteString("\n")
	sb.WriteString(m.product.stock.View())
	sb.WriteString("\n")
	sb.WriteString(m.product.imagePath.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("[enter] Save  [esc] Cancel"))
	return m.styles.Overlay.Render(sb.String())
}

func (m Model) renderOrderStatusOverlay() string {
	var sb strings.Builder
	if m.detailOrder != nil {
		sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Order #%d status", m.detailOrder.ID)))
	} else {
		sb.WriteString(m.styles.Title.Render("Order status"))
	}
	sb.WriteString("\n")
	for i, s := range types.AllStatuses() {
		label := view.StatusLabel(s)
		if i == m.statusPick {
			sb.WriteString(m.styles.Selected.Render("▸ " + label))
		} else {
			sb.WriteString(m.styles.Body.Render("  " + label))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[enter] Apply  [esc] Cancel"))
	return m.styles.Overlay.Render(sb.String())
}

func (m Model) renderOrderDetailOverlay() string {
	if m.detailOrder == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(view.OrderCard(m.frags, *m.detailOrder))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[esc] Close"))
	return m.styles.Overlay.Render(sb.String())
}

func (m Model) renderStatusBar() string {
	parts := []string{m.styles.Badge.Render(m.badge.Label())}

	if m.inFlight {
		parts = append(parts, m.spinner.View()+m.styles.Muted.Render(" working..."))
	}

	if m.notice != "" {
		if m.noticeErr {
			parts = append(parts, m.styles.Error.Render(m.notice))
		} else {
			parts = append(parts, m.styles.Success.Render(m.notice))
		}
	}

	parts = append(parts, m.styles.Footer.Render(m.keyHints()))
	return strings.Join(parts, "  ")
}

func (m Model) keyHints() string {
	switch m.viewMode {
	case ViewStorefront:
		return "[a] Add to cart  [r] Reload  [q] Quit"
	case ViewCart:
		return "[+/-] Quantity  [x] Remove  [c] Checkout  [q] Quit"
	case ViewAdminOrders:
		return "[f] Filter  [u] Status  [q] Quit"
	case ViewLogin, ViewRegister:
		return ""
	default:
		return "[r] Reload  [q] Quit"
	}
}

func (m Model) withCursor(block string, on bool) string {
	cursor := "  "
	if on {
		cursor = m.styles.Prompt.Render("▸ ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cursor, block)
}

func cursorCell(on bool) string {
	if on {
		return "▸"
	}
	return ""
}

func (m Model) loadingLine(text string) string {
	return m.spinner.View() + " " + m.styles.Muted.Render(text)
}
