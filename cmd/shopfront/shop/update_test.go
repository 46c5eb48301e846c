package shop

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/action"
	"shopfront/internal/api"
	"shopfront/internal/config"
	"shopfront/internal/types"
	"shopfront/internal/viewstate"
)

// newTestModel builds a model against an unreachable backend. Tests that
// need a response execute nothing; they feed messages straight into Update.
func newTestModel(t *testing.T) Model {
	t.Helper()
	client, err := api.New("http://127.0.0.1:1/api", 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	m := New(config.DefaultConfig(), client)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func withCart(m Model, items ...types.CartItem) Model {
	gen := m.cart.Begin()
	m.cart.Apply(gen, items, nil)
	m.viewMode = ViewCart
	return m
}

func TestQuantityBelowOneIsSilentlyIgnored(t *testing.T) {
	m := withCart(newTestModel(t), types.CartItem{
		ID: 7, Quantity: 1, Product: types.Product{ID: 1, Name: "Mug", Price: 10, Stock: 5},
	})

	m, cmd := press(m, "-")
	if cmd == nil {
		t.Fatal("expected a mutation command")
	}

	// The skip happens in local validation; no request leaves the process.
	raw := cmd()
	msg, ok := raw.(mutationMsg)
	if !ok {
		t.Fatalf("expected mutationMsg, got %T", raw)
	}
	if !msg.outcome.Skipped {
		t.Error("decrement below 1 should be skipped")
	}

	updated, _ := m.Update(msg)
	result := updated.(Model)
	if result.inFlight {
		t.Error("in-flight flag must clear on skip")
	}
	if result.notice != "" {
		t.Errorf("skip must show no message, got %q", result.notice)
	}
}

func TestCheckoutRequiresAddressAndEmail(t *testing.T) {
	m := withCart(newTestModel(t), types.CartItem{
		ID: 7, Quantity: 2, Product: types.Product{ID: 1, Name: "Mug", Price: 10, Stock: 5},
	})

	m, _ = press(m, "c")
	if m.overlay != OverlayCheckout {
		t.Fatal("expected checkout overlay")
	}

	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("expected a mutation command")
	}
	msg := cmd().(mutationMsg)
	if !msg.outcome.Blocked {
		t.Error("empty checkout form should be blocked before any call")
	}

	updated, _ := m.Update(msg)
	result := updated.(Model)
	if result.notice != "Please fill in the shipping address and contact email" {
		t.Errorf("unexpected notice %q", result.notice)
	}
	if !result.noticeErr {
		t.Error("validation message should render as an error")
	}
	if result.viewMode != ViewCart {
		t.Error("a blocked checkout must not navigate")
	}
}

func TestStaleProductsCompletionDropped(t *testing.T) {
	m := newTestModel(t)

	stale := m.products.Begin()
	latest := m.products.Begin()

	updated, _ := m.Update(productsMsg{gen: latest, items: []types.Product{{ID: 2, Name: "New", Price: 1, Stock: 1}}})
	m = updated.(Model)

	updated, _ = m.Update(productsMsg{gen: stale, items: []types.Product{{ID: 1, Name: "Old", Price: 1, Stock: 1}}})
	m = updated.(Model)

	items := m.products.Items()
	if len(items) != 1 || items[0].Name != "New" {
		t.Errorf("stale response must not overwrite the newer one, got %+v", items)
	}
}

func TestMutationFailureLeavesStateUntouched(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = ViewAdminOrders
	m.statusFilter = types.StatusPending
	gen := m.adminOrders.Begin()
	m.adminOrders.Apply(gen, []types.Order{{ID: 1, Status: types.StatusPending}}, nil)
	m.inFlight = true

	updated, cmd := m.Update(mutationMsg{outcome: action.Outcome{
		Name: "update-order-status",
		Err:  &api.StatusError{Code: 500},
	}})
	result := updated.(Model)

	if cmd != nil {
		t.Error("a failed mutation must not trigger refetches")
	}
	if result.inFlight {
		t.Error("in-flight flag must clear on failure")
	}
	if result.statusFilter != types.StatusPending {
		t.Error("filter must survive a failed mutation")
	}
	if len(result.adminOrders.Items()) != 1 {
		t.Error("list must survive a failed mutation")
	}
	if result.notice != "The server encountered an error, please try again later" {
		t.Errorf("unexpected notice %q", result.notice)
	}
}

func TestMutationSuccessRunsFollowups(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = ViewCart
	m.inFlight = true

	updated, cmd := m.Update(mutationMsg{outcome: action.Outcome{
		Name:   "remove-cart-item",
		Resync: []action.Followup{action.ResyncCart, action.ResyncBadge},
	}})
	result := updated.(Model)

	if cmd == nil {
		t.Fatal("expected refetch commands")
	}
	if result.cart.State() != viewstate.StateLoading {
		t.Error("cart should be reloading after the mutation")
	}
	if result.notice != "Item removed" {
		t.Errorf("unexpected notice %q", result.notice)
	}
	if result.noticeErr {
		t.Error("success notice should not render as an error")
	}
}

func TestCloseOverlayFollowupResetsForms(t *testing.T) {
	m := newTestModel(t)
	m.overlay = OverlayCheckout
	m.checkout.address.SetValue("1 Main St")

	updated, _ := m.Update(mutationMsg{outcome: action.Outcome{
		Name:   "checkout",
		Resync: []action.Followup{action.CloseOverlay, action.ResyncCart, action.ResyncBadge},
	}})
	result := updated.(Model)

	if result.overlay != OverlayNone {
		t.Error("overlay should close")
	}
	if result.checkout.address.Value() != "" {
		t.Error("form should reset after a successful checkout")
	}
	if result.viewMode != ViewOrders {
		t.Error("checkout success navigates to the order history")
	}
}

func TestCheckoutSuccessReloadsOrders(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = ViewCart
	m.overlay = OverlayCheckout
	gen := m.orders.Begin()
	m.orders.Apply(gen, []types.Order{{ID: 4, TotalAmount: 12, Status: types.StatusPending}}, nil)

	updated, cmd := m.Update(mutationMsg{outcome: action.Outcome{
		Name: "checkout",
		Resync: []action.Followup{
			action.CloseOverlay,
			action.ResyncCart,
			action.ResyncOrders,
			action.ResyncBadge,
		},
	}})
	result := updated.(Model)

	if cmd == nil {
		t.Fatal("expected refetch commands")
	}
	if result.viewMode != ViewOrders {
		t.Error("checkout success navigates to the order history")
	}
	if result.orders.State() != viewstate.StateLoading {
		t.Error("order history should reload so the new order appears")
	}
}

func TestRedirectLoginMessage(t *testing.T) {
	m := newTestModel(t)
	m.inFlight = true

	updated, _ := m.Update(redirectLoginMsg{})
	result := updated.(Model)

	if result.viewMode != ViewLogin {
		t.Error("expected the login view")
	}
	if result.inFlight {
		t.Error("in-flight flag must clear on redirect")
	}
	if result.notice != "" {
		t.Error("an auth redirect never shows an error notice")
	}
}

func TestSessionGateRedirects(t *testing.T) {
	t.Run("cart without a session goes to login", func(t *testing.T) {
		m := newTestModel(t)
		updated, _ := m.Update(sessionMsg{user: nil, target: ViewCart})
		if updated.(Model).viewMode != ViewLogin {
			t.Error("expected the login view")
		}
	})

	t.Run("admin view without the role goes home", func(t *testing.T) {
		m := newTestModel(t)
		updated, _ := m.Update(sessionMsg{
			user:   &types.User{Username: "bob", Role: types.RoleCustomer},
			target: ViewReport,
		})
		result := updated.(Model)
		if result.viewMode != ViewStorefront {
			t.Error("expected the storefront")
		}
		if result.notice != "" {
			t.Error("role gating never shows an error notice")
		}
	})

	t.Run("admin view with the role enters and fetches", func(t *testing.T) {
		m := newTestModel(t)
		updated, cmd := m.Update(sessionMsg{
			user:   &types.User{Username: "root", Role: types.RoleAdmin},
			target: ViewAdminOrders,
		})
		result := updated.(Model)
		if result.viewMode != ViewAdminOrders {
			t.Error("expected the admin order view")
		}
		if cmd == nil {
			t.Error("entering a gated view should start its fetch")
		}
	})
}

func TestLogoutResetsSessionState(t *testing.T) {
	m := newTestModel(t)
	m.user = &types.User{Username: "alice", Role: types.RoleCustomer}
	m.badge.Set(3)
	m.viewMode = ViewOrders
	m.inFlight = true

	updated, cmd := m.Update(mutationMsg{outcome: action.Outcome{Name: "logout"}})
	result := updated.(Model)

	if result.user != nil {
		t.Error("logout clears the user")
	}
	if result.badge.Count() != 0 {
		t.Error("logout zeroes the badge")
	}
	if result.viewMode != ViewStorefront {
		t.Error("logout returns to the storefront")
	}
	if cmd == nil {
		t.Error("storefront should reload after logout")
	}
}

func TestOutOfStockProductNotAddable(t *testing.T) {
	m := newTestModel(t)
	gen := m.products.Begin()
	m.products.Apply(gen, []types.Product{{ID: 1, Name: "Mug", Price: 10, Stock: 0}}, nil)
	m.viewMode = ViewStorefront

	m, cmd := press(m, "a")
	if cmd != nil {
		t.Error("out-of-stock product must not issue a request")
	}
	if m.inFlight {
		t.Error("no mutation should be in flight")
	}
}

func TestNextStatusFilterCycles(t *testing.T) {
	order := []types.OrderStatus{
		types.StatusPending, types.StatusShipped,
		types.StatusDelivered, types.StatusCancelled, "",
	}
	current := types.OrderStatus("")
	for _, want := range order {
		current = nextStatusFilter(current)
		if current != want {
			t.Fatalf("expected %q, got %q", want, current)
		}
	}
}

func TestSelectionClampsToList(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = ViewStorefront
	m.selected = 5

	gen := m.products.Begin()
	updated, _ := m.Update(productsMsg{gen: gen, items: []types.Product{
		{ID: 1, Name: "Mug", Price: 10, Stock: 1},
		{ID: 2, Name: "Pen", Price: 5, Stock: 1},
	}})
	result := updated.(Model)

	if result.selected != 1 {
		t.Errorf("selection should clamp to the last row, got %d", result.selected)
	}
}

func TestEscDismissesOverlayWithoutCall(t *testing.T) {
	m := withCart(newTestModel(t), types.CartItem{
		ID: 7, Quantity: 1, Product: types.Product{ID: 1, Name: "Mug", Price: 10, Stock: 5},
	})
	m, _ = press(m, "x")
	if m.overlay != OverlayConfirmRemove {
		t.Fatal("expected the confirm overlay")
	}

	m, cmd := press(m, "esc")
	if m.overlay != OverlayNone {
		t.Error("esc should dismiss the overlay")
	}
	if cmd != nil {
		t.Error("dismissal must not issue a call")
	}
}

func TestProductFormValidation(t *testing.T) {
	f := newProductForm()
	f.name.SetValue("Mug")
	f.price.SetValue("abc")
	f.stock.SetValue("3")

	if _, err := f.input(); err == nil {
		t.Error("non-numeric price should fail validation")
	}

	f.price.SetValue("9.90")
	f.stock.SetValue("-1")
	if _, err := f.input(); err == nil {
		t.Error("negative stock should fail validation")
	}

	f.stock.SetValue("3")
	in, err := f.input()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Mug" || in.Price != 9.9 || in.Stock != 3 {
		t.Errorf("unexpected input %+v", in)
	}
}
