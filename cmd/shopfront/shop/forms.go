package shop

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/action"
	"shopfront/internal/api"
	"shopfront/internal/types"
)

// Overlay and auth-form key handling. While a dialog is up it captures all
// input; Esc always dismisses without issuing a call.

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.overlay = OverlayNone
		m.detailOrder = nil
		return m, nil
	}

	switch m.overlay {
	case OverlayCheckout:
		return m.handleCheckoutKey(msg)
	case OverlayConfirmRemove:
		return m.handleConfirmRemoveKey(msg)
	case OverlayConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	case OverlayProductForm:
		return m.handleProductFormKey(msg)
	case OverlayOrderStatus:
		return m.handleOrderStatusKey(msg)
	case OverlayOrderDetail:
		if msg.String() == "q" || msg.Type == tea.KeyEnter {
			m.overlay = OverlayNone
			m.detailOrder = nil
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleCheckoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.checkout.cycleFocus(+1)
		return m, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		m.checkout.cycleFocus(-1)
		return m, textinput.Blink
	case tea.KeyEnter:
		return m.submitCheckout()
	}

	var cmd tea.Cmd
	switch m.checkout.focus {
	case 0:
		m.checkout.address, cmd = m.checkout.address.Update(msg)
	case 1:
		m.checkout.email, cmd = m.checkout.email.Update(msg)
	case 2:
		m.checkout.remarks, cmd = m.checkout.remarks.Update(msg)
	}
	return m, cmd
}

// submitCheckout validates and places the order. Address and contact email
// are required before any request goes out; remarks stay optional.
func (m Model) submitCheckout() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	req := types.CheckoutRequest{
		ShippingAddress: trimmed(m.checkout.address),
		Email:           trimmed(m.checkout.email),
		Remarks:         trimmed(m.checkout.remarks),
	}
	client := m.client
	m.inFlight = true
	return m, m.runMutationCmd(action.Mutation{
		Name: "checkout",
		Validate: func() error {
			if req.ShippingAddress == "" || req.Email == "" {
				return &action.ValidationError{Msg: "Please fill in the shipping address and contact email"}
			}
			return nil
		},
		Call: func(ctx context.Context) error {
			_, err := client.CreateOrder(ctx, req)
			return err
		},
		Resync: []action.Followup{
			action.CloseOverlay,
			action.ResyncCart,
			action.ResyncOrders,
			action.ResyncBadge,
		},
	})
}

func (m Model) handleConfirmRemoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.overlay = OverlayNone
		return m, nil
	case "y", "enter":
		m.overlay = OverlayNone
		items := m.cart.Items()
		if m.inFlight || m.selected >= len(items) {
			return m, nil
		}
		itemID := items[m.selected].ID
		client := m.client
		m.inFlight = true
		return m, m.runMutationCmd(action.Mutation{
			Name: "remove-cart-item",
			Call: func(ctx context.Context) error {
				return client.RemoveCartItem(ctx, itemID)
			},
			Resync: []action.Followup{action.ResyncCart, action.ResyncBadge},
		})
	}
	return m, nil
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.overlay = OverlayNone
		return m, nil
	case "y", "enter":
		m.overlay = OverlayNone
		items := m.products.Items()
		if m.inFlight || m.selected >= len(items) {
			return m, nil
		}
		productID := items[m.selected].ID
		client := m.client
		m.inFlight = true
		return m, m.runMutationCmd(action.Mutation{
			Name: "delete-product",
			Call: func(ctx context.Context) error {
				return client.DeleteProduct(ctx, productID)
			},
			Resync: []action.Followup{action.ResyncProducts},
		})
	}
	return m, nil
}

func (m Model) handleProductFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.product.cycleFocus(+1)
		return m, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		m.product.cycleFocus(-1)
		return m, textinput.Blink
	case tea.KeyEnter:
		return m.submitProductForm()
	}

	var cmd tea.Cmd
	switch m.product.focus {
	case 0:
		m.product.name, cmd = m.product.name.Update(msg)
	case 1:
		m.product.desc, cmd = m.product.desc.Update(msg)
	case 2:
		m.product.price, cmd = m.product.price.Update(msg)
	case 3:
		m.product.stock, cmd = m.product.stock.Update(msg)
	case 4:
		m.product.imagePath, cmd = m.product.imagePath.Update(msg)
	}
	return m, cmd
}

// submitProductForm parses and validates the form, then runs the composite
// save (primary record first, optional image second).
func (m Model) submitProductForm() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	in, err := m.product.input()
	if err != nil {
		m.setNotice(err.Error(), true)
		return m, nil
	}
	m.inFlight = true
	return m, m.runProductSaveCmd(in, m.product.id, trimmed(m.product.imagePath))
}

// input parses the form fields into a request, reporting the first invalid
// field as a validation message.
func (f *productForm) input() (api.ProductInput, error) {
	name := trimmed(f.name)
	if name == "" {
		return api.ProductInput{}, &action.ValidationError{Msg: "Product name is required"}
	}
	price, err := strconv.ParseFloat(trimmed(f.price), 64)
	if err != nil || price < 0 {
		return api.ProductInput{}, &action.ValidationError{Msg: "Price must be a non-negative number"}
	}
	stock, err := strconv.Atoi(trimmed(f.stock))
	if err != nil || stock < 0 {
		return api.ProductInput{}, &action.ValidationError{Msg: "Stock must be a non-negative whole number"}
	}
	return api.ProductInput{
		Name:        name,
		Description: trimmed(f.desc),
		Price:       price,
		Stock:       stock,
	}, nil
}

func (m Model) handleOrderStatusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := types.AllStatuses()
	switch msg.String() {
	case "up", "k":
		if m.statusPick > 0 {
			m.statusPick--
		}
		return m, nil
	case "down", "j":
		if m.statusPick < len(statuses)-1 {
			m.statusPick++
		}
		return m, nil
	case "enter":
		if m.inFlight || m.detailOrder == nil {
			return m, nil
		}
		orderID := m.detailOrder.ID
		status := statuses[m.statusPick]
		client := m.client
		m.inFlight = true
		return m, m.runMutationCmd(action.Mutation{
			Name: "update-order-status",
			Call: func(ctx context.Context) error {
				return client.UpdateOrderStatus(ctx, orderID, status)
			},
			Resync: []action.Followup{action.CloseOverlay, action.ResyncAdminOrders},
		})
	}
	return m, nil
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	registering := m.viewMode == ViewRegister

	switch msg.Type {
	case tea.KeyEsc:
		m.viewMode = ViewStorefront
		gen := m.products.Begin()
		return m, m.fetchProductsCmd(gen)
	case tea.KeyCtrlR:
		if !registering {
			m.viewMode = ViewRegister
			m.auth = newAuthForm()
			return m, textinput.Blink
		}
	case tea.KeyCtrlL:
		if registering {
			m.viewMode = ViewLogin
			m.auth = newAuthForm()
			return m, textinput.Blink
		}
	case tea.KeyTab, tea.KeyDown:
		m.auth.cycleFocus(+1, registering)
		return m, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		m.auth.cycleFocus(-1, registering)
		return m, textinput.Blink
	case tea.KeyEnter:
		if registering {
			return m.submitRegister()
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	switch m.auth.focus {
	case 0:
		m.auth.username, cmd = m.auth.username.Update(msg)
	case 1:
		if registering {
			m.auth.email, cmd = m.auth.email.Update(msg)
		} else {
			m.auth.password, cmd = m.auth.password.Update(msg)
		}
	case 2:
		m.auth.password, cmd = m.auth.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	username := trimmed(m.auth.username)
	password := m.auth.password.Value()
	client := m.client
	m.inFlight = true
	return m, m.runMutationCmd(action.Mutation{
		Name: "login",
		Validate: func() error {
			if username == "" || password == "" {
				return &action.ValidationError{Msg: "Please enter your username and password"}
			}
			return nil
		},
		Call: func(ctx context.Context) error {
			return client.Login(ctx, username, password)
		},
	})
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	username := trimmed(m.auth.username)
	email := trimmed(m.auth.email)
	password := m.auth.password.Value()
	client := m.client
	m.inFlight = true
	return m, m.runMutationCmd(action.Mutation{
		Name: "register",
		Validate: func() error {
			if username == "" || email == "" || password == "" {
				return &action.ValidationError{Msg: "Please fill in username, email and password"}
			}
			return nil
		},
		Call: func(ctx context.Context) error {
			return client.Register(ctx, username, email, password)
		},
	})
}

// Focus cycling keeps exactly one field active per form.

func (f *checkoutForm) cycleFocus(delta int) {
	f.focus = wrap(f.focus+delta, 3)
	inputs := []*textinput.Model{&f.address, &f.email, &f.remarks}
	for i, in := range inputs {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *productForm) cycleFocus(delta int) {
	f.focus = wrap(f.focus+delta, 5)
	inputs := []*textinput.Model{&f.name, &f.desc, &f.price, &f.stock, &f.imagePath}
	for i, in := range inputs {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *authForm) cycleFocus(delta int, registering bool) {
	n := 2
	inputs := []*textinput.Model{&f.username, &f.password}
	if registering {
		n = 3
		inputs = []*textinput.Model{&f.username, &f.email, &f.password}
	}
	f.focus = wrap(f.focus+delta, n)
	for i, in := range inputs {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
