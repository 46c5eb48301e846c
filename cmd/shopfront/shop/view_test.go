package shop

import (
	"strings"
	"testing"

	"shopfront/internal/api"
	"shopfront/internal/types"
)

func TestViewShowsBadgeCount(t *testing.T) {
	m := newTestModel(t)
	m.badge.Set(2)

	out := m.View()
	if !strings.Contains(out, "Cart (2)") {
		t.Error("header should carry the badge count")
	}
}

func TestViewHidesAdminLinksForCustomers(t *testing.T) {
	m := newTestModel(t)
	m.user = &types.User{Username: "alice", Role: types.RoleCustomer}

	out := m.View()
	if strings.Contains(out, "Report") {
		t.Error("customers must not see admin navigation")
	}
	if !strings.Contains(out, "alice") {
		t.Error("header should show the signed-in user")
	}
}

func TestViewShowsAdminLinksForAdmins(t *testing.T) {
	m := newTestModel(t)
	m.user = &types.User{Username: "root", Role: types.RoleAdmin}

	out := m.View()
	for _, want := range []string{"Products", "All orders", "Report"} {
		if !strings.Contains(out, want) {
			t.Errorf("admin navigation missing %q", want)
		}
	}
}

func TestViewEmptyCartMessage(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = ViewCart
	gen := m.cart.Begin()
	m.cart.Apply(gen, nil, nil)

	out := m.View()
	if !strings.Contains(out, "Your cart is empty") {
		t.Error("empty cart should show its designated message")
	}
	if strings.Contains(out, "Total:") {
		t.Error("an empty cart renders no total line")
	}
}

func TestViewFailedFetchNotice(t *testing.T) {
	m := newTestModel(t)
	m.viewMode = ViewStorefront
	gen := m.products.Begin()
	m.products.Apply(gen, nil, &api.StatusError{Code: 500})

	out := m.View()
	if !strings.Contains(out, "The server encountered an error") {
		t.Error("failed fetch should surface its user message in the pane")
	}
}
