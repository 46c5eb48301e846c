// Package types defines the typed records exchanged with the storefront
// backend. Payloads are decoded into these structs at the API boundary and
// validated there, so rendering code never has to guess at shapes.
package types

import (
	"fmt"
	"time"
)

// Role identifies the privilege level of an authenticated user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User is the current authenticated identity. Resolved fresh on every page
// entry; never cached across views.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Product is a catalog entry. Mutated only by admin actions; stock is also
// decremented server-side at checkout.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
}

// Validate checks the invariants the backend promises for a product payload.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product %d: missing name", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d: negative price %.2f", p.ID, p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %d: negative stock %d", p.ID, p.Stock)
	}
	return nil
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// CartItem is one line of the current user's cart. The product snapshot is
// owned by the item; quantity is bounded by product stock server-side.
type CartItem struct {
	ID       int64   `json:"id"`
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}

// Validate checks the invariants for a cart item payload.
func (c *CartItem) Validate() error {
	if c.Quantity < 1 {
		return fmt.Errorf("cart item %d: quantity %d below 1", c.ID, c.Quantity)
	}
	return c.Product.Validate()
}

// LineTotal is the display-only subtotal for this cart line.
func (c *CartItem) LineTotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}

// OrderStatus is the finite order state set. The client renders any value it
// receives and submits any value the admin selects; transition legality is
// the backend's responsibility.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// AllStatuses returns the known statuses in filter-dropdown order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}
}

// OrderItem is an immutable snapshot of product, quantity and unit price
// taken at order creation. Later price changes never alter historical totals.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a placed order with its item snapshots.
type Order struct {
	ID              int64       `json:"id"`
	User            User        `json:"user"`
	Items           []OrderItem `json:"orderItems"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	Email           string      `json:"email"`
	Remarks         string      `json:"remarks"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Validate checks the invariants for an order payload.
func (o *Order) Validate() error {
	if o.TotalAmount < 0 {
		return fmt.Errorf("order %d: negative total %.2f", o.ID, o.TotalAmount)
	}
	for i := range o.Items {
		if o.Items[i].Quantity < 1 {
			return fmt.Errorf("order %d: item %d quantity below 1", o.ID, i)
		}
	}
	return nil
}

// CheckoutRequest is the body sent to create an order from the current cart.
type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	Email           string `json:"email"`
	Remarks         string `json:"remarks"`
}

// SalesSummary is the admin report aggregate returned by the backend.
type SalesSummary struct {
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int     `json:"totalOrders"`
}

// CartTotal sums line totals for display. This and AverageOrder are the only
// derived collection values the client computes; everything else rendered is
// a direct projection of the latest fetch.
func CartTotal(items []CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].LineTotal()
	}
	return total
}

// AverageOrder derives the average order value from a sales summary.
func AverageOrder(s SalesSummary) float64 {
	if s.TotalOrders == 0 {
		return 0
	}
	return s.TotalSales / float64(s.TotalOrders)
}
