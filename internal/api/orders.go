package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shopfront/internal/types"
)

// CreateOrder checks out the current cart into a new order. The backend
// consumes the cart server-side on success.
func (c *Client) CreateOrder(ctx context.Context, req types.CheckoutRequest) (*types.Order, error) {
	data, err := c.do(ctx, http.MethodPost, "/orders", nil, req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	var order types.Order
	if err := unmarshalJSON(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders fetches the current user's own orders.
func (c *Client) ListOrders(ctx context.Context) ([]types.Order, error) {
	var orders []types.Order
	if err := c.getJSON(ctx, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	for i := range orders {
		if err := orders[i].Validate(); err != nil {
			return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
		}
	}
	return orders, nil
}

// GetOrder fetches one order with its item snapshots.
func (c *Client) GetOrder(ctx context.Context, id int64) (*types.Order, error) {
	var order types.Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if err := order.Validate(); err != nil {
		return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
	}
	return &order, nil
}

// UpdateOrderStatus submits a status change for an order. Admin only. The
// value goes through as-is; the backend owns transition legality.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status types.OrderStatus) error {
	query := url.Values{}
	query.Set("status", string(status))
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", id), query, nil); err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}
	return nil
}
