package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shopfront/internal/types"
)

// AllOrders fetches every order in the system. Admin only.
func (c *Client) AllOrders(ctx context.Context) ([]types.Order, error) {
	var orders []types.Order
	if err := c.getJSON(ctx, "/reports/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("all orders: %w", err)
	}
	for i := range orders {
		if err := orders[i].Validate(); err != nil {
			return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
		}
	}
	return orders, nil
}

// OrdersByStatus fetches orders filtered by status. An empty status means
// "all" and must hit the unfiltered endpoint instead of sending an empty
// query parameter. Admin only.
func (c *Client) OrdersByStatus(ctx context.Context, status types.OrderStatus) ([]types.Order, error) {
	if status == "" {
		return c.AllOrders(ctx)
	}
	query := url.Values{}
	query.Set("status", string(status))
	var orders []types.Order
	if err := c.getJSON(ctx, "/reports/orders/status", query, &orders); err != nil {
		return nil, fmt.Errorf("orders by status %s: %w", status, err)
	}
	for i := range orders {
		if err := orders[i].Validate(); err != nil {
			return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
		}
	}
	return orders, nil
}

// SalesSummary fetches the aggregate sales figures. Admin only.
func (c *Client) SalesSummary(ctx context.Context) (*types.SalesSummary, error) {
	var summary types.SalesSummary
	if err := c.getJSON(ctx, "/reports/sales", nil, &summary); err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &summary, nil
}
