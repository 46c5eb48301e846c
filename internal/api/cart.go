package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopfront/internal/types"
)

// GetCart fetches the current user's cart. Requires a session.
func (c *Client) GetCart(ctx context.Context) ([]types.CartItem, error) {
	var items []types.CartItem
	if err := c.getJSON(ctx, "/cart", nil, &items); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
		}
	}
	return items, nil
}

// AddToCart puts quantity units of a product into the cart. The backend takes
// both values as query parameters.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	query := url.Values{}
	query.Set("productId", strconv.FormatInt(productID, 10))
	query.Set("quantity", strconv.Itoa(quantity))
	if _, err := c.do(ctx, http.MethodPost, "/cart", query, nil); err != nil {
		return fmt.Errorf("add product %d to cart: %w", productID, err)
	}
	return nil
}

// UpdateCartItem sets the quantity of an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", itemID), query, nil); err != nil {
		return fmt.Errorf("update cart item %d: %w", itemID, err)
	}
	return nil
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", itemID), nil, nil); err != nil {
		return fmt.Errorf("remove cart item %d: %w", itemID, err)
	}
	return nil
}
