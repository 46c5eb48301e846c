package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"shopfront/internal/types"
)

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ListProducts fetches the public catalog. Every returned product has passed
// boundary validation.
func (c *Client) ListProducts(ctx context.Context) ([]types.Product, error) {
	var products []types.Product
	if err := c.getJSON(ctx, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
		}
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	var product types.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if err := product.Validate(); err != nil {
		return nil, &StatusError{Code: http.StatusInternalServerError, Body: err.Error()}
	}
	return &product, nil
}

// CreateProduct creates a product and returns the stored record, whose id is
// needed for a follow-up image upload. Admin only.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*types.Product, error) {
	data, err := c.do(ctx, http.MethodPost, "/products", nil, in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	var product types.Product
	if err := unmarshalJSON(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct overwrites a product's writable fields. Admin only.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, in); err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

// DeleteProduct removes a product. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

// UploadProductImage attaches an image to a product. Admin only. Callers
// treat a failure here after a successful create/update as a reported partial
// failure, not a reason to roll back.
func (c *Client) UploadProductImage(ctx context.Context, id int64, filename string, content io.Reader) error {
	path := fmt.Sprintf("/products/%d/image", id)
	if err := c.postMultipart(ctx, path, "file", filename, content); err != nil {
		return fmt.Errorf("upload image for product %d: %w", id, err)
	}
	return nil
}
