package api

import (
	"context"
	"fmt"
	"net/http"

	"shopfront/internal/types"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile returns the currently authenticated user. A 401 means no session;
// callers that only need a yes/no answer should go through session.Resolver.
func (c *Client) Profile(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.getJSON(ctx, "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, username, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/users/login", nil, Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/users/register", nil, Registration{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout clears the backend session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/users/logout", nil, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
