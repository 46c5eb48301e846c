// Package session resolves the current authenticated identity. Every view
// resolves the session before fetching gated data; the result is used once
// and never cached across navigations.
package session

import (
	"context"

	"shopfront/internal/api"
	"shopfront/internal/logging"
	"shopfront/internal/types"
)

// Resolver answers "who is the current user" with a single profile read.
type Resolver struct {
	client *api.Client
}

// NewResolver creates a resolver backed by the given API client.
func NewResolver(client *api.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the current user, or nil on any failure. Unauthenticated,
// network failure and server error are deliberately not distinguished here;
// callers gate on the nil result and redirect.
func (r *Resolver) Resolve(ctx context.Context) *types.User {
	user, err := r.client.Profile(ctx)
	if err != nil {
		logging.Session("resolve failed: %v", err)
		return nil
	}
	logging.Session("resolved user %s (%s)", user.Username, user.Role)
	return user
}

// Gate is the outcome of an authorization check.
type Gate int

const (
	// GateAllowed means the caller may proceed with the gated fetch.
	GateAllowed Gate = iota
	// GateLogin means there is no session; redirect to the login view.
	GateLogin
	// GateHome means the session lacks the required role; redirect home.
	GateHome
)

// RequireUser gates views that need any authenticated user.
func RequireUser(user *types.User) Gate {
	if user == nil {
		return GateLogin
	}
	return GateAllowed
}

// RequireAdmin gates admin views. Missing session and wrong role both
// redirect to the storefront; neither is surfaced as an error message.
func RequireAdmin(user *types.User) Gate {
	if !user.IsAdmin() {
		return GateHome
	}
	return GateAllowed
}
