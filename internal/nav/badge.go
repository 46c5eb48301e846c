// Package nav holds the process-wide navigation view state shared by every
// view: the cart badge count. All updates flow through Refresh so the badge
// can never silently diverge from server truth for longer than one refresh.
package nav

import (
	"context"
	"fmt"

	"shopfront/internal/api"
	"shopfront/internal/logging"
)

// Badge is the shared cart-count indicator.
type Badge struct {
	count int
}

// Count returns the last refreshed cart size.
func (b *Badge) Count() int {
	return b.count
}

// Set records a refreshed count. Called from the update loop when a refresh
// completes; last write wins.
func (b *Badge) Set(count int) {
	b.count = count
}

// Refresh fetches the cart and returns its line-item count. Any failure
// (including "not signed in") yields zero rather than a stale value. Invoked
// after login, logout and every successful cart mutation.
func Refresh(ctx context.Context, client *api.Client) int {
	items, err := client.GetCart(ctx)
	if err != nil {
		logging.Get(logging.CategoryCart).Warn("badge refresh failed: %v", err)
		return 0
	}
	return len(items)
}

// Label renders the badge text for the status bar.
func (b *Badge) Label() string {
	return fmt.Sprintf("Cart (%d)", b.count)
}
