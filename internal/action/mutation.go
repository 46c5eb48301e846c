// Package action coordinates state-changing calls against the backend. Every
// mutation follows the same pipeline: local validation (no network), the
// remote call, then a declared set of re-synchronization follow-ups that the
// caller executes on success so every visible fragment reflects the new
// server state. There is no optimistic local mutation and no rollback;
// failures surface a user message and leave state untouched.
package action

import (
	"context"
	"errors"

	"shopfront/internal/api"
	"shopfront/internal/logging"
)

// Followup names a fragment that must be reconciled with server state after
// a successful mutation. Declaring them on the mutation keeps the "who
// refreshes the badge" contract in one place.
type Followup int

const (
	// ResyncCart reloads the cart pane.
	ResyncCart Followup = iota
	// ResyncProducts reloads the product pane (storefront or admin).
	ResyncProducts
	// ResyncOrders reloads the user's order list.
	ResyncOrders
	// ResyncAdminOrders reloads the admin order table with its current filter.
	ResyncAdminOrders
	// ResyncBadge refreshes the navigation cart badge.
	ResyncBadge
	// CloseOverlay dismisses the active dialog and resets its form.
	CloseOverlay
)

// ErrSkip is returned by a Validate func when the action should be silently
// ignored: no call, no message. Used for quantity changes below 1.
var ErrSkip = errors.New("action skipped")

// ValidationError blocks a mutation before any network call and carries the
// message shown to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Mutation describes one state-changing action.
type Mutation struct {
	// Name identifies the action in logs.
	Name string
	// Validate runs locally before any network call. A ValidationError
	// blocks the call with a message; ErrSkip blocks it silently.
	Validate func() error
	// Call performs the remote mutation.
	Call func(ctx context.Context) error
	// Resync lists the fragments to reconcile after success.
	Resync []Followup
}

// Outcome reports one mutation attempt.
type Outcome struct {
	Name string
	Err  error
	// Blocked means validation failed and no request was made.
	Blocked bool
	// Skipped means the action was silently ignored (no request, no message).
	Skipped bool
	// Resync is the follow-up set, populated only on success.
	Resync []Followup
}

// OK reports whether the mutation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil && !o.Skipped
}

// UserMessage returns the text to show for a failed attempt, empty on
// success or silent skip.
func (o Outcome) UserMessage() string {
	if o.Err == nil || o.Skipped {
		return ""
	}
	var ve *ValidationError
	if errors.As(o.Err, &ve) {
		return ve.Msg
	}
	return api.UserMessage(o.Err)
}

// Run executes the mutation pipeline. The caller must treat delivery of the
// Outcome as its cleanup point and restore any disabled control regardless of
// which branch produced it.
func Run(ctx context.Context, m Mutation) Outcome {
	if m.Validate != nil {
		if err := m.Validate(); err != nil {
			if errors.Is(err, ErrSkip) {
				return Outcome{Name: m.Name, Skipped: true}
			}
			logging.UI("mutation %s blocked: %v", m.Name, err)
			return Outcome{Name: m.Name, Err: err, Blocked: true}
		}
	}

	if err := m.Call(ctx); err != nil {
		logging.APIError("mutation %s failed: %v", m.Name, err)
		return Outcome{Name: m.Name, Err: err}
	}

	logging.API("mutation %s succeeded", m.Name)
	return Outcome{Name: m.Name, Resync: m.Resync}
}
