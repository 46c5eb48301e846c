// Package viewstate owns the fetch lifecycle of one rendered pane: loading,
// ready, designated empty state, or a visible error notice. The same
// container drives products, cart, orders, admin orders and report panes.
//
// Each fetch carries a generation token taken from Begin. A completion is
// applied only when its token is still the latest issued for the container,
// so rapid re-triggers (fast filter changes) can never let a stale response
// overwrite a newer one.
package viewstate

import (
	"strings"

	"shopfront/internal/api"
)

// State is the lifecycle phase of a pane.
type State int

const (
	// StateIdle means no fetch has been issued yet.
	StateIdle State = iota
	// StateLoading means the latest fetch has not completed.
	StateLoading
	// StateReady means the latest fetch succeeded with at least one item.
	StateReady
	// StateEmpty means the latest fetch succeeded with zero items.
	StateEmpty
	// StateFailed means the latest fetch failed; Message holds the notice.
	StateFailed
)

// Container tracks one pane's collection and fetch lifecycle.
type Container[T any] struct {
	state    State
	items    []T
	message  string
	emptyMsg string
	gen      int
}

// NewContainer creates a container with the pane's designated empty-state
// message.
func NewContainer[T any](emptyMsg string) Container[T] {
	return Container[T]{emptyMsg: emptyMsg}
}

// Begin marks the container loading and returns the generation token the
// in-flight fetch must hand back to Apply.
func (c *Container[T]) Begin() int {
	c.gen++
	c.state = StateLoading
	return c.gen
}

// Apply records a fetch completion. Stale completions (an older generation
// than the latest Begin) are dropped and the method reports false. On failure
// the previous items are discarded so stale content is never left behind.
func (c *Container[T]) Apply(gen int, items []T, err error) bool {
	if gen != c.gen {
		return false
	}
	if err != nil {
		c.items = nil
		c.message = api.UserMessage(err)
		c.state = StateFailed
		return true
	}
	c.items = items
	c.message = ""
	if len(items) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StateReady
	}
	return true
}

// Reset returns the container to idle and drops its content. Used when a
// view is torn down so re-entry never shows a previous visit's data.
func (c *Container[T]) Reset() {
	c.gen++
	c.state = StateIdle
	c.items = nil
	c.message = ""
}

// State returns the current lifecycle phase.
func (c *Container[T]) State() State {
	return c.state
}

// Items returns the latest successfully fetched collection, a direct
// projection of the server response.
func (c *Container[T]) Items() []T {
	return c.items
}

// Message returns the error notice when in StateFailed and the designated
// empty-state message when in StateEmpty.
func (c *Container[T]) Message() string {
	switch c.state {
	case StateFailed:
		return c.message
	case StateEmpty:
		return c.emptyMsg
	default:
		return ""
	}
}

// Generation returns the latest issued token. Exposed for tests.
func (c *Container[T]) Generation() int {
	return c.gen
}

// Render produces the pane body: the per-item fragments joined by sep when
// ready, the empty-state or error notice otherwise, and the loading
// placeholder while a first fetch is in flight. Per-item rendering is
// delegated to the caller; the container owns only lifecycle handling.
func (c *Container[T]) Render(renderItem func(T) string, sep, loading string) string {
	switch c.state {
	case StateReady:
		out := make([]string, 0, len(c.items))
		for i := range c.items {
			out = append(out, renderItem(c.items[i]))
		}
		return strings.Join(out, sep)
	case StateEmpty, StateFailed:
		return c.Message()
	case StateLoading:
		return loading
	default:
		return ""
	}
}
