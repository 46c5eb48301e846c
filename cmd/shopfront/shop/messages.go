package shop

import (
	"shopfront/internal/action"
	"shopfront/internal/types"
)

// Messages delivered back to the update loop. Every network call is issued
// as a tea.Cmd and resumes here with either a value or a failure; collection
// completions carry the container generation they belong to so stale
// responses can be dropped.
type (
	// initMsg triggers the first session resolution and storefront load.
	initMsg struct{}

	// sessionMsg is the result of a session resolution, together with the
	// view the user was navigating to when it was issued.
	sessionMsg struct {
		user   *types.User
		target ViewMode
	}

	productsMsg struct {
		gen   int
		items []types.Product
		err   error
	}

	cartMsg struct {
		gen   int
		items []types.CartItem
		err   error
	}

	ordersMsg struct {
		gen   int
		items []types.Order
		err   error
	}

	adminOrdersMsg struct {
		gen   int
		items []types.Order
		err   error
	}

	recentOrdersMsg struct {
		gen   int
		items []types.Order
		err   error
	}

	summaryMsg struct {
		gen     int
		summary *types.SalesSummary
		err     error
	}

	// badgeMsg carries a refreshed cart-badge count; failures arrive as zero.
	badgeMsg struct {
		count int
	}

	// productDetailMsg fills the edit form once the detail fetch returns.
	productDetailMsg struct {
		product *types.Product
		err     error
	}

	// orderDetailMsg opens the order detail overlay.
	orderDetailMsg struct {
		order *types.Order
		err   error
	}

	// mutationMsg reports a completed mutation attempt. Its delivery is the
	// guaranteed cleanup point: the in-flight flag is cleared whether the
	// outcome is success, validation block, or failure.
	mutationMsg struct {
		outcome action.Outcome
		// notice overrides the default success text (used for the partial
		// image-upload failure report).
		notice string
	}

	// redirectLoginMsg means a gated action found no session; the browser
	// equivalent of the login redirect. No error notice is shown.
	redirectLoginMsg struct{}
)
