package view

import (
	"fmt"
	"time"

	"shopfront/internal/types"
)

// Money renders a currency value with the fixed glyph and two decimals, the
// same format the storefront uses everywhere prices appear.
func Money(v float64) string {
	return fmt.Sprintf("¥%.2f", v)
}

// FormatDate renders an order timestamp in a long local format.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

// StatusLabel returns the display text for an order status. Total over the
// four known statuses; anything else renders its raw value.
func StatusLabel(s types.OrderStatus) string {
	switch s {
	case types.StatusPending:
		return "Pending"
	case types.StatusShipped:
		return "Shipped"
	case types.StatusDelivered:
		return "Delivered"
	case types.StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// StatusBadge renders the status label in its badge style. Unrecognized
// statuses get the neutral style; this never fails.
func StatusBadge(st Styles, s types.OrderStatus) string {
	label := StatusLabel(s)
	switch s {
	case types.StatusPending:
		return st.BadgeWarning.Render(label)
	case types.StatusShipped:
		return st.BadgeInfo.Render(label)
	case types.StatusDelivered:
		return st.BadgeSuccess.Render(label)
	case types.StatusCancelled:
		return st.BadgeDanger.Render(label)
	default:
		return st.BadgeNeutral.Render(label)
	}
}

// orText substitutes a placeholder for empty optional fields.
func orText(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
