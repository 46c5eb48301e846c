package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shopfront/internal/types"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "¥25.00", Money(25))
	assert.Equal(t, "¥9.90", Money(9.9))
	assert.Equal(t, "¥0.00", Money(0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(time.Time{}))

	ts := time.Date(2026, 5, 1, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "May 1, 2026 10:30", FormatDate(ts))
}

func TestStatusLabel(t *testing.T) {
	// Every known status must map to a display label, never its raw value.
	want := map[types.OrderStatus]string{
		types.StatusPending:   "Pending",
		types.StatusShipped:   "Shipped",
		types.StatusDelivered: "Delivered",
		types.StatusCancelled: "Cancelled",
	}
	for _, s := range types.AllStatuses() {
		assert.Equal(t, want[s], StatusLabel(s))
	}

	// Unknown values render as-is rather than failing.
	assert.Equal(t, "REFUNDED", StatusLabel(types.OrderStatus("REFUNDED")))
}

func TestStatusBadge_UnknownFallsBackToNeutral(t *testing.T) {
	st := DefaultStyles()
	out := StatusBadge(st, types.OrderStatus("REFUNDED"))
	assert.Contains(t, out, "REFUNDED")

	for _, s := range types.AllStatuses() {
		assert.Contains(t, StatusBadge(st, s), StatusLabel(s))
	}
}

func TestOrText(t *testing.T) {
	assert.Equal(t, "No description", orText("", "No description"))
	assert.Equal(t, "A fine mug", orText("A fine mug", "No description"))
}

func TestMoneyNoThousandsSeparator(t *testing.T) {
	out := Money(1234567.5)
	assert.Equal(t, "¥1234567.50", out)
	assert.False(t, strings.Contains(out, ","))
}
