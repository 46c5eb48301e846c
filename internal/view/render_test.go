package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"shopfront/internal/types"
)

func TestProductCard(t *testing.T) {
	st := DefaultStyles()

	t.Run("in stock shows the add hint", func(t *testing.T) {
		out := ProductCard(st, types.Product{Name: "Mug", Price: 9.9, Stock: 3})
		assert.Contains(t, out, "Mug")
		assert.Contains(t, out, "¥9.90")
		assert.Contains(t, out, "Add to cart")
	})

	t.Run("out of stock shows the badge instead", func(t *testing.T) {
		out := ProductCard(st, types.Product{Name: "Mug", Price: 9.9, Stock: 0})
		assert.Contains(t, out, "Out of stock")
		assert.NotContains(t, out, "Add to cart")
	})

	t.Run("empty description gets a placeholder", func(t *testing.T) {
		out := ProductCard(st, types.Product{Name: "Mug", Price: 9.9, Stock: 1})
		assert.Contains(t, out, "No description")
	})
}

func TestProductRow(t *testing.T) {
	row := ProductRow(types.Product{ID: 7, Name: "Mug", Price: 9.9, Stock: 3})
	want := []string{"7", "Mug", "-", "¥9.90", "3"}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestCartTotalLine(t *testing.T) {
	st := DefaultStyles()
	items := []types.CartItem{
		{Quantity: 2, Product: types.Product{Name: "Mug", Price: 10}},
		{Quantity: 1, Product: types.Product{Name: "Pen", Price: 5}},
	}
	assert.Contains(t, CartTotalLine(st, items), "¥25.00")
}

func TestOrderCard(t *testing.T) {
	st := DefaultStyles()
	o := types.Order{
		ID:          12,
		TotalAmount: 20,
		Status:      types.StatusShipped,
		CreatedAt:   time.Date(2026, 5, 1, 10, 30, 0, 0, time.Local),
		Items: []types.OrderItem{
			{Product: types.Product{Name: "Mug"}, Quantity: 2, Price: 10},
		},
	}
	out := OrderCard(st, o)
	assert.Contains(t, out, "Order #12")
	assert.Contains(t, out, "Shipped")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "¥20.00")

	// Optional fields fall back to placeholders.
	assert.Contains(t, out, "Not provided")
	assert.Contains(t, out, "None")
}

func TestRecentOrderRow(t *testing.T) {
	st := DefaultStyles()
	row := RecentOrderRow(st, types.Order{ID: 3, TotalAmount: 15, Status: types.StatusPending})
	assert.Len(t, row, 4)
	assert.Equal(t, "3", row[0])
	assert.Equal(t, "¥15.00", row[1])
}

func TestSalesSummaryPanel(t *testing.T) {
	st := DefaultStyles()
	out := SalesSummaryPanel(st, types.SalesSummary{TotalSales: 100, TotalOrders: 4})
	assert.Contains(t, out, "¥100.00")
	assert.Contains(t, out, "Total orders: 4")
	assert.Contains(t, out, "¥25.00") // derived average
}
