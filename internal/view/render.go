package view

import (
	"fmt"
	"strings"

	"shopfront/internal/types"
)

// ProductCard renders one catalog entry for the storefront grid.
func ProductCard(st Styles, p types.Product) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render(orText(p.Description, "No description")))
	sb.WriteString("\n")
	sb.WriteString(st.Price.Render(Money(p.Price)))
	sb.WriteString("  ")
	sb.WriteString(st.Muted.Render(fmt.Sprintf("Stock: %d", p.Stock)))
	sb.WriteString("\n")
	if p.InStock() {
		sb.WriteString(st.Body.Render("[a] Add to cart"))
	} else {
		sb.WriteString(st.BadgeNeutral.Render("Out of stock"))
	}
	return st.Card.Render(sb.String())
}

// ProductRow renders one admin table row: id, name, description, price, stock.
func ProductRow(p types.Product) []string {
	return []string{
		fmt.Sprintf("%d", p.ID),
		p.Name,
		orText(p.Description, "-"),
		Money(p.Price),
		fmt.Sprintf("%d", p.Stock),
	}
}

// CartItemRow renders one cart line: name, unit price, quantity.
func CartItemRow(st Styles, item types.CartItem) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render(item.Product.Name))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render(Money(item.Product.Price)))
	sb.WriteString("  ")
	sb.WriteString(st.Body.Render(fmt.Sprintf("× %d", item.Quantity)))
	sb.WriteString("  ")
	sb.WriteString(st.Muted.Render("[-] decrease  [+] increase  [x] remove"))
	return sb.String()
}

// CartTotalLine renders the aggregate line under the cart list.
func CartTotalLine(st Styles, items []types.CartItem) string {
	return st.Bold.Render("Total: " + Money(types.CartTotal(items)))
}

// OrderCard renders one of the user's own orders with its item snapshots.
func OrderCard(st Styles, o types.Order) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render(fmt.Sprintf("Order #%d", o.ID)))
	sb.WriteString("  ")
	sb.WriteString(StatusBadge(st, o.Status))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render("Created: " + FormatDate(o.CreatedAt)))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render("Ship to: " + orText(o.ShippingAddress, "Not provided")))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render("Email: " + orText(o.Email, "Not provided")))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render("Remarks: " + orText(o.Remarks, "None")))
	sb.WriteString("\n")
	for i := range o.Items {
		sb.WriteString(OrderItemLine(st, o.Items[i]))
		sb.WriteString("\n")
	}
	sb.WriteString(st.Bold.Render("Order total: " + Money(o.TotalAmount)))
	return st.Card.Render(sb.String())
}

// OrderItemLine renders one snapshot line inside an order: the product name,
// quantity, and the unit price captured at order creation.
func OrderItemLine(st Styles, item types.OrderItem) string {
	return fmt.Sprintf("  %s %s  %s",
		st.Body.Render(item.Product.Name),
		st.Muted.Render(fmt.Sprintf("× %d", item.Quantity)),
		st.Body.Render(Money(item.Price)),
	)
}

// OrderRow renders one admin table row: id, user, amount, address, email,
// status, created.
func OrderRow(st Styles, o types.Order) []string {
	return []string{
		fmt.Sprintf("%d", o.ID),
		fmt.Sprintf("%d", o.User.ID),
		Money(o.TotalAmount),
		orText(o.ShippingAddress, "-"),
		orText(o.Email, "-"),
		StatusBadge(st, o.Status),
		FormatDate(o.CreatedAt),
	}
}

// RecentOrderRow renders one sales-report table row: id, amount, status,
// created.
func RecentOrderRow(st Styles, o types.Order) []string {
	return []string{
		fmt.Sprintf("%d", o.ID),
		Money(o.TotalAmount),
		StatusBadge(st, o.Status),
		FormatDate(o.CreatedAt),
	}
}

// SalesSummaryPanel renders the aggregate report figures, including the
// client-derived average order value.
func SalesSummaryPanel(st Styles, s types.SalesSummary) string {
	var sb strings.Builder
	sb.WriteString(st.Title.Render("Sales report"))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render("Total sales: "))
	sb.WriteString(st.Price.Render(Money(s.TotalSales)))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render(fmt.Sprintf("Total orders: %d", s.TotalOrders)))
	sb.WriteString("\n")
	sb.WriteString(st.Body.Render("Average order: "))
	sb.WriteString(st.Price.Render(Money(types.AverageOrder(s))))
	return st.Card.Render(sb.String())
}
