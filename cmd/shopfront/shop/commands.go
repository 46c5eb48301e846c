package shop

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/action"
	"shopfront/internal/api"
	"shopfront/internal/nav"
	"shopfront/internal/types"
)

// Commands: every network call is wrapped in a tea.Cmd and resumes in the
// update loop as a typed message. No call carries a cancellation token; a
// stale completion is dropped by its container generation instead.

func (m Model) resolveSessionCmd(target ViewMode) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		return sessionMsg{user: resolver.Resolve(context.Background()), target: target}
	}
}

func (m Model) fetchProductsCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.ListProducts(context.Background())
		return productsMsg{gen: gen, items: items, err: err}
	}
}

func (m Model) fetchCartCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.GetCart(context.Background())
		return cartMsg{gen: gen, items: items, err: err}
	}
}

func (m Model) fetchOrdersCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.ListOrders(context.Background())
		return ordersMsg{gen: gen, items: items, err: err}
	}
}

func (m Model) fetchAdminOrdersCmd(gen int, status types.OrderStatus) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.OrdersByStatus(context.Background(), status)
		return adminOrdersMsg{gen: gen, items: items, err: err}
	}
}

func (m Model) fetchRecentOrdersCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.AllOrders(context.Background())
		return recentOrdersMsg{gen: gen, items: items, err: err}
	}
}

func (m Model) fetchSummaryCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		summary, err := client.SalesSummary(context.Background())
		return summaryMsg{gen: gen, summary: summary, err: err}
	}
}

func (m Model) refreshBadgeCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return badgeMsg{count: nav.Refresh(context.Background(), client)}
	}
}

func (m Model) fetchProductDetailCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		product, err := client.GetProduct(context.Background(), id)
		return productDetailMsg{product: product, err: err}
	}
}

func (m Model) fetchOrderDetailCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		order, err := client.GetOrder(context.Background(), id)
		return orderDetailMsg{order: order, err: err}
	}
}

// addToCartCmd resolves the session first and only issues the cart call for
// an authenticated user; without a session it redirects to the login view
// and no cart request is made.
func (m Model) addToCartCmd(productID int64) tea.Cmd {
	client := m.client
	resolver := m.resolver
	return func() tea.Msg {
		ctx := context.Background()
		if resolver.Resolve(ctx) == nil {
			return redirectLoginMsg{}
		}
		return mutationMsg{outcome: action.Run(ctx, action.Mutation{
			Name: "add-to-cart",
			Call: func(ctx context.Context) error {
				return client.AddToCart(ctx, productID, 1)
			},
			Resync: []action.Followup{action.ResyncBadge},
		})}
	}
}

// runMutationCmd executes one mutation off the update loop and reports its
// outcome. The resulting mutationMsg is the guaranteed cleanup point.
func (m Model) runMutationCmd(mut action.Mutation) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{outcome: action.Run(context.Background(), mut)}
	}
}

// runProductSaveCmd performs the composite save: the primary create/update
// first, then the optional image upload. An image failure after a successful
// primary mutation is reported but never rolled back.
func (m Model) runProductSaveCmd(in api.ProductInput, productID int64, imagePath string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		savedID := productID
		name := "update-product"
		call := func(ctx context.Context) error {
			return client.UpdateProduct(ctx, productID, in)
		}
		if productID == 0 {
			name = "create-product"
			call = func(ctx context.Context) error {
				product, err := client.CreateProduct(ctx, in)
				if err != nil {
					return err
				}
				savedID = product.ID
				return nil
			}
		}

		outcome := action.Run(ctx, action.Mutation{
			Name: name,
			Call: call,
			Resync: []action.Followup{
				action.CloseOverlay,
				action.ResyncProducts,
			},
		})
		if !outcome.OK() || imagePath == "" {
			return mutationMsg{outcome: outcome}
		}

		if err := uploadImage(ctx, client, savedID, imagePath); err != nil {
			return mutationMsg{
				outcome: outcome,
				notice:  "Product saved, but the image upload failed",
			}
		}
		return mutationMsg{outcome: outcome}
	}
}

func uploadImage(ctx context.Context, client *api.Client, productID int64, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return client.UploadProductImage(ctx, productID, filepath.Base(path), file)
}
