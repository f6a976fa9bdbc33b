package web

import (
	"context"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/catalog"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

// ProductCard is a catalog entry as rendered in the store
type ProductCard struct {
	models.Product
	Expanded bool
	InCart   int
}

// PageData is everything the templates read
type PageData struct {
	View     session.View
	Content  models.Content
	Products []ProductCard

	LowestPrice    int64
	HasLowestPrice bool

	CartItems []models.CartItem
	CartCount int
	CartTotal int64
	CartOpen  bool

	AdminTabs    []session.AdminTab
	ActiveTab    session.AdminTab
	Dashboard    models.DashboardStats
	Orders       []models.Order
	AddModalOpen bool
	Draft        models.ProductDraft
	Units        []string

	Flash string
}

// buildPage snapshots the session into template data. The caller holds
// the session lock.
func (h *Handler) buildPage(ctx context.Context, sess *session.Session) (*PageData, error) {
	products, err := h.products.ListProducts(ctx, sess.Products)
	if err != nil {
		return nil, err
	}

	lowest, ok, err := h.products.LowestPrice(ctx, sess.Products)
	if err != nil {
		return nil, err
	}

	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = ProductCard{
			Product:  p,
			Expanded: sess.IsExpanded(p.ID),
			InCart:   sess.Cart.Quantity(p.ID),
		}
	}

	page := &PageData{
		View:           sess.View,
		Content:        h.content,
		Products:       cards,
		LowestPrice:    lowest,
		HasLowestPrice: ok,
		CartItems:      sess.Cart.Items(),
		CartCount:      sess.Cart.Count(),
		CartTotal:      sess.Cart.Total(),
		CartOpen:       sess.CartOpen,
		AdminTabs:      session.AdminTabs,
		ActiveTab:      sess.AdminTab,
		AddModalOpen:   sess.AddModalOpen,
		Draft:          sess.Draft,
		Units:          catalog.Units,
		Flash:          sess.TakeFlash(),
	}

	if sess.View == session.ViewAdmin {
		if page.Dashboard, err = h.admin.Dashboard(ctx); err != nil {
			return nil, err
		}
		if page.Orders, err = h.admin.ListOrders(ctx); err != nil {
			return nil, err
		}
	}

	return page, nil
}
