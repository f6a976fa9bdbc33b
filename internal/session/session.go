// Package session keeps the per-browser view state of the storefront:
// its own copy of the catalog, the cart, which view and modals are open,
// and the add-product form draft.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/cart"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/catalog"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
)

var ErrInvalidTab = errors.New("unknown admin tab")

// View selects between the public store and the admin console
type View string

const (
	ViewStore View = "store"
	ViewAdmin View = "admin"
)

// AdminTab is a section of the admin console
type AdminTab string

const (
	TabDashboard AdminTab = "dashboard"
	TabProducts  AdminTab = "products"
	TabOrders    AdminTab = "orders"
)

// AdminTabs lists the tabs in display order
var AdminTabs = []AdminTab{TabDashboard, TabProducts, TabOrders}

// Label returns the tab caption shown in the console
func (t AdminTab) Label() string {
	switch t {
	case TabDashboard:
		return "대시보드"
	case TabProducts:
		return "상품관리"
	case TabOrders:
		return "주문현황"
	}
	return string(t)
}

// ParseAdminTab accepts either the tab key or its caption
func ParseAdminTab(s string) (AdminTab, error) {
	for _, tab := range AdminTabs {
		if s == string(tab) || s == tab.Label() {
			return tab, nil
		}
	}
	return "", ErrInvalidTab
}

// NewDraft returns the initial state of the add-product form
func NewDraft() models.ProductDraft {
	return models.ProductDraft{
		Unit:  catalog.DefaultProductUnit,
		Image: catalog.DefaultProductImage,
	}
}

// Session is the view state of one browser. Callers must hold Lock while
// reading or changing any field.
type Session struct {
	ID string

	mu sync.Mutex

	View         View
	AdminTab     AdminTab
	CartOpen     bool
	AddModalOpen bool
	Draft        models.ProductDraft
	Products     *repository.InMemoryProductRepository
	Cart         *cart.Cart

	expanded map[string]bool
	flash    string
	lastSeen time.Time
}

func newSession(id string, products []models.Product, now time.Time) *Session {
	return &Session{
		ID:       id,
		View:     ViewStore,
		AdminTab: TabDashboard,
		Draft:    NewDraft(),
		Products: repository.NewInMemoryProductRepository(products),
		Cart:     cart.New(),
		expanded: make(map[string]bool),
		lastSeen: now,
	}
}

// Lock acquires exclusive access to the session
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session
func (s *Session) Unlock() { s.mu.Unlock() }

// ToggleView switches between the store and the admin console
func (s *Session) ToggleView() View {
	if s.View == ViewStore {
		s.View = ViewAdmin
	} else {
		s.View = ViewStore
	}
	return s.View
}

// ShowProducts returns to the store view, as the "order now" buttons do
func (s *Session) ShowProducts() {
	s.View = ViewStore
	s.CartOpen = false
}

// SetAdminTab selects a console tab by key or caption
func (s *Session) SetAdminTab(tab string) error {
	parsed, err := ParseAdminTab(tab)
	if err != nil {
		return err
	}
	s.AdminTab = parsed
	return nil
}

// ToggleDetails flips the origin/nutrition panel of productID and reports
// whether it is now expanded
func (s *Session) ToggleDetails(productID string) bool {
	if s.expanded[productID] {
		delete(s.expanded, productID)
		return false
	}
	s.expanded[productID] = true
	return true
}

// IsExpanded reports whether the detail panel of productID is open
func (s *Session) IsExpanded(productID string) bool {
	return s.expanded[productID]
}

// ExpandedIDs returns the open detail panels sorted by product ID
func (s *Session) ExpandedIDs() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetFlash queues a one-shot alert for the next render
func (s *Session) SetFlash(message string) {
	s.flash = message
}

// TakeFlash returns and clears the queued alert
func (s *Session) TakeFlash() string {
	msg := s.flash
	s.flash = ""
	return msg
}

// ResetDraft restores the add-product form to its initial values
func (s *Session) ResetDraft() {
	s.Draft = NewDraft()
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by NewContext
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
