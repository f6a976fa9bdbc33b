package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/catalog"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

var (
	ErrMissingRequiredFields = errors.New("product name and price are required")
	ErrPriceOutOfRange       = errors.New("product price exceeds the maximum")
)

const (
	// AlertMissingFields is shown when the add-product form is submitted incomplete
	AlertMissingFields = "상품명과 가격을 입력해주세요."
	// AlertPriceOutOfRange is shown when the price is above catalog.MaxProductPrice
	AlertPriceOutOfRange = "가격은 100,000,000원 이하로 입력해주세요."
)

// ProductService handles business logic for a session's catalog
type ProductService struct {
	now func() time.Time
}

// NewProductService creates a new product service. now defaults to time.Now.
func NewProductService(now func() time.Time) *ProductService {
	if now == nil {
		now = time.Now
	}
	return &ProductService{now: now}
}

// ListProducts returns all products in display order
func (s *ProductService) ListProducts(ctx context.Context, repo repository.ProductRepository) ([]models.Product, error) {
	return repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, repo repository.ProductRepository, id string) (*models.Product, error) {
	return repo.GetByID(ctx, id)
}

// LowestPrice returns the cheapest price in the catalog; ok is false when
// the catalog is empty
func (s *ProductService) LowestPrice(ctx context.Context, repo repository.ProductRepository) (price int64, ok bool, err error) {
	products, err := repo.GetAll(ctx)
	if err != nil {
		return 0, false, err
	}
	for i, p := range products {
		if i == 0 || p.Price < price {
			price = p.Price
		}
	}
	return price, len(products) > 0, nil
}

// AddProduct builds a product from draft and prepends it to repo.
// A draft without a name or a positive price, or priced above
// catalog.MaxProductPrice, is rejected and repo is left untouched. Blank
// optional fields fall back to the catalog defaults.
func (s *ProductService) AddProduct(ctx context.Context, repo repository.ProductRepository, draft models.ProductDraft) (*models.Product, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" || draft.Price <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if draft.Price > catalog.MaxProductPrice {
		return nil, ErrPriceOutOfRange
	}

	features := draft.Features
	if len(features) == 0 {
		features = []string{catalog.DefaultProductFeature}
	}

	product := models.Product{
		ID:       s.nextID(ctx, repo),
		Name:     name,
		Tagline:  orDefault(draft.Tagline, catalog.DefaultProductTagline),
		Price:    draft.Price,
		Unit:     orDefault(draft.Unit, catalog.DefaultProductUnit),
		Image:    orDefault(draft.Image, catalog.DefaultProductImage),
		Features: append([]string(nil), features...),
		Badge:    catalog.NewProductBadge,
	}

	if err := repo.Prepend(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to store product %s: %w", product.ID, err)
	}
	return &product, nil
}

// SaveDraft submits the session's add-product form. On success the modal
// closes and the form resets; on failure both are kept so the admin can
// correct the input.
func (s *ProductService) SaveDraft(ctx context.Context, sess *session.Session) (*models.Product, error) {
	product, err := s.AddProduct(ctx, sess.Products, sess.Draft)
	if err != nil {
		return nil, err
	}

	sess.AddModalOpen = false
	sess.ResetDraft()
	return product, nil
}

// nextID returns prod-<unix millis>, bumped until it is unused in repo
func (s *ProductService) nextID(ctx context.Context, repo repository.ProductRepository) string {
	millis := s.now().UnixMilli()
	for {
		id := fmt.Sprintf("prod-%d", millis)
		if !repo.Exists(ctx, id) {
			return id
		}
		millis++
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
