package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateProductID = errors.New("product id already exists")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Exists(ctx context.Context, id string) bool
	Prepend(ctx context.Context, product models.Product) error
}

// InMemoryProductRepository implements ProductRepository with an ordered
// in-memory list. Products are never edited or removed once stored.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

// NewInMemoryProductRepository creates a repository holding a copy of seed
func NewInMemoryProductRepository(seed []models.Product) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products: make([]models.Product, len(seed)),
	}
	copy(r.products, seed)
	r.reindex()
	return r
}

// GetAll returns all products in display order (newest additions first)
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// Exists reports whether a product with id is stored
func (r *InMemoryProductRepository) Exists(ctx context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[id]
	return exists
}

// Prepend stores product at the front of the list
func (r *InMemoryProductRepository) Prepend(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[product.ID]; exists {
		return ErrDuplicateProductID
	}

	r.products = append([]models.Product{product}, r.products...)
	r.reindex()
	return nil
}

// reindex rebuilds the id index; callers hold the write lock
func (r *InMemoryProductRepository) reindex() {
	r.index = make(map[string]int, len(r.products))
	for i, p := range r.products {
		r.index[p.ID] = i
	}
}
