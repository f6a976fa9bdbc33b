package repository

import (
	"context"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

// OrderRepository defines read access to demo orders
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
}

// StaticOrderRepository serves a fixed list of orders shared by every session
type StaticOrderRepository struct {
	orders []models.Order
}

// NewStaticOrderRepository creates a repository over a copy of orders
func NewStaticOrderRepository(orders []models.Order) *StaticOrderRepository {
	return &StaticOrderRepository{
		orders: append([]models.Order(nil), orders...),
	}
}

// GetAll returns the orders in their seeded order
func (r *StaticOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), r.orders...), nil
}
