package service

import (
	"context"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
)

// AdminService serves the read-only parts of the admin console
type AdminService struct {
	orders repository.OrderRepository
	stats  models.DashboardStats
}

// NewAdminService creates an admin service over the demo orders and
// dashboard figures
func NewAdminService(orders repository.OrderRepository, stats models.DashboardStats) *AdminService {
	return &AdminService{
		orders: orders,
		stats:  stats,
	}
}

// ListOrders returns the demo orders
func (s *AdminService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAll(ctx)
}

// Dashboard returns the dashboard figures with today's revenue summed from
// the demo orders
func (s *AdminService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := s.stats
	stats.TodayRevenue = 0
	for _, o := range orders {
		stats.TodayRevenue += o.Total
	}
	return stats, nil
}
