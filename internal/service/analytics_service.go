package service

import (
	"context"
	"fmt"

	"stylekart/internal/model"
	"stylekart/internal/repository"

	"github.com/rs/zerolog"
)

// analyticsService implements AnalyticsService. Pure aggregation over
// the stores; no state of its own.
type analyticsService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      zerolog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		logger:      logger.With().Str("service", "analytics").Logger(),
	}
}

// Summary reports totals across users, products and orders.
func (s *analyticsService) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	admins, err := s.userRepo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	revenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	summary := &model.AnalyticsSummary{
		TotalUsers:    users,
		TotalAdmins:   admins,
		TotalProducts: products,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
	}

	s.logger.Debug().
		Int64("users", users).
		Int64("products", products).
		Int64("orders", orders).
		Msg("analytics summary computed")

	return summary, nil
}
