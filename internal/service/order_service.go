package service

import (
	"context"
	"fmt"
	"time"

	"stylekart/internal/model"
	"stylekart/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create resolves every line item against the catalog at creation
// time, snapshots name and price into the order, and persists it.
// A single unresolvable line item aborts the whole order; nothing is
// written until all resolutions have completed.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	refs := make([]primitive.ObjectID, len(req.Products))
	for i, item := range req.Products {
		oid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			s.logger.Warn().
				Str("product_id", item.ProductID).
				Msg("unparseable product reference in order")
			return nil, model.ErrProductNotFound
		}
		refs[i] = oid
	}

	// Resolve line items concurrently; the first failure cancels the
	// rest and aborts the create before any write.
	lines := make([]model.OrderLine, len(req.Products))
	g, gctx := errgroup.WithContext(ctx)
	for i := range req.Products {
		g.Go(func() error {
			product, err := s.productRepo.GetByID(gctx, refs[i])
			if err != nil {
				return fmt.Errorf("failed to resolve product %s: %w", refs[i].Hex(), err)
			}
			if product == nil {
				return model.ErrProductNotFound
			}
			lines[i] = model.OrderLine{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  req.Products[i].Quantity,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn().
			Err(err).
			Str("user_email", req.Email).
			Int("item_count", len(req.Products)).
			Msg("order aborted, line item resolution failed")
		return nil, err
	}

	order := &model.Order{
		UserEmail:   req.Email,
		Products:    lines,
		TotalAmount: req.TotalAmount,
		Status:      model.OrderStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("user_email", req.Email).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.Hex()).
		Str("user_email", order.UserEmail).
		Int("item_count", len(lines)).
		Float64("total_amount", order.TotalAmount).
		Msg("order created")

	return order, nil
}

// List retrieves all orders newest-first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus overwrites an order's status. No transition table is
// enforced; any status may follow any other.
func (s *orderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrOrderNotFound
	}

	newStatus := model.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, oid, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", id).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || req.Email == "" {
		return model.ErrMissingFields
	}
	if len(req.Products) == 0 {
		return model.ErrEmptyOrder
	}
	for _, item := range req.Products {
		if item.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}
	}
	return nil
}
