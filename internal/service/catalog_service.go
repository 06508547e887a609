package service

import (
	"context"
	"fmt"
	"time"

	"stylekart/internal/model"
	"stylekart/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// Create stores a new product after validating its fields.
func (s *catalogService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if input.Name == "" {
		return nil, model.ErrMissingFields
	}
	if input.Image == "" {
		return nil, model.ErrMissingImage
	}
	if input.Price <= 0 {
		return nil, model.ErrInvalidPrice
	}
	if !input.Category.IsValid() {
		return nil, model.ErrInvalidCategory
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		Image:       input.Image,
		Size:        input.Size,
		Brand:       input.Brand,
		Color:       input.Color,
		Rating:      input.Rating,
		CreatedAt:   time.Now(),
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.Hex()).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Get retrieves a single product by its hex ID.
func (s *catalogService) Get(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, oid)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// List retrieves products matching the provided filters.
func (s *catalogService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products, nil
}

// Update merges the provided fields into an existing product. Empty
// fields keep their stored values; the image is replaced only when a
// new upload or URL was supplied.
func (s *catalogService) Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Price != 0 {
		if input.Price < 0 {
			return nil, model.ErrInvalidPrice
		}
		product.Price = input.Price
	}
	if input.Category != "" {
		if !input.Category.IsValid() {
			return nil, model.ErrInvalidCategory
		}
		product.Category = input.Category
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.Size != "" {
		product.Size = input.Size
	}
	if input.Brand != "" {
		product.Brand = input.Brand
	}
	if input.Color != "" {
		product.Color = input.Color
	}
	if input.Rating != nil {
		if err := validateRating(input.Rating); err != nil {
			return nil, err
		}
		product.Rating = input.Rating
	}

	if err := s.productRepo.Replace(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product unconditionally. This is the source of
// dangling cart/wishlist references; the read paths filter them out.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, oid); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

// validateRating checks an optional rating is within 1..5.
func validateRating(rating *float64) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return model.ErrInvalidRating
	}
	return nil
}
