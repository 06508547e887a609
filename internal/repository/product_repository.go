package repository

import (
	"context"
	"fmt"
	"regexp"

	"stylekart/internal/database"
	"stylekart/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements ProductRepository against MongoDB.
type productRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewProductRepository creates a new MongoDB-backed product repository.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		collection: db.Collection(database.CollectionProducts),
		logger:     logger.With().Str("repository", "product").Logger(),
	}
}

// Insert stores a new product and fills in its generated ID.
func (r *productRepository) Insert(ctx context.Context, product *model.Product) error {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var p model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Debug().Str("product_id", id.Hex()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.Hex()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (r *productRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// List retrieves products matching the conjunction of the provided filters.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := buildProductFilter(filter)

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Replace overwrites an existing product document.
func (r *productRepository) Replace(ctx context.Context, product *model.Product) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID.Hex()).Msg("failed to replace product")
		return fmt.Errorf("failed to replace product: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes a product unconditionally.
func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.Hex()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Count returns the total number of products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// buildProductFilter translates a ProductFilter into a query document.
// Every provided predicate is ANDed; absent predicates add nothing.
func buildProductFilter(filter model.ProductFilter) bson.M {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Size != "" {
		query["size"] = filter.Size
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Color != "" {
		// Case-insensitive exact match, not a substring search.
		query["color"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(filter.Color) + "$",
			Options: "i",
		}
	}
	if filter.MinRating != nil {
		query["rating"] = bson.M{"$gte": *filter.MinRating}
	}

	price := bson.M{}
	if filter.PriceMin != nil {
		price["$gte"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		price["$lte"] = *filter.PriceMax
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}
