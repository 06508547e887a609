package repository

import (
	"context"
	"fmt"

	"stylekart/internal/database"
	"stylekart/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderRepository implements OrderRepository against MongoDB.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(database.CollectionOrders),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Insert stores a new order and fills in its generated ID.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error().Err(err).Str("user_email", order.UserEmail).Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return nil
}

// List retrieves all orders newest-first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := []model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus overwrites the status of an order and returns the
// updated document.
func (r *orderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) (*model.Order, error) {
	var updated model.Order
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Debug().Str("order_id", id.Hex()).Msg("order not found")
			return nil, model.ErrOrderNotFound
		}
		r.logger.Error().Err(err).Str("order_id", id.Hex()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &updated, nil
}

// Count returns the total number of orders.
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// TotalRevenue sums totalAmount across all orders.
func (r *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate revenue")
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode revenue aggregate")
		return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}

	// No orders yields an empty result set, not a zero document.
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
