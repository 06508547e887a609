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
)

// userRepository implements UserRepository against MongoDB.
type userRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewUserRepository creates a new MongoDB-backed user repository.
func NewUserRepository(db *mongo.Database, logger zerolog.Logger) UserRepository {
	return &userRepository{
		collection: db.Collection(database.CollectionUsers),
		logger:     logger.With().Str("repository", "user").Logger(),
	}
}

// Insert stores a new user. Duplicate emails surface as ErrEmailTaken
// through the unique index on the email field.
func (r *userRepository) Insert(ctx context.Context, user *model.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Debug().Str("email", user.Email).Msg("duplicate email on signup")
			return model.ErrEmailTaken
		}
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Debug().Str("email", email).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// UpdateName overwrites the user's display name.
func (r *userRepository) UpdateName(ctx context.Context, email, name string) error {
	return r.setField(ctx, email, "name", name)
}

// ClearNewUserFlag clears the one-time first-login flag.
func (r *userRepository) ClearNewUserFlag(ctx context.Context, email string) error {
	return r.setField(ctx, email, "newUser", false)
}

// UpdateWishlist overwrites the user's stored wishlist references.
func (r *userRepository) UpdateWishlist(ctx context.Context, email string, wishlist []primitive.ObjectID) error {
	return r.setField(ctx, email, "wishlist", wishlist)
}

// UpdateCart overwrites the user's stored cart items.
func (r *userRepository) UpdateCart(ctx context.Context, email string, cart []model.CartItem) error {
	return r.setField(ctx, email, "cart", cart)
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count users")
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountByRole returns the number of users holding the given role.
func (r *userRepository) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		r.logger.Error().Err(err).Str("role", string(role)).Msg("failed to count users by role")
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}

// setField sets a single field on the user document keyed by email.
func (r *userRepository) setField(ctx context.Context, email, field string, value interface{}) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Str("field", field).Msg("failed to update user")
		return fmt.Errorf("failed to update user %s: %w", field, err)
	}

	if result.MatchedCount == 0 {
		return model.ErrUserNotFound
	}

	return nil
}
