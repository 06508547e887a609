package repository

import (
	"context"
	"fmt"

	"stylekart/internal/database"
	"stylekart/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// profileRepository implements ProfileRepository against MongoDB.
type profileRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewProfileRepository creates a new MongoDB-backed profile repository.
func NewProfileRepository(db *mongo.Database, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{
		collection: db.Collection(database.CollectionProfiles),
		logger:     logger.With().Str("repository", "profile").Logger(),
	}
}

// GetByEmail retrieves a profile by email.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var p model.Profile
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			r.logger.Debug().Str("email", email).Msg("profile not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query profile")
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &p, nil
}

// Upsert creates or overwrites the profile keyed by its email.
func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": profile.Email},
		bson.M{"$set": bson.M{
			"name":    profile.Name,
			"phone":   profile.Phone,
			"address": profile.Address,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", profile.Email).Msg("failed to upsert profile")
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
