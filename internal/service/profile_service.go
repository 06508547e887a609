package service

import (
	"context"
	"fmt"

	"stylekart/internal/model"
	"stylekart/internal/repository"

	"github.com/rs/zerolog"
)

// defaultProfileName seeds lazily created profiles when no matching
// user record exists.
const defaultProfileName = "New User"

// profileService implements ProfileService.
type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "profile").Logger(),
	}
}

// Get returns the profile, lazily creating it when absent. The new
// profile copies the user's display name at this moment; later user
// renames are not pushed here.
func (s *profileService) Get(ctx context.Context, email string) (*model.Profile, error) {
	if email == "" {
		return nil, model.ErrMissingFields
	}

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	name := defaultProfileName
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up user for profile seed")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user != nil {
		name = user.Name
	}

	profile = &model.Profile{
		Email: email,
		Name:  name,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create profile")
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("profile created lazily")

	return profile, nil
}

// Upsert overwrites the profile, then pushes the new name back into
// the user record. The secondary write is best-effort: its failure is
// logged and does not fail or roll back the profile write.
func (s *profileService) Upsert(ctx context.Context, email, name, phone, address string) (*model.Profile, error) {
	if email == "" {
		return nil, model.ErrMissingFields
	}

	profile := &model.Profile{
		Email:   email,
		Name:    name,
		Phone:   phone,
		Address: address,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to upsert profile")
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	if name != "" {
		if err := s.userRepo.UpdateName(ctx, email, name); err != nil {
			s.logger.Warn().
				Err(err).
				Str("email", email).
				Msg("best-effort user name sync failed")
		}
	}

	s.logger.Info().Str("email", email).Msg("profile updated")

	return profile, nil
}
