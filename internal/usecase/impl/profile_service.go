package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rencontre/internal/delivery/context"
	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetMyProfile returns the caller's own profile with photos loaded.
func (s *profileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies the non-nil fields of the input to the profile.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) error {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find profile")
	}

	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.Interests != nil {
		profile.Interests = *input.Interests
	}
	if input.Intentions != nil {
		profile.Intentions = *input.Intentions
	}
	if input.Prompts != nil {
		profile.Prompts = *input.Prompts
	}
	if input.City != nil {
		profile.City = *input.City
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	s.log(ctx).Info("Profile updated", slog.String("user_id", userID.String()))

	return nil
}

// UpdateLocation sets the profile's coordinate pair.
func (s *profileService) UpdateLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find profile")
	}

	profile.Latitude = &latitude
	profile.Longitude = &longitude
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to update profile location")
	}

	return nil
}
