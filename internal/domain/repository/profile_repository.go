package repository

import (
	"context"
	"errors"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations for dating profiles.
type ProfileRepository interface {
	// FindByUserID retrieves the profile owned by the given user, photos
	// ordered by position.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update persists profile field changes (bio, lists, city, coordinates).
	Update(ctx context.Context, profile *entity.Profile) error

	// FindCandidates retrieves up to limit users eligible for Discover:
	// users outside excludedIDs whose profile has a non-empty bio and a
	// complete coordinate pair. Each returned user carries a non-nil Profile
	// with photos preloaded. Ranking happens after retrieval, so callers
	// over-fetch; no ordering is guaranteed here.
	FindCandidates(ctx context.Context, excludedIDs []uuid.UUID, limit int) ([]*entity.User, error)
}
