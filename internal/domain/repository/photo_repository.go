package repository

import (
	"context"
	"errors"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when a photo cannot be located.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines persistence operations for profile photos.
type PhotoRepository interface {
	// Create persists a new photo.
	Create(ctx context.Context, photo *entity.Photo) error

	// FindByID retrieves a single photo, or ErrPhotoNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)

	// FindByProfile retrieves a profile's photos ordered by position.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Photo, error)

	// Update persists position and primary-flag changes.
	Update(ctx context.Context, photo *entity.Photo) error

	// Delete removes a photo row. The stored binary is the caller's concern.
	Delete(ctx context.Context, id uuid.UUID) error
}
