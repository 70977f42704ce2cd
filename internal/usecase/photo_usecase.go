// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

// AddPhotoInput carries an uploaded photo's content and metadata.
type AddPhotoInput struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// PhotoUsecase defines the interface for managing a profile's photo gallery.
type PhotoUsecase interface {
	// AddPhoto stores the upload and appends it to the gallery.
	// The first photo of a profile becomes the primary one.
	AddPhoto(ctx context.Context, userID uuid.UUID, input *AddPhotoInput) (*entity.Photo, error)

	// DeletePhoto removes a photo owned by the user and renumbers the
	// remaining positions contiguously.
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error

	// SetPrimary marks the given photo as primary and clears the flag on
	// every other photo of the profile.
	SetPrimary(ctx context.Context, userID, photoID uuid.UUID) error

	// Reorder rewrites photo positions to follow the given id order. The
	// list must contain exactly the profile's photo ids.
	Reorder(ctx context.Context, userID uuid.UUID, photoIDs []uuid.UUID) error
}
