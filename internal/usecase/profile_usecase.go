// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) error
	UpdateLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the partial update payload for a profile.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Bio        *string          `json:"bio,omitempty"`
	Interests  *[]string        `json:"interests,omitempty"`
	Intentions *[]string        `json:"intentions,omitempty"`
	Prompts    *[]entity.Prompt `json:"prompts,omitempty"`
	City       *string          `json:"city,omitempty"`
}
