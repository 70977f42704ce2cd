// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeInput defines the data required to like another user.
type LikeInput struct {
	TargetID    uuid.UUID
	IsSuperLike bool
}

// LikeOutput reports the outcome of a like.
type LikeOutput struct {
	// Matched is true when this like completed a reciprocal pair and a
	// match was created (or already existed due to a concurrent like).
	Matched bool

	// AlreadyLiked is true when the acting user had already liked the
	// target; the call is idempotent and writes nothing.
	AlreadyLiked bool

	// Target identifies the liked user for the response payload.
	Target *entity.PublicIdentity
}

// LikeUsecase records likes and detects matches.
type LikeUsecase interface {
	// Like records a like from the acting user towards the target and
	// creates a match when the like is reciprocal. The like and the match
	// are persisted atomically.
	Like(ctx context.Context, actingUserID uuid.UUID, input *LikeInput) (*LikeOutput, error)
}
