package repository

import (
	"context"
	"errors"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLikeNotFound is returned when no Like exists for an ordered pair.
	ErrLikeNotFound = errors.New("like not found")

	// ErrDuplicateLike is returned when the (fromUser, toUser) uniqueness
	// constraint rejects an insert. Callers treat it as "already liked".
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines persistence operations for directed likes.
type LikeRepository interface {
	// Create persists a new like. Returns ErrDuplicateLike when a like for
	// the same ordered pair already exists.
	Create(ctx context.Context, like *entity.Like) error

	// FindByPair retrieves the like from one user to another, or
	// ErrLikeNotFound.
	FindByPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entity.Like, error)

	// FindLikedUserIDs returns the IDs of every user the given user has
	// liked, in no particular order.
	FindLikedUserIDs(ctx context.Context, fromUserID uuid.UUID) ([]uuid.UUID, error)
}
