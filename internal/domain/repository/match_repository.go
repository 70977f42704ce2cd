package repository

import (
	"context"
	"errors"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrMatchNotFound is returned when a match cannot be located.
	ErrMatchNotFound = errors.New("match not found")

	// ErrDuplicateMatch is returned when the normalized-pair uniqueness
	// constraint rejects an insert. Callers treat it as "already matched";
	// it is how the concurrent reciprocal-like race resolves.
	ErrDuplicateMatch = errors.New("match already exists")
)

// MatchRepository defines persistence operations for matches.
type MatchRepository interface {
	// LockPair serializes like/match writers of the unordered pair until
	// the surrounding transaction commits or rolls back. Both like
	// directions contend on the same normalized key, so a reciprocal-like
	// check made after the lock always sees the other side's committed
	// like. Only meaningful inside a TransactionManager.Execute callback.
	LockPair(ctx context.Context, userA, userB uuid.UUID) error

	// Create persists a new match. Returns ErrDuplicateMatch when a match
	// for the same unordered pair already exists.
	Create(ctx context.Context, match *entity.Match) error

	// FindByID retrieves a single match, or ErrMatchNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindByUser retrieves every match involving the given user, newest
	// first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error)
}
