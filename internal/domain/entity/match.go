package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Match is the durable, undirected pairing created once two distinct users
// have liked each other. The pair is stored normalized (UserAID < UserBID in
// byte order) so a single unique constraint covers both like directions; at
// most one Match ever exists per unordered pair. Immutable after creation.
type Match struct {
	ID        uuid.UUID
	UserAID   uuid.UUID
	UserBID   uuid.UUID
	CreatedAt time.Time
}

// NewMatch builds a Match for the unordered pair {a, b}, normalizing the
// stored order so both like directions map onto the same row.
func NewMatch(a, b uuid.UUID) *Match {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	return &Match{UserAID: a, UserBID: b}
}

// Involves reports whether the given user is one side of the match.
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// OtherSide returns the partner of the given user in this match.
// The caller must ensure the user is involved in the match.
func (m *Match) OtherSide(userID uuid.UUID) uuid.UUID {
	if m.UserAID == userID {
		return m.UserBID
	}

	return m.UserAID
}
