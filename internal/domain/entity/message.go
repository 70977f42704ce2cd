package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat message inside a match conversation. Append-only.
type Message struct {
	ID        uuid.UUID
	MatchID   uuid.UUID
	SenderID  uuid.UUID
	Content   string
	IsSeen    bool
	CreatedAt time.Time
}
