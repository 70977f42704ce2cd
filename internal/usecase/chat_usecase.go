// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message shaped for the requesting user.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	IsMine    bool      `json:"isMine"`
	SenderID  uuid.UUID `json:"senderId"`
	IsSeen    bool      `json:"isSeen"`
}

// ChatUsecase handles messaging inside a match.
type ChatUsecase interface {
	// History returns the match's messages oldest first. The requesting
	// user must be a member of the match.
	History(ctx context.Context, userID, matchID uuid.UUID) ([]*ChatMessage, error)

	// Send appends a message to the match. Content must be non-empty
	// after trimming.
	Send(ctx context.Context, userID, matchID uuid.UUID, content string) (*ChatMessage, error)

	// MarkSeen marks every message addressed to the user in the match as seen.
	MarkSeen(ctx context.Context, userID, matchID uuid.UUID) error
}
