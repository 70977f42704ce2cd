package repository

import (
	"context"

	"rencontre/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines persistence operations for chat messages.
// Conversations are append-only; messages are never edited or deleted.
type MessageRepository interface {
	// Create appends a new message to a match conversation.
	Create(ctx context.Context, message *entity.Message) error

	// FindByMatch retrieves the full history of a conversation, oldest
	// first.
	FindByMatch(ctx context.Context, matchID uuid.UUID) ([]*entity.Message, error)

	// FindLastByMatch retrieves the most recent message of a conversation,
	// or nil when the conversation is empty.
	FindLastByMatch(ctx context.Context, matchID uuid.UUID) (*entity.Message, error)

	// CountUnseen counts messages in a conversation that the given reader
	// has not seen yet (messages sent by the other side with IsSeen false).
	CountUnseen(ctx context.Context, matchID, readerID uuid.UUID) (int64, error)

	// MarkSeen flags every message addressed to the reader as seen.
	MarkSeen(ctx context.Context, matchID, readerID uuid.UUID) error
}
