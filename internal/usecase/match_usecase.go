// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MatchFriend is the other side of a match, shaped for the viewer.
type MatchFriend struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Age         *int      `json:"age"`
	City        string    `json:"city"`
	Avatar      *string   `json:"avatar"`
}

// MatchEntry is one match in the viewer's list.
type MatchEntry struct {
	MatchID     uuid.UUID    `json:"match_id"`
	MatchedAt   time.Time    `json:"matched_at"`
	Friend      *MatchFriend `json:"friend"`
	LastMessage *string      `json:"last_message"`
	UnreadCount int          `json:"unread_count"`
}

// ListMatchesOutput is the viewer's match list, newest first.
type ListMatchesOutput struct {
	Count   int           `json:"count"`
	Results []*MatchEntry `json:"results"`
}

// MatchUsecase lists a user's matches.
type MatchUsecase interface {
	ListMatches(ctx context.Context, userID uuid.UUID) (*ListMatchesOutput, error)
}
