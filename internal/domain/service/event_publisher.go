package service

import (
	"context"
)

// MatchEvent represents a newly created match, published for async fan-out
// such as push notifications or analytics.
type MatchEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	MatchID   string `json:"match_id"`
	UserAID   string `json:"user_a_id"`
	UserBID   string `json:"user_b_id"`
	CreatedAt string `json:"created_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a match event for async processing
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
