// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

const (
	// DefaultDiscoverLimit is the page size used when the client omits one.
	DefaultDiscoverLimit = 20

	// MaxDiscoverLimit caps the page size a client may request.
	MaxDiscoverLimit = 50
)

// DiscoverEntry is one ranked candidate, shaped for the viewer.
type DiscoverEntry struct {
	ID           uuid.UUID `json:"id"`
	DisplayName  string    `json:"displayName"`
	Age          *int      `json:"age"`
	City         string    `json:"city"`
	Bio          *string   `json:"bio"`
	Interests    []string  `json:"interests"`
	Intentions   []string  `json:"intentions"`
	PrimaryPhoto *string   `json:"primaryPhoto"`
	PhotosCount  int       `json:"photosCount"`
	DistanceKm   *float64  `json:"distanceKm"`
	Score        float64   `json:"score"`
}

// DiscoverOutput is one page of ranked candidates.
type DiscoverOutput struct {
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Count   int              `json:"count"`
	Results []*DiscoverEntry `json:"results"`
}

// DiscoverUsecase ranks candidate profiles for a viewer.
type DiscoverUsecase interface {
	// Discover returns one page of candidates ordered by score descending.
	// Page and limit are clamped, never rejected. A viewer without a
	// profile gets an empty page, not an error.
	Discover(ctx context.Context, viewerID uuid.UUID, page, limit int) (*DiscoverOutput, error)
}
