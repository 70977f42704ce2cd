package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxPhotosPerProfile is the hard cap on photos attached to one profile.
const MaxPhotosPerProfile = 6

// Photo is one image attached to a profile. Positions are 1-based and kept
// contiguous per profile, and at most one photo per profile is primary; both
// invariants are maintained by the photo service, not by storage.
type Photo struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Path      string // Storage key of the image, opaque to the domain.
	Position  int
	IsPrimary bool
	CreatedAt time.Time
}
