package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds everything a candidate card is built from. Exactly one per
// user, created empty at registration and filled in afterwards.
type Profile struct {
	ID         uuid.UUID
	UserID     uuid.UUID // Foreign key to the owning User.
	Bio        *string   // Optional free text. Discover only surfaces profiles with a bio.
	Interests  []string  // Ordered list of interest tags.
	Intentions []string  // Ordered list of relationship intentions.
	Prompts    []Prompt  // Structured question/answer pairs.
	City       string
	Latitude   *float64 // Optional coordinate pair; both present or distance is undefined.
	Longitude  *float64
	Photos     []Photo // Ordered by Position, 1-based and contiguous.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Prompt is one answered profile question.
type Prompt struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HasBio reports whether the profile carries a non-empty bio.
func (p *Profile) HasBio() bool {
	return p.Bio != nil && *p.Bio != ""
}

// HasLocation reports whether both coordinates are present.
func (p *Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// PrimaryPhotoPath returns the path of the primary photo, falling back to the
// first photo, or nil when the profile has no photos at all.
func (p *Profile) PrimaryPhotoPath() *string {
	for i := range p.Photos {
		if p.Photos[i].IsPrimary {
			return &p.Photos[i].Path
		}
	}
	if len(p.Photos) > 0 {
		return &p.Photos[0].Path
	}

	return nil
}

// IsComplete reports whether the profile carries enough information to be a
// useful Discover candidate: bio, city, interests, intentions and at least
// one photo.
func (p *Profile) IsComplete() bool {
	return p.HasBio() &&
		p.City != "" &&
		len(p.Interests) > 0 &&
		len(p.Intentions) > 0 &&
		len(p.Photos) >= 1
}
