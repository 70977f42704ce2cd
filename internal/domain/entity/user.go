// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It carries only identity information; everything a viewer sees on a card
// lives on the Profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier.
	PasswordHash string    // Bcrypt hash of the login password. Never serialized.
	DisplayName  string    // The name shown to other users.
	BirthDate    *time.Time // Used to derive the displayed age. May be absent on legacy rows.
	Gender       string
	City         string
	Profile      *Profile // The user's dating profile, created at registration. 1:1.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Age returns the user's age in whole years at the given instant,
// or nil when the birth date is unknown.
func (u *User) Age(now time.Time) *int {
	if u.BirthDate == nil {
		return nil
	}

	years := now.Year() - u.BirthDate.Year()
	// Subtract one year until the birthday has passed this year.
	anniversary := u.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}

	return &years
}

// PublicIdentity is the minimal identity exposed to other users,
// e.g. in the like/match response payloads.
type PublicIdentity struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
}

// Public returns the user's viewer-facing identity.
func (u *User) Public() PublicIdentity {
	return PublicIdentity{ID: u.ID, DisplayName: u.DisplayName}
}
