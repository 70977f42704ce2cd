package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel mirrors the 'matches' table. Pairs are stored normalized
// (user_a_id < user_b_id in byte order) so the composite unique index
// guarantees at most one match per unordered pair, whichever side's
// reciprocal like lands first.
type MatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserAID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair"`
	UserBID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
