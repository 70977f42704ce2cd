package model

import (
	"time"

	"github.com/google/uuid"
)

// PhotoModel mirrors the 'photos' table. Positions are 1-based per profile.
type PhotoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Path      string    `gorm:"type:varchar(512);not null"`
	Position  int       `gorm:"not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "photos"
}
