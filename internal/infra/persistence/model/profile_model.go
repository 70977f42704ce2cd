package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"rencontre/internal/domain/entity"
)

// ProfileModel mirrors the 'profiles' table. Interests, intentions and
// prompts are stored as JSONB columns.
type ProfileModel struct {
	ID         uuid.UUID                           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID                           `gorm:"type:uuid;not null;uniqueIndex"`
	Bio        *string                             `gorm:"type:text"`
	Interests  datatypes.JSONSlice[string]         `gorm:"type:jsonb"`
	Intentions datatypes.JSONSlice[string]         `gorm:"type:jsonb"`
	Prompts    datatypes.JSONType[[]entity.Prompt] `gorm:"type:jsonb"`
	City       string                              `gorm:"type:varchar(100)"`
	Latitude   *float64                            `gorm:"type:decimal(9,6)"`
	Longitude  *float64                            `gorm:"type:decimal(9,6)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Photos []PhotoModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
