package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. The composite unique index on
// (from_user_id, to_user_id) makes repeated likes idempotent at the
// storage level.
type LikeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FromUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_pair"`
	ToUserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_pair;index"`
	IsSuperLike bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
