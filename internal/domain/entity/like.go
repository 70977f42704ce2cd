package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is a directed edge from one user to another. At most one Like exists
// per ordered (FromUserID, ToUserID) pair; repeated like actions are
// idempotent. Likes are never deleted and never mutated after creation.
type Like struct {
	ID          uuid.UUID
	FromUserID  uuid.UUID
	ToUserID    uuid.UUID
	IsSuperLike bool
	CreatedAt   time.Time
}
