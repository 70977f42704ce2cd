package postgres

import (
	"context"
	"testing"
	"time"

	"rencontre/internal/domain/entity"
	"rencontre/internal/domain/repository"
	"rencontre/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB opens a GORM handle that builds statements without executing
// them. An insert then reports zero affected rows, the same signal a
// DO NOTHING clause produces when the pair already exists.
func newDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

func TestLikeRepository_Create_InsertSQLSkipsExistingPair(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Clauses(likePairConflict).Create(&model.LikeModel{
			FromUserID: uuid.New(),
			ToUserID:   uuid.New(),
		})
	})

	assert.Contains(t, sql, "ON CONFLICT")
	assert.Contains(t, sql, "DO NOTHING")
}

func TestLikeRepository_Create_ZeroRowsReportsDuplicate(t *testing.T) {
	repo := NewLikeRepository(newDryRunDB(t))

	err := repo.Create(context.Background(), &entity.Like{
		FromUserID: uuid.New(),
		ToUserID:   uuid.New(),
		CreatedAt:  time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateLike)
}

func TestMatchRepository_Create_InsertSQLSkipsExistingPair(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Clauses(matchPairConflict).Create(&model.MatchModel{
			UserAID: uuid.New(),
			UserBID: uuid.New(),
		})
	})

	assert.Contains(t, sql, "ON CONFLICT")
	assert.Contains(t, sql, "DO NOTHING")
}

func TestMatchRepository_Create_ZeroRowsReportsDuplicate(t *testing.T) {
	repo := NewMatchRepository(newDryRunDB(t))

	err := repo.Create(context.Background(), entity.NewMatch(uuid.New(), uuid.New()))
	assert.ErrorIs(t, err, repository.ErrDuplicateMatch)
}
