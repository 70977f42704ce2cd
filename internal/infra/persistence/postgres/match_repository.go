package postgres

import (
	"context"

	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	"rencontre/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchPairConflict skips the insert when a match for the normalized pair
// already exists. DO NOTHING keeps the surrounding transaction usable; a
// raised unique violation would abort it and roll back the like written
// earlier in the same transaction.
var matchPairConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
	DoNothing: true,
}

// matchRepository implements the repository.MatchRepository interface using GORM.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// LockPair takes a transaction-scoped advisory lock keyed by the normalized
// pair. The lock is released automatically when the transaction ends, so two
// simultaneous reciprocal likes are serialized and the second one observes
// the first one's committed like.
func (repo *matchRepository) LockPair(ctx context.Context, userA, userB uuid.UUID) error {
	pair := entity.NewMatch(userA, userB)
	key := pair.UserAID.String() + ":" + pair.UserBID.String()

	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
		return errors.Wrap(err, "failed to lock user pair")
	}

	return nil
}

// Create persists a new match. A concurrent insert for the same normalized
// pair surfaces as ErrDuplicateMatch without erroring the transaction.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	matchM := fromMatchDomain(match)

	result := repo.db.WithContext(ctx).Clauses(matchPairConflict).Create(matchM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateMatch
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create match")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateMatch
	}

	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt

	return nil
}

// FindByID retrieves a single match by its unique ID.
func (repo *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by id")
	}

	return toMatchDomain(&matchM), nil
}

// FindByUser retrieves every match involving the given user, newest first.
func (repo *matchRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error) {
	var matchModels []model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for i := range matchModels {
		matches = append(matches, toMatchDomain(&matchModels[i]))
	}

	return matches, nil
}
