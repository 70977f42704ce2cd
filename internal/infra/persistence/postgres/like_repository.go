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

// likePairConflict skips the insert when the (from, to) pair already exists.
// DO NOTHING keeps the surrounding transaction usable; a raised unique
// violation would abort it and roll back everything written before the like.
var likePairConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
	DoNothing: true,
}

// likeRepository implements the repository.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// Create persists a new like. A concurrent duplicate of the ordered pair
// surfaces as ErrDuplicateLike without erroring the transaction.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	result := repo.db.WithContext(ctx).Clauses(likePairConflict).Create(likeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateLike
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateLike
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// FindByPair retrieves the like from one user to another.
func (repo *likeRepository) FindByPair(ctx context.Context, fromUserID, toUserID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel

	if err := repo.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by pair")
	}

	return toLikeDomain(&likeM), nil
}

// FindLikedUserIDs returns the IDs of every user the given user has liked.
func (repo *likeRepository) FindLikedUserIDs(ctx context.Context, fromUserID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("from_user_id = ?", fromUserID).
		Pluck("to_user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find liked user ids")
	}

	return ids, nil
}
