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
)

// photoRepository implements the repository.PhotoRepository interface using GORM.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{
		db: db,
	}
}

// Create persists a new photo row.
func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindByID retrieves a single photo by its unique ID.
func (repo *photoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	var photoM model.PhotoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo by id")
	}

	return toPhotoDomain(&photoM), nil
}

// FindByProfile retrieves a profile's photos ordered by position.
func (repo *photoRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Photo, error) {
	var photoModels []model.PhotoModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("position ASC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find photos by profile")
	}

	photos := make([]*entity.Photo, 0, len(photoModels))
	for i := range photoModels {
		photos = append(photos, toPhotoDomain(&photoModels[i]))
	}

	return photos, nil
}

// Update persists position and primary-flag changes for one photo.
func (repo *photoRepository) Update(ctx context.Context, photo *entity.Photo) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PhotoModel{}).
		Where("id = ?", photo.ID).
		Updates(map[string]any{
			"position":   photo.Position,
			"is_primary": photo.IsPrimary,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update photo")
	}

	return nil
}

// Delete removes a photo row. The stored binary is the caller's concern.
func (repo *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhotoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}
