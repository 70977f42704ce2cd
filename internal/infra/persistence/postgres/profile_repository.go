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

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the profile owned by the given user, photos ordered by position.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Photos", orderPhotosByPosition).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Update persists profile field changes. Photos are managed through the
// photo repository, so the association is not saved here.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.Photos = nil

	if err := repo.db.WithContext(ctx).
		Omit("created_at").
		Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindCandidates retrieves up to limit users eligible for discovery: users
// outside excludedIDs whose profile carries a non-empty bio and a complete
// coordinate pair. Ranking happens in the use case after retrieval, so no
// ordering is imposed here.
func (repo *profileRepository) FindCandidates(ctx context.Context, excludedIDs []uuid.UUID, limit int) ([]*entity.User, error) {
	var userModels []model.UserModel

	query := repo.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("profiles.bio IS NOT NULL AND profiles.bio <> ''").
		Where("profiles.latitude IS NOT NULL AND profiles.longitude IS NOT NULL")

	if len(excludedIDs) > 0 {
		query = query.Where("users.id NOT IN ?", excludedIDs)
	}

	if err := query.
		Preload("Profile.Photos", orderPhotosByPosition).
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discover candidates")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}
