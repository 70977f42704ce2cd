package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	deliverycontext "rencontre/internal/delivery/context"
	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	"rencontre/internal/domain/service"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// photoService implements the PhotoUsecase interface.
type photoService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	photoRepo    repository.PhotoRepository
	photoStorage service.PhotoStorage
	logger       *slog.Logger
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	PhotoRepo    repository.PhotoRepository
	PhotoStorage service.PhotoStorage
	Logger       *slog.Logger
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		photoRepo:    params.PhotoRepo,
		photoStorage: params.PhotoStorage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddPhoto stores the upload and appends it to the gallery. Position is the
// next free slot; the first photo of a profile becomes the primary one.
func (s *photoService) AddPhoto(ctx context.Context, userID uuid.UUID, input *usecase.AddPhotoInput) (*entity.Photo, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if len(profile.Photos) >= entity.MaxPhotosPerProfile {
		return nil, domainerrors.ErrPhotoLimitReached
	}

	photoID := uuid.New()
	key := fmt.Sprintf("photos/%s/%s%s", profile.ID, photoID, path.Ext(input.FileName))
	storedPath, err := s.photoStorage.Save(ctx, key, input.ContentType, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	photo := &entity.Photo{
		ID:        photoID,
		ProfileID: profile.ID,
		Path:      storedPath,
		Position:  len(profile.Photos) + 1,
		IsPrimary: len(profile.Photos) == 0,
		CreatedAt: time.Now(),
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// The row failed, so the stored binary is orphaned. Best effort
		// cleanup, the bucket is periodically reconciled anyway.
		if delErr := s.photoStorage.Delete(ctx, key); delErr != nil {
			s.log(ctx).Warn("Failed to clean up orphaned photo", slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create photo")
	}

	s.log(ctx).Info("Photo added",
		slog.String("user_id", userID.String()),
		slog.String("photo_id", photo.ID.String()),
		slog.Int("position", photo.Position))

	return photo, nil
}

// DeletePhoto removes an owned photo and renumbers the remaining positions so
// they stay 1-based and contiguous. Primary ownership falls back to the first
// remaining photo.
func (s *photoService) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	profile, photo, err := s.findOwnedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.PhotoRepo()

		if err := photoRepo.Delete(ctx, photo.ID); err != nil {
			return errors.Wrap(err, "failed to delete photo")
		}

		position := 1
		wasPrimary := photo.IsPrimary
		for i := range profile.Photos {
			remaining := &profile.Photos[i]
			if remaining.ID == photo.ID {
				continue
			}

			changed := false
			if remaining.Position != position {
				remaining.Position = position
				changed = true
			}
			if wasPrimary && position == 1 && !remaining.IsPrimary {
				remaining.IsPrimary = true
				changed = true
			}
			if changed {
				if err := photoRepo.Update(ctx, remaining); err != nil {
					return errors.Wrap(err, "failed to renumber photo")
				}
			}
			position++
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := s.photoStorage.Delete(ctx, photo.Path); err != nil {
		s.log(ctx).Warn("Failed to delete photo binary", slog.Any("error", err))
	}

	return nil
}

// SetPrimary marks the photo as primary and clears the flag everywhere else.
func (s *photoService) SetPrimary(ctx context.Context, userID, photoID uuid.UUID) error {
	profile, photo, err := s.findOwnedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.PhotoRepo()

		for i := range profile.Photos {
			p := &profile.Photos[i]
			isPrimary := p.ID == photo.ID
			if p.IsPrimary == isPrimary {
				continue
			}

			p.IsPrimary = isPrimary
			if err := photoRepo.Update(ctx, p); err != nil {
				return errors.Wrap(err, "failed to update primary flag")
			}
		}

		return nil
	})
}

// Reorder rewrites positions to follow the given id order. The list must be a
// permutation of the profile's photo ids.
func (s *photoService) Reorder(ctx context.Context, userID uuid.UUID, photoIDs []uuid.UUID) error {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find profile")
	}

	if len(photoIDs) != len(profile.Photos) {
		return domainerrors.ErrPhotoReorderMismatch
	}

	byID := make(map[uuid.UUID]*entity.Photo, len(profile.Photos))
	for i := range profile.Photos {
		byID[profile.Photos[i].ID] = &profile.Photos[i]
	}

	seen := make(map[uuid.UUID]struct{}, len(photoIDs))
	for _, id := range photoIDs {
		if _, ok := byID[id]; !ok {
			return domainerrors.ErrPhotoNotFound
		}
		if _, dup := seen[id]; dup {
			return domainerrors.ErrPhotoReorderMismatch
		}
		seen[id] = struct{}{}
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.PhotoRepo()

		for i, id := range photoIDs {
			photo := byID[id]
			if photo.Position == i+1 {
				continue
			}

			photo.Position = i + 1
			if err := photoRepo.Update(ctx, photo); err != nil {
				return errors.Wrap(err, "failed to reorder photo")
			}
		}

		return nil
	})
}

// findOwnedPhoto loads the caller's profile and checks the photo belongs to it.
func (s *photoService) findOwnedPhoto(ctx context.Context, userID, photoID uuid.UUID) (*entity.Profile, *entity.Photo, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find profile")
	}

	for i := range profile.Photos {
		if profile.Photos[i].ID == photoID {
			return profile, &profile.Photos[i], nil
		}
	}

	return nil, nil, domainerrors.ErrPhotoNotFound
}
