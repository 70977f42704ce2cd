package impl

import (
	"context"
	"strings"
	"testing"

	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	mockRepo "rencontre/internal/mocks/repository"
	mockSvc "rencontre/internal/mocks/service"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type photoServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	profileRepo  *mockRepo.MockProfileRepository
	photoRepo    *mockRepo.MockPhotoRepository
	factory      *mockRepo.MockRepositoryFactory
	photoStorage *mockSvc.MockPhotoStorage
}

func newPhotoService(t *testing.T) (usecase.PhotoUsecase, *photoServiceMocks) {
	m := &photoServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		photoRepo:    mockRepo.NewMockPhotoRepository(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		photoStorage: mockSvc.NewMockPhotoStorage(t),
	}

	svc := NewPhotoService(PhotoServiceParams{
		TxManager:    m.txManager,
		ProfileRepo:  m.profileRepo,
		PhotoRepo:    m.photoRepo,
		PhotoStorage: m.photoStorage,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func profileWithPhotos(userID uuid.UUID, count int) *entity.Profile {
	profile := &entity.Profile{ID: uuid.New(), UserID: userID}
	for i := 0; i < count; i++ {
		profile.Photos = append(profile.Photos, entity.Photo{
			ID:        uuid.New(),
			ProfileID: profile.ID,
			Path:      "/uploads/p.jpg",
			Position:  i + 1,
			IsPrimary: i == 0,
		})
	}

	return profile
}

func TestPhotoService_AddPhoto_FirstBecomesPrimary(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 0)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	m.photoStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("/uploads/stored.jpg", nil)
	m.photoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Photo")).
		Return(nil)

	photo, err := svc.AddPhoto(ctx, userID, &usecase.AddPhotoInput{
		FileName:    "me.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("fake-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, photo.Position)
	assert.True(t, photo.IsPrimary)
	assert.Equal(t, "/uploads/stored.jpg", photo.Path)
}

func TestPhotoService_AddPhoto_AppendsAtNextPosition(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 2)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	m.photoStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("/uploads/stored.png", nil)
	m.photoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Photo")).
		Return(nil)

	photo, err := svc.AddPhoto(ctx, userID, &usecase.AddPhotoInput{
		FileName:    "third.png",
		ContentType: "image/png",
		Content:     strings.NewReader("fake-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, photo.Position)
	assert.False(t, photo.IsPrimary)
}

func TestPhotoService_AddPhoto_LimitReached(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, entity.MaxPhotosPerProfile)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	_, err := svc.AddPhoto(ctx, userID, &usecase.AddPhotoInput{
		FileName:    "seventh.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("fake-bytes"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhotoLimitReached)
}

func TestPhotoService_DeletePhoto_RenumbersAndPromotesPrimary(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 3)
	primary := profile.Photos[0]

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	m.factory.EXPECT().PhotoRepo().Return(m.photoRepo)
	passthroughTx(m.txManager, m.factory)

	m.photoRepo.EXPECT().Delete(ctx, primary.ID).Return(nil)

	updated := map[uuid.UUID]*entity.Photo{}
	m.photoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Photo")).
		RunAndReturn(func(_ context.Context, photo *entity.Photo) error {
			cp := *photo
			updated[photo.ID] = &cp
			return nil
		})

	m.photoStorage.EXPECT().Delete(ctx, primary.Path).Return(nil)

	require.NoError(t, svc.DeletePhoto(ctx, userID, primary.ID))

	// Remaining photos shift to positions 1 and 2, the new first one
	// becomes primary.
	second := updated[profile.Photos[1].ID]
	third := updated[profile.Photos[2].ID]
	require.NotNil(t, second)
	require.NotNil(t, third)
	assert.Equal(t, 1, second.Position)
	assert.True(t, second.IsPrimary)
	assert.Equal(t, 2, third.Position)
	assert.False(t, third.IsPrimary)
}

func TestPhotoService_DeletePhoto_NotOwned(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 2)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	err := svc.DeletePhoto(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestPhotoService_SetPrimary_ClearsOthers(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 3)
	newPrimary := profile.Photos[2]

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	m.factory.EXPECT().PhotoRepo().Return(m.photoRepo)
	passthroughTx(m.txManager, m.factory)

	updated := map[uuid.UUID]bool{}
	m.photoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Photo")).
		RunAndReturn(func(_ context.Context, photo *entity.Photo) error {
			updated[photo.ID] = photo.IsPrimary
			return nil
		})

	require.NoError(t, svc.SetPrimary(ctx, userID, newPrimary.ID))

	// The old primary is cleared and the chosen one is set; the untouched
	// middle photo needs no write.
	assert.Equal(t, map[uuid.UUID]bool{
		profile.Photos[0].ID: false,
		newPrimary.ID:        true,
	}, updated)
}

func TestPhotoService_Reorder(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 3)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	m.factory.EXPECT().PhotoRepo().Return(m.photoRepo)
	passthroughTx(m.txManager, m.factory)

	positions := map[uuid.UUID]int{}
	m.photoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Photo")).
		RunAndReturn(func(_ context.Context, photo *entity.Photo) error {
			positions[photo.ID] = photo.Position
			return nil
		})

	// Reverse the gallery.
	order := []uuid.UUID{profile.Photos[2].ID, profile.Photos[1].ID, profile.Photos[0].ID}
	require.NoError(t, svc.Reorder(ctx, userID, order))

	assert.Equal(t, 1, positions[profile.Photos[2].ID])
	assert.Equal(t, 3, positions[profile.Photos[0].ID])
	// The middle photo already sits at position 2, no write expected.
	_, wrote := positions[profile.Photos[1].ID]
	assert.False(t, wrote)
}

func TestPhotoService_Reorder_CountMismatch(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 3)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	err := svc.Reorder(ctx, userID, []uuid.UUID{profile.Photos[0].ID})
	assert.ErrorIs(t, err, domainerrors.ErrPhotoReorderMismatch)
}

func TestPhotoService_Reorder_UnknownID(t *testing.T) {
	svc, m := newPhotoService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := profileWithPhotos(userID, 2)

	m.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	err := svc.Reorder(ctx, userID, []uuid.UUID{profile.Photos[0].ID, uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}
