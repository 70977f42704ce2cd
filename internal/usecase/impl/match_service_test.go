package impl

import (
	"context"
	"testing"

	"rencontre/internal/domain/entity"
	mockRepo "rencontre/internal/mocks/repository"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchService(t *testing.T) (usecase.MatchUsecase, *mockRepo.MockMatchRepository, *mockRepo.MockUserRepository, *mockRepo.MockMessageRepository) {
	mockMatchRepo := mockRepo.NewMockMatchRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)

	svc := NewMatchService(MatchServiceParams{
		MatchRepo:   mockMatchRepo,
		UserRepo:    mockUserRepo,
		MessageRepo: mockMessageRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, mockMatchRepo, mockUserRepo, mockMessageRepo
}

func TestMatchService_ListMatches(t *testing.T) {
	svc, mockMatchRepo, mockUserRepo, mockMessageRepo := newMatchService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	friend := newCandidate("Chloé", "salut", 2, nil, 48.85, 2.35)
	match := entity.NewMatch(viewerID, friend.ID)

	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return([]*entity.Match{match}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, friend.ID).Return(friend, nil)
	mockMessageRepo.EXPECT().
		FindLastByMatch(ctx, match.ID).
		Return(&entity.Message{ID: uuid.New(), MatchID: match.ID, SenderID: friend.ID, Content: "on se voit quand ?"}, nil)
	mockMessageRepo.EXPECT().CountUnseen(ctx, match.ID, viewerID).Return(int64(3), nil)

	output, err := svc.ListMatches(ctx, viewerID)
	require.NoError(t, err)
	require.Equal(t, 1, output.Count)

	entry := output.Results[0]
	assert.Equal(t, match.ID, entry.MatchID)
	assert.Equal(t, friend.ID, entry.Friend.ID)
	assert.Equal(t, "Chloé", entry.Friend.DisplayName)
	require.NotNil(t, entry.Friend.Avatar)
	assert.Equal(t, "/uploads/photo.jpg", *entry.Friend.Avatar)
	require.NotNil(t, entry.LastMessage)
	assert.Equal(t, "on se voit quand ?", *entry.LastMessage)
	assert.Equal(t, 3, entry.UnreadCount)
}

func TestMatchService_ListMatches_Empty(t *testing.T) {
	svc, mockMatchRepo, _, _ := newMatchService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return(nil, nil)

	output, err := svc.ListMatches(ctx, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 0, output.Count)
	assert.Empty(t, output.Results)
}

func TestMatchService_ListMatches_NoMessagesYet(t *testing.T) {
	svc, mockMatchRepo, mockUserRepo, mockMessageRepo := newMatchService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	friend := newCandidate("Marc", "hey", 0, nil, 45.76, 4.83)
	match := entity.NewMatch(viewerID, friend.ID)

	mockMatchRepo.EXPECT().FindByUser(ctx, viewerID).Return([]*entity.Match{match}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, friend.ID).Return(friend, nil)
	mockMessageRepo.EXPECT().FindLastByMatch(ctx, match.ID).Return(nil, nil)
	mockMessageRepo.EXPECT().CountUnseen(ctx, match.ID, viewerID).Return(int64(0), nil)

	output, err := svc.ListMatches(ctx, viewerID)
	require.NoError(t, err)
	require.Equal(t, 1, output.Count)
	assert.Nil(t, output.Results[0].LastMessage)
	assert.Nil(t, output.Results[0].Friend.Avatar)
	assert.Equal(t, 0, output.Results[0].UnreadCount)
}
