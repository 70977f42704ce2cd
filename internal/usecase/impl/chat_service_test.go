package impl

import (
	"context"
	"testing"
	"time"

	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	mockRepo "rencontre/internal/mocks/repository"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (usecase.ChatUsecase, *mockRepo.MockMatchRepository, *mockRepo.MockMessageRepository) {
	mockMatchRepo := mockRepo.NewMockMatchRepository(t)
	mockMessageRepo := mockRepo.NewMockMessageRepository(t)

	svc := NewChatService(ChatServiceParams{
		MatchRepo:   mockMatchRepo,
		MessageRepo: mockMessageRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, mockMatchRepo, mockMessageRepo
}

func TestChatService_History(t *testing.T) {
	svc, mockMatchRepo, mockMessageRepo := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	match := entity.NewMatch(userID, otherID)

	mockMatchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
	mockMessageRepo.EXPECT().
		FindByMatch(ctx, match.ID).
		Return([]*entity.Message{
			{ID: uuid.New(), MatchID: match.ID, SenderID: otherID, Content: "salut", CreatedAt: time.Now()},
			{ID: uuid.New(), MatchID: match.ID, SenderID: userID, Content: "hey", CreatedAt: time.Now()},
		}, nil)

	messages, err := svc.History(ctx, userID, match.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.False(t, messages[0].IsMine)
	assert.True(t, messages[1].IsMine)
}

func TestChatService_History_NotAMember(t *testing.T) {
	svc, mockMatchRepo, _ := newChatService(t)

	ctx := context.Background()
	match := entity.NewMatch(uuid.New(), uuid.New())
	stranger := uuid.New()

	mockMatchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)

	_, err := svc.History(ctx, stranger, match.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchMember)
}

func TestChatService_History_MatchNotFound(t *testing.T) {
	svc, mockMatchRepo, _ := newChatService(t)

	ctx := context.Background()
	matchID := uuid.New()

	mockMatchRepo.EXPECT().FindByID(ctx, matchID).Return(nil, repository.ErrMatchNotFound)

	_, err := svc.History(ctx, uuid.New(), matchID)
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}

func TestChatService_Send(t *testing.T) {
	svc, mockMatchRepo, mockMessageRepo := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := entity.NewMatch(userID, uuid.New())

	mockMatchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)

	var created *entity.Message
	mockMessageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		RunAndReturn(func(_ context.Context, message *entity.Message) error {
			created = message
			return nil
		})

	sent, err := svc.Send(ctx, userID, match.ID, "coucou")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "coucou", created.Content)
	assert.Equal(t, userID, created.SenderID)
	assert.False(t, created.IsSeen)
	assert.True(t, sent.IsMine)
}

func TestChatService_Send_EmptyContent(t *testing.T) {
	svc, _, _ := newChatService(t)

	_, err := svc.Send(context.Background(), uuid.New(), uuid.New(), "   \t\n")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
}

func TestChatService_MarkSeen(t *testing.T) {
	svc, mockMatchRepo, mockMessageRepo := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	match := entity.NewMatch(userID, uuid.New())

	mockMatchRepo.EXPECT().FindByID(ctx, match.ID).Return(match, nil)
	mockMessageRepo.EXPECT().MarkSeen(ctx, match.ID, userID).Return(nil)

	assert.NoError(t, svc.MarkSeen(ctx, userID, match.ID))
}
