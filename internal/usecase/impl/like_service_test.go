package impl

import (
	"context"
	"testing"

	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	mockRepo "rencontre/internal/mocks/repository"
	mockSvc "rencontre/internal/mocks/service"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type likeServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	likeRepo       *mockRepo.MockLikeRepository
	matchRepo      *mockRepo.MockMatchRepository
	factory        *mockRepo.MockRepositoryFactory
	eventPublisher *mockSvc.MockEventPublisher
}

func newLikeService(t *testing.T) (usecase.LikeUsecase, *likeServiceMocks) {
	m := &likeServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		likeRepo:       mockRepo.NewMockLikeRepository(t),
		matchRepo:      mockRepo.NewMockMatchRepository(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewLikeService(LikeServiceParams{
		TxManager:      m.txManager,
		UserRepo:       m.userRepo,
		EventPublisher: m.eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return svc, m
}

func (m *likeServiceMocks) expectTx() {
	m.factory.EXPECT().LikeRepo().Return(m.likeRepo).Maybe()
	m.factory.EXPECT().MatchRepo().Return(m.matchRepo).Maybe()
	passthroughTx(m.txManager, m.factory)
}

// expectPairLock wires the advisory lock every transactional like path takes.
func (m *likeServiceMocks) expectPairLock(ctx context.Context, actingID, targetID uuid.UUID) {
	m.matchRepo.EXPECT().LockPair(ctx, actingID, targetID).Return(nil)
}

func TestLikeService_Like_TargetNotFound(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLikeService_Like_Self(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, actingID).
		Return(&entity.User{ID: actingID, DisplayName: "Alice"}, nil)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: actingID})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSelfLike)
}

func TestLikeService_Like_FirstLikeNoReciprocal(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()
	m.expectPairLock(ctx, actingID, targetID)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(nil)
	m.likeRepo.EXPECT().
		FindByPair(ctx, targetID, actingID).
		Return(nil, repository.ErrLikeNotFound)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID, IsSuperLike: true})
	require.NoError(t, err)
	assert.False(t, output.Matched)
	assert.False(t, output.AlreadyLiked)
	assert.Equal(t, targetID, output.Target.ID)
	assert.Equal(t, "Bob", output.Target.DisplayName)
}

func TestLikeService_Like_Idempotent(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()
	m.expectPairLock(ctx, actingID, targetID)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(&entity.Like{ID: uuid.New(), FromUserID: actingID, ToUserID: targetID}, nil)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.NoError(t, err)
	assert.True(t, output.AlreadyLiked)
	assert.False(t, output.Matched)
}

func TestLikeService_Like_ReciprocalCreatesMatchAndPublishes(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()
	m.expectPairLock(ctx, actingID, targetID)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(nil)
	m.likeRepo.EXPECT().
		FindByPair(ctx, targetID, actingID).
		Return(&entity.Like{ID: uuid.New(), FromUserID: targetID, ToUserID: actingID}, nil)

	var createdMatch *entity.Match
	m.matchRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Match")).
		RunAndReturn(func(_ context.Context, match *entity.Match) error {
			createdMatch = match
			return nil
		})

	m.eventPublisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Return(nil)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.NoError(t, err)
	assert.True(t, output.Matched)
	assert.False(t, output.AlreadyLiked)

	require.NotNil(t, createdMatch)
	assert.True(t, createdMatch.Involves(actingID))
	assert.True(t, createdMatch.Involves(targetID))
}

func TestLikeService_Like_ConcurrentMatchRaceIsSuccess(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()
	m.expectPairLock(ctx, actingID, targetID)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(nil)
	m.likeRepo.EXPECT().
		FindByPair(ctx, targetID, actingID).
		Return(&entity.Like{ID: uuid.New(), FromUserID: targetID, ToUserID: actingID}, nil)

	// The other side won the insert race; the unique pair index rejects ours.
	m.matchRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Match")).
		Return(repository.ErrDuplicateMatch)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.NoError(t, err)
	assert.True(t, output.Matched)
}

func TestLikeService_Like_ConcurrentDuplicateLikeIsIdempotent(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()
	m.expectPairLock(ctx, actingID, targetID)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(repository.ErrDuplicateLike)

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.NoError(t, err)
	assert.True(t, output.AlreadyLiked)
	assert.False(t, output.Matched)
}

func TestLikeService_Like_LocksPairBeforeWriting(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()

	lockCall := m.matchRepo.EXPECT().LockPair(ctx, actingID, targetID).Return(nil)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(nil, repository.ErrLikeNotFound).
		Call.NotBefore(lockCall.Call)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(nil).
		Call.NotBefore(lockCall.Call)
	m.likeRepo.EXPECT().
		FindByPair(ctx, targetID, actingID).
		Return(nil, repository.ErrLikeNotFound).
		Call.NotBefore(lockCall.Call)

	_, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.NoError(t, err)
}

func TestLikeService_Like_PairLockFailureAborts(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()

	m.matchRepo.EXPECT().
		LockPair(ctx, actingID, targetID).
		Return(errors.New("connection lost"))

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestLikeService_Like_PublishFailureDoesNotFailCall(t *testing.T) {
	svc, m := newLikeService(t)

	ctx := context.Background()
	actingID := uuid.New()
	targetID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, DisplayName: "Bob"}, nil)
	m.expectTx()
	m.expectPairLock(ctx, actingID, targetID)

	m.likeRepo.EXPECT().
		FindByPair(ctx, actingID, targetID).
		Return(nil, repository.ErrLikeNotFound)
	m.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(nil)
	m.likeRepo.EXPECT().
		FindByPair(ctx, targetID, actingID).
		Return(&entity.Like{ID: uuid.New(), FromUserID: targetID, ToUserID: actingID}, nil)
	m.matchRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Match")).
		Return(nil)

	m.eventPublisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Return(errors.New("broker unavailable"))

	output, err := svc.Like(ctx, actingID, &usecase.LikeInput{TargetID: targetID})
	require.NoError(t, err)
	assert.True(t, output.Matched)
}
