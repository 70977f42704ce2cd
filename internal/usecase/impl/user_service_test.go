package impl

import (
	"context"
	"testing"
	"time"

	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	mockRepo "rencontre/internal/mocks/repository"
	mockSvc "rencontre/internal/mocks/service"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	factory      *mockRepo.MockRepositoryFactory
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:       "alice@example.com",
		Password:    "s3cret-password",
		DisplayName: "Alice",
		BirthDate:   time.Date(1996, time.March, 2, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
		City:        "Lyon",
	}
}

func TestUserService_Register_CreatesUserWithProfile(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	input := registerInput()

	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.factory.EXPECT().UserRepo().Return(m.userRepo)
	passthroughTx(m.txManager, m.factory)

	m.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			created = user
			return nil
		})

	output, err := svc.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, input.Email, created.Email)
	assert.Equal(t, "hashed", created.PasswordHash)
	assert.Equal(t, "Alice", created.DisplayName)

	// Every account owns a profile from the start.
	require.NotNil(t, created.Profile)
	assert.Equal(t, created.ID, created.Profile.UserID)
	assert.Equal(t, "Lyon", created.Profile.City)

	assert.Equal(t, created, output.User)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	input := registerInput()

	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.factory.EXPECT().UserRepo().Return(m.userRepo)
	passthroughTx(m.txManager, m.factory)

	m.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := svc.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.hasher.EXPECT().Check("s3cret-password", "hashed").Return(true)
	m.tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret-password"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	// Unknown account and bad password are indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Me(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := svc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_Me_NotFound(t *testing.T) {
	svc, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Me(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
