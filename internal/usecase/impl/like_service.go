package impl

import (
	"context"
	"log/slog"
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

// likeService implements the LikeUsecase interface.
type likeService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewLikeService creates a new like service instance
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Like records a like from the acting user towards the target and creates a
// match when the like is reciprocal. The like and the match are written in
// one transaction so no reader ever observes one without the other.
func (s *likeService) Like(ctx context.Context, actingUserID uuid.UUID, input *usecase.LikeInput) (*usecase.LikeOutput, error) {
	target, err := s.userRepo.FindByID(ctx, input.TargetID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find target user")
	}

	if actingUserID == target.ID {
		return nil, domainerrors.ErrSelfLike
	}

	output := &usecase.LikeOutput{Target: &entity.PublicIdentity{
		ID:          target.ID,
		DisplayName: target.DisplayName,
	}}

	var createdMatch *entity.Match
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.LikeRepo()
		matchRepo := repoFactory.MatchRepo()

		// Serialize both like directions on the normalized pair. Without
		// the lock two simultaneous reciprocal likes can each miss the
		// other's uncommitted row and neither would create the match.
		if err := matchRepo.LockPair(ctx, actingUserID, input.TargetID); err != nil {
			return errors.Wrap(err, "failed to lock pair")
		}

		_, err := likeRepo.FindByPair(ctx, actingUserID, input.TargetID)
		if err == nil {
			// Idempotent: the like exists, nothing is written.
			output.AlreadyLiked = true

			return nil
		}
		if !errors.Is(err, repository.ErrLikeNotFound) {
			return errors.Wrap(err, "failed to check existing like")
		}

		like := &entity.Like{
			ID:          uuid.New(),
			FromUserID:  actingUserID,
			ToUserID:    input.TargetID,
			IsSuperLike: input.IsSuperLike,
			CreatedAt:   time.Now(),
		}
		if err := likeRepo.Create(ctx, like); err != nil {
			if errors.Is(err, repository.ErrDuplicateLike) {
				// Concurrent duplicate, same outcome as the check above.
				output.AlreadyLiked = true

				return nil
			}

			return errors.Wrap(err, "failed to create like")
		}

		_, err = likeRepo.FindByPair(ctx, input.TargetID, actingUserID)
		if errors.Is(err, repository.ErrLikeNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to check reciprocal like")
		}

		// Reciprocal like found: this is a match event. The match row
		// stores the pair normalized under a unique index, so when both
		// sides race through this path only one insert wins and the
		// loser lands on ErrDuplicateMatch.
		match := entity.NewMatch(actingUserID, input.TargetID)
		if err := matchRepo.Create(ctx, match); err != nil {
			if errors.Is(err, repository.ErrDuplicateMatch) {
				output.Matched = true

				return nil
			}

			return errors.Wrap(err, "failed to create match")
		}

		output.Matched = true
		createdMatch = match

		return nil
	})
	if err != nil {
		return nil, err
	}

	if createdMatch != nil {
		s.publishMatchEvent(ctx, createdMatch)
	}

	return output, nil
}

// publishMatchEvent hands the new match to the event publisher. Publishing is
// best-effort; a broker failure never fails the like call.
func (s *likeService) publishMatchEvent(ctx context.Context, match *entity.Match) {
	event := &service.MatchEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		MatchID:   match.ID.String(),
		UserAID:   match.UserAID.String(),
		UserBID:   match.UserBID.String(),
		CreatedAt: match.CreatedAt.Format(time.RFC3339),
	}

	if err := s.eventPublisher.PublishMatchEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish match event",
			slog.String("match_id", event.MatchID),
			slog.Any("error", err))
	}
}
