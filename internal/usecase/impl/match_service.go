package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rencontre/internal/delivery/context"
	"rencontre/internal/domain/repository"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface.
type matchService struct {
	matchRepo   repository.MatchRepository
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	MatchRepo   repository.MatchRepository
	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMatchService creates a new match service instance
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		matchRepo:   params.MatchRepo,
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListMatches returns the viewer's matches newest first, each with the other
// side's card info, a preview of the last message and the unread count.
func (s *matchService) ListMatches(ctx context.Context, userID uuid.UUID) (*usecase.ListMatchesOutput, error) {
	matches, err := s.matchRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches")
	}

	now := time.Now()
	results := make([]*usecase.MatchEntry, 0, len(matches))
	for _, match := range matches {
		friendID := match.OtherSide(userID)

		friend, err := s.userRepo.FindByID(ctx, friendID)
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account disappeared under the match, skip the entry.
			s.log(ctx).Warn("Match references missing user",
				slog.String("match_id", match.ID.String()),
				slog.String("user_id", friendID.String()))

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find matched user")
		}

		entry := &usecase.MatchEntry{
			MatchID:   match.ID,
			MatchedAt: match.CreatedAt,
			Friend: &usecase.MatchFriend{
				ID:          friend.ID,
				DisplayName: friend.DisplayName,
				Age:         friend.Age(now),
				City:        friend.City,
			},
		}
		if friend.Profile != nil {
			entry.Friend.Avatar = friend.Profile.PrimaryPhotoPath()
			if friend.Profile.City != "" {
				entry.Friend.City = friend.Profile.City
			}
		}

		lastMessage, err := s.messageRepo.FindLastByMatch(ctx, match.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find last message")
		}
		if lastMessage != nil {
			entry.LastMessage = &lastMessage.Content
		}

		unread, err := s.messageRepo.CountUnseen(ctx, match.ID, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count unseen messages")
		}
		entry.UnreadCount = int(unread)

		results = append(results, entry)
	}

	return &usecase.ListMatchesOutput{
		Count:   len(results),
		Results: results,
	}, nil
}
