package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "rencontre/internal/delivery/context"
	"rencontre/internal/domain/entity"
	domainerrors "rencontre/internal/domain/errors"
	"rencontre/internal/domain/repository"
	"rencontre/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	MatchRepo   repository.MatchRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewChatService creates a new chat service instance
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		matchRepo:   params.MatchRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// History returns the conversation oldest first, shaped for the caller.
func (s *chatService) History(ctx context.Context, userID, matchID uuid.UUID) ([]*usecase.ChatMessage, error) {
	if err := s.requireMembership(ctx, userID, matchID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find messages")
	}

	output := make([]*usecase.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		output = append(output, toChatMessage(msg, userID))
	}

	return output, nil
}

// Send appends a message to the conversation. Whitespace-only content is
// rejected but the stored content keeps its original form.
func (s *chatService) Send(ctx context.Context, userID, matchID uuid.UUID, content string) (*usecase.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	if err := s.requireMembership(ctx, userID, matchID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:        uuid.New(),
		MatchID:   matchID,
		SenderID:  userID,
		Content:   content,
		IsSeen:    false,
		CreatedAt: time.Now(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	s.log(ctx).Info("Message sent",
		slog.String("match_id", matchID.String()),
		slog.String("sender_id", userID.String()))

	return toChatMessage(message, userID), nil
}

// MarkSeen flags every message addressed to the caller in the match as seen.
func (s *chatService) MarkSeen(ctx context.Context, userID, matchID uuid.UUID) error {
	if err := s.requireMembership(ctx, userID, matchID); err != nil {
		return err
	}

	if err := s.messageRepo.MarkSeen(ctx, matchID, userID); err != nil {
		return errors.Wrap(err, "failed to mark messages seen")
	}

	return nil
}

// requireMembership verifies the match exists and the user is one of its two
// sides.
func (s *chatService) requireMembership(ctx context.Context, userID, matchID uuid.UUID) error {
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return domainerrors.ErrMatchNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find match")
	}

	if !match.Involves(userID) {
		return domainerrors.ErrNotMatchMember
	}

	return nil
}

func toChatMessage(msg *entity.Message, viewerID uuid.UUID) *usecase.ChatMessage {
	return &usecase.ChatMessage{
		ID:        msg.ID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
		IsMine:    msg.SenderID == viewerID,
		SenderID:  msg.SenderID,
		IsSeen:    msg.IsSeen,
	}
}
