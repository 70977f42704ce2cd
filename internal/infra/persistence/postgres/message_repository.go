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

// messageRepository implements the repository.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create appends a new message to a match conversation.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByMatch retrieves the full history of a conversation, oldest first.
func (repo *messageRepository) FindByMatch(ctx context.Context, matchID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by match")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, toMessageDomain(&messageModels[i]))
	}

	return messages, nil
}

// FindLastByMatch retrieves the most recent message of a conversation,
// or nil when the conversation is empty.
func (repo *messageRepository) FindLastByMatch(ctx context.Context, matchID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last message by match")
	}

	return toMessageDomain(&messageM), nil
}

// CountUnseen counts messages the given reader has not seen yet.
func (repo *messageRepository) CountUnseen(ctx context.Context, matchID, readerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("match_id = ? AND sender_id <> ? AND is_seen = ?", matchID, readerID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unseen messages")
	}

	return count, nil
}

// MarkSeen flags every message addressed to the reader as seen.
func (repo *messageRepository) MarkSeen(ctx context.Context, matchID, readerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("match_id = ? AND sender_id <> ? AND is_seen = ?", matchID, readerID, false).
		Update("is_seen", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark messages seen")
	}

	return nil
}
