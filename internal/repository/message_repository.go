package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"raccoon/internal/model"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	FindBySender(ctx context.Context, sender string) ([]model.Message, error)
	FindByRecipient(ctx context.Context, recipient string) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindBySender(ctx context.Context, sender string) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).Where("sender = ?", sender).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindByRecipient(ctx context.Context, recipient string) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).Where("recipient = ?", recipient).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
