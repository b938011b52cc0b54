package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
	"raccoon/internal/repository"
)

// MessageService handles direct messages between users.
type MessageService interface {
	SendMessage(ctx context.Context, sender, recipient, messageContent string) (*model.Message, error)
	ListSent(ctx context.Context, sender string) ([]model.Message, error)
	ListReceived(ctx context.Context, recipient string) ([]model.Message, error)
	// GetMessage returns the message only to its sender or recipient.
	// Existence is checked before access, so outsiders can distinguish a
	// missing message from a forbidden one.
	GetMessage(ctx context.Context, id uuid.UUID, caller string) (*model.Message, error)
}

type messageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	comments repository.CommentRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, comments repository.CommentRepository) MessageService {
	return &messageService{messages: messages, users: users, comments: comments}
}

func (s *messageService) SendMessage(ctx context.Context, sender, recipient, messageContent string) (*model.Message, error) {
	for _, username := range []string{recipient, sender} {
		exists, err := s.users.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("check user %q: %w", username, err)
		}
		if !exists {
			return nil, apperrors.ErrPrincipalNotFound
		}
	}

	message := &model.Message{
		Item:      model.Item{Content: messageContent},
		Sender:    sender,
		Recipient: recipient,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	message.CommentIDs = []string{}
	return message, nil
}

func (s *messageService) ListSent(ctx context.Context, sender string) ([]model.Message, error) {
	return s.messages.FindBySender(ctx, sender)
}

func (s *messageService) ListReceived(ctx context.Context, recipient string) ([]model.Message, error) {
	return s.messages.FindByRecipient(ctx, recipient)
}

func (s *messageService) GetMessage(ctx context.Context, id uuid.UUID, caller string) (*model.Message, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, err
	}

	if message.Sender != caller && message.Recipient != caller {
		return nil, apperrors.ErrMessageAccessDenied
	}

	refIDs, err := s.comments.ListRefIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comment refs: %w", err)
	}
	message.CommentIDs = make([]string, 0, len(refIDs))
	for _, refID := range refIDs {
		message.CommentIDs = append(message.CommentIDs, refID.String())
	}
	return message, nil
}
