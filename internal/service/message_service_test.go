package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
)

func TestMessageService_SendMessage(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByUsername", mock.Anything, "bob").Return(true, nil)
	users.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	messages := new(MockMessageRepository)
	messages.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

	svc := NewMessageService(messages, users, new(MockCommentRepository))
	message, err := svc.SendMessage(context.Background(), "alice", "bob", "hi bob")

	require.NoError(t, err)
	assert.Equal(t, "alice", message.Sender)
	assert.Equal(t, "bob", message.Recipient)
	assert.Equal(t, "hi bob", message.Content)
	assert.Empty(t, message.CommentIDs)
}

func TestMessageService_SendMessageUnknownRecipient(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByUsername", mock.Anything, "ghost").Return(false, nil)

	messages := new(MockMessageRepository)

	svc := NewMessageService(messages, users, new(MockCommentRepository))
	_, err := svc.SendMessage(context.Background(), "alice", "ghost", "anyone there")

	assert.ErrorIs(t, err, apperrors.ErrPrincipalNotFound)
	messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_GetMessage(t *testing.T) {
	id := uuid.New()
	commentID := uuid.New()
	stored := &model.Message{
		Item:      model.Item{ID: id, Content: "secret"},
		Sender:    "alice",
		Recipient: "bob",
	}

	messages := new(MockMessageRepository)
	messages.On("FindByID", mock.Anything, id).Return(stored, nil)

	comments := new(MockCommentRepository)
	comments.On("ListRefIDs", mock.Anything, id).Return([]uuid.UUID{commentID}, nil)

	svc := NewMessageService(messages, new(MockUserRepository), comments)

	// Both ends of the conversation can read it.
	for _, caller := range []string{"alice", "bob"} {
		message, err := svc.GetMessage(context.Background(), id, caller)
		require.NoError(t, err)
		assert.Equal(t, "secret", message.Content)
		assert.Equal(t, []string{commentID.String()}, message.CommentIDs)
	}
}

func TestMessageService_GetMessageAccessDenied(t *testing.T) {
	id := uuid.New()
	stored := &model.Message{
		Item:      model.Item{ID: id, Content: "secret"},
		Sender:    "alice",
		Recipient: "bob",
	}

	messages := new(MockMessageRepository)
	messages.On("FindByID", mock.Anything, id).Return(stored, nil)

	comments := new(MockCommentRepository)

	svc := NewMessageService(messages, new(MockUserRepository), comments)
	message, err := svc.GetMessage(context.Background(), id, "eve")

	assert.ErrorIs(t, err, apperrors.ErrMessageAccessDenied)
	assert.Nil(t, message)
	comments.AssertNotCalled(t, "ListRefIDs", mock.Anything, mock.Anything)
}

func TestMessageService_GetMessageNotFound(t *testing.T) {
	id := uuid.New()

	messages := new(MockMessageRepository)
	messages.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMessageService(messages, new(MockUserRepository), new(MockCommentRepository))
	_, err := svc.GetMessage(context.Background(), id, "eve")

	// Existence is reported before access is checked.
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestMessageService_ListSentAndReceived(t *testing.T) {
	sent := []model.Message{{Sender: "alice", Recipient: "bob"}}
	received := []model.Message{{Sender: "carol", Recipient: "alice"}}

	messages := new(MockMessageRepository)
	messages.On("FindBySender", mock.Anything, "alice").Return(sent, nil)
	messages.On("FindByRecipient", mock.Anything, "alice").Return(received, nil)

	svc := NewMessageService(messages, new(MockUserRepository), new(MockCommentRepository))

	gotSent, err := svc.ListSent(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, sent, gotSent)

	gotReceived, err := svc.ListReceived(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, received, gotReceived)
}
