package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageRepository) FindBySender(ctx context.Context, sender string) ([]model.Message, error) {
	args := m.Called(ctx, sender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepository) FindByRecipient(ctx context.Context, recipient string) ([]model.Message, error) {
	args := m.Called(ctx, recipient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByUsername(ctx context.Context, username string) ([]model.Comment, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) AddRef(ctx context.Context, itemID, commentID uuid.UUID) error {
	args := m.Called(ctx, itemID, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) ListRefIDs(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestResolver_ResolvesPost(t *testing.T) {
	id := uuid.New()
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, id).Return(&model.Post{
		Item:  model.Item{ID: id, Content: "hello"},
		Title: "greeting",
	}, nil)

	messages := new(MockMessageRepository)

	r := NewResolver(posts, messages, new(MockCommentRepository))
	ref, err := r.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, ref.ID())
	assert.Equal(t, KindPost, ref.Kind())
	assert.Equal(t, "hello", ref.Content())
	// A hit in the post store never touches the message store.
	messages.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestResolver_FallsBackToMessage(t *testing.T) {
	id := uuid.New()
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	messages := new(MockMessageRepository)
	messages.On("FindByID", mock.Anything, id).Return(&model.Message{
		Item:      model.Item{ID: id, Content: "psst"},
		Sender:    "alice",
		Recipient: "bob",
	}, nil)

	r := NewResolver(posts, messages, new(MockCommentRepository))
	ref, err := r.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, ref.ID())
	assert.Equal(t, KindMessage, ref.Kind())
	assert.Equal(t, "psst", ref.Content())
}

func TestResolver_UnknownID(t *testing.T) {
	id := uuid.New()
	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)
	messages := new(MockMessageRepository)
	messages.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	r := NewResolver(posts, messages, new(MockCommentRepository))
	ref, err := r.Resolve(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrNoSuchContentItem)
	assert.Nil(t, ref)
}

func TestResolver_StoreErrorPropagates(t *testing.T) {
	id := uuid.New()
	boom := errors.New("connection reset")

	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, id).Return(nil, boom)
	messages := new(MockMessageRepository)

	r := NewResolver(posts, messages, new(MockCommentRepository))
	_, err := r.Resolve(context.Background(), id)

	// An infrastructure failure must not be misreported as a missing item.
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperrors.ErrNoSuchContentItem)
	messages.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestItemRef_DelegatesToCommentRefs(t *testing.T) {
	id := uuid.New()
	commentID := uuid.New()

	posts := new(MockPostRepository)
	posts.On("FindByID", mock.Anything, id).Return(&model.Post{
		Item: model.Item{ID: id},
	}, nil)

	comments := new(MockCommentRepository)
	comments.On("AddRef", mock.Anything, id, commentID).Return(nil)
	comments.On("ListRefIDs", mock.Anything, id).Return([]uuid.UUID{commentID}, nil)

	r := NewResolver(posts, new(MockMessageRepository), comments)
	ref, err := r.Resolve(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, ref.AttachComment(context.Background(), commentID))

	ids, err := ref.CommentIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{commentID}, ids)
	comments.AssertExpectations(t)
}
