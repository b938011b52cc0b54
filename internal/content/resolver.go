// Package content resolves opaque item ids to comment-bearing entities.
// Posts and direct messages are unrelated tables, but both can carry
// comments; the resolver hides which one an id belongs to behind ItemRef.
package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/repository"
)

// Item kinds.
const (
	KindPost    = "post"
	KindMessage = "message"
)

// ItemRef is the capability an item exposes to the commenting layer.
// Callers operate only on this surface and never branch on the concrete
// entity type.
type ItemRef interface {
	ID() uuid.UUID
	Kind() string
	Content() string
	// CommentIDs reads the item's comment reference set.
	CommentIDs(ctx context.Context) ([]uuid.UUID, error)
	// AttachComment adds a comment id to the reference set. The add is an
	// atomic single-statement set-union at the store level, idempotent
	// under retry; it never rewrites the whole item.
	AttachComment(ctx context.Context, commentID uuid.UUID) error
}

// Resolver locates a content item by id across the post and message stores.
type Resolver interface {
	Resolve(ctx context.Context, itemID uuid.UUID) (ItemRef, error)
}

type resolver struct {
	posts    repository.PostRepository
	messages repository.MessageRepository
	comments repository.CommentRepository
}

// NewResolver builds a resolver over the two content stores. The comment
// repository owns the reference sets the returned refs read and write.
func NewResolver(posts repository.PostRepository, messages repository.MessageRepository, comments repository.CommentRepository) Resolver {
	return &resolver{posts: posts, messages: messages, comments: comments}
}

// Resolve tries the post store first, then the message store, and fails
// with ErrNoSuchContentItem when the id is absent from both.
func (r *resolver) Resolve(ctx context.Context, itemID uuid.UUID) (ItemRef, error) {
	post, err := r.posts.FindByID(ctx, itemID)
	if err == nil {
		return &itemRef{id: post.ID, kind: KindPost, content: post.Content, comments: r.comments}, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	message, err := r.messages.FindByID(ctx, itemID)
	if err == nil {
		return &itemRef{id: message.ID, kind: KindMessage, content: message.Content, comments: r.comments}, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return nil, apperrors.ErrNoSuchContentItem
}

// itemRef is the single ItemRef implementation; the comment reference set
// is keyed by item id alone, so posts and messages share it.
type itemRef struct {
	id       uuid.UUID
	kind     string
	content  string
	comments repository.CommentRepository
}

func (i *itemRef) ID() uuid.UUID   { return i.id }
func (i *itemRef) Kind() string    { return i.kind }
func (i *itemRef) Content() string { return i.content }

func (i *itemRef) CommentIDs(ctx context.Context) ([]uuid.UUID, error) {
	return i.comments.ListRefIDs(ctx, i.id)
}

func (i *itemRef) AttachComment(ctx context.Context, commentID uuid.UUID) error {
	return i.comments.AddRef(ctx, i.id, commentID)
}
