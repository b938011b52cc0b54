package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"raccoon/internal/content"
	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
	"raccoon/internal/repository"
)

// linkAttempts bounds the retries of the comment-to-item link step. The
// link insert is idempotent, so retrying a half-applied attempt is safe.
const linkAttempts = 3

// CommentService creates comments and links them into their parent item's
// comment reference set.
type CommentService interface {
	CreateComment(ctx context.Context, itemID uuid.UUID, commentContent, author string, parentID *uuid.UUID) (*model.Comment, error)
	ListCommentsForItem(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error)
	ListCommentsByUser(ctx context.Context, username string) ([]model.Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	resolver content.Resolver
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, resolver content.Resolver) CommentService {
	return &commentService{comments: comments, resolver: resolver}
}

// CreateComment resolves the parent item, persists the comment and then
// adds its id to the item's comment set. The two writes are not one
// transaction; the link step is an atomic idempotent set-add retried up to
// linkAttempts times. If every attempt fails the comment is left orphaned,
// which is logged and surfaced as ErrCommentLinkFailed, never swallowed.
func (s *commentService) CreateComment(ctx context.Context, itemID uuid.UUID, commentContent, author string, parentID *uuid.UUID) (*model.Comment, error) {
	item, err := s.resolver.Resolve(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ItemID:          item.ID(),
		Content:         commentContent,
		Username:        author,
		ParentCommentID: parentID,
		ItemKind:        item.Kind(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	var linkErr error
	for attempt := 0; attempt < linkAttempts; attempt++ {
		if linkErr = item.AttachComment(ctx, comment.ID); linkErr == nil {
			return comment, nil
		}
	}
	log.Printf("orphaned comment %s: failed to link to %s %s after %d attempts: %v",
		comment.ID, item.Kind(), item.ID(), linkAttempts, linkErr)
	return nil, apperrors.ErrCommentLinkFailed
}

// ListCommentsForItem returns all comments referencing the item, in
// storage order.
func (s *commentService) ListCommentsForItem(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error) {
	return s.comments.FindByItemID(ctx, itemID)
}

// ListCommentsByUser returns all comments authored by the user.
func (s *commentService) ListCommentsByUser(ctx context.Context, username string) ([]model.Comment, error) {
	return s.comments.FindByUsername(ctx, username)
}

func (s *commentService) GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}
