package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"raccoon/internal/model"
)

// CommentRepository defines persistence operations for comments and the
// per-item comment reference sets.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error)
	FindByUsername(ctx context.Context, username string) ([]model.Comment, error)
	// AddRef inserts a comment id into the item's reference set. The insert
	// is a single statement with a do-nothing conflict clause, so it is
	// atomic at the store level and idempotent under retry.
	AddRef(ctx context.Context, itemID, commentID uuid.UUID) error
	ListRefIDs(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindByUsername(ctx context.Context, username string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("username = ?", username).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) AddRef(ctx context.Context, itemID, commentID uuid.UUID) error {
	ref := model.CommentRef{ItemID: itemID, CommentID: commentID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&ref).Error
}

func (r *commentRepository) ListRefIDs(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.CommentRef{}).
		Where("item_id = ?", itemID).
		Order("created_at").
		Pluck("comment_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
