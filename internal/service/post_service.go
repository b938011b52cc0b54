package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"raccoon/internal/cache"
	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
	"raccoon/internal/repository"
)

const postCacheTTL = 5 * time.Minute

// ImageUploader pushes an image to the external image host and returns
// its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// CreatePostInput carries the fields of a new post. Image is optional.
type CreatePostInput struct {
	Title     string
	Content   string
	Tags      []string
	Image     io.Reader
	ImageName string
}

// PostService handles post creation and reads.
type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput, author string) (*model.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	uploader ImageUploader
	cache    *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, uploader ImageUploader, cacheClient *cache.Client) PostService {
	return &postService{posts: posts, comments: comments, uploader: uploader, cache: cacheClient}
}

func (s *postService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("post:%s", id)
}

// CreatePost uploads the image (when present) and persists the post. An
// upload failure fails the whole creation; a post must never reference an
// image that was not stored.
func (s *postService) CreatePost(ctx context.Context, in CreatePostInput, author string) (*model.Post, error) {
	var imageURL string
	if in.Image != nil {
		url, err := s.uploader.Upload(ctx, in.ImageName, in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		imageURL = url
	}

	post := &model.Post{
		Item:     model.Item{Content: in.Content},
		Title:    in.Title,
		Username: author,
		Tags:     in.Tags,
		ImageURL: imageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	post.CommentIDs = []string{}
	return post, nil
}

// GetPost retrieves a post with caching; the comment reference set is
// always read fresh since it changes independently of the post row.
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.cachedPost(ctx, id)
	if err != nil {
		return nil, err
	}

	refIDs, err := s.comments.ListRefIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comment refs: %w", err)
	}
	post.CommentIDs = uuidStrings(refIDs)
	return post, nil
}

func (s *postService) cachedPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNoSuchContentItem
		}
		return nil, err
	}

	if payload, err := json.Marshal(post); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, postCacheTTL)
	} else {
		log.Printf("marshal post %s for cache: %v", id, err)
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
