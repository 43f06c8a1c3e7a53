package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	slugTitleRunes = 64
	slugIDChars    = 8
)

// CreatePostInput carries the client-supplied fields of a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	ImageURL *string
	Tags     string
}

// UpdatePostInput is a partial patch; nil fields are left unchanged.
type UpdatePostInput struct {
	Title    *string
	Content  *string
	ImageURL *string
	Tags     *string
}

// Pagination selects a 1-based page of results.
type Pagination struct {
	Page int
	Size int
}

// Normalize applies defaults and bounds and returns the offset/limit pair.
func (p Pagination) Normalize() (offset, limit int) {
	page, size := p.Page, p.Size
	if page <= 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return (page - 1) * size, size
}

// PostService manages blog posts.
type PostService interface {
	Create(ctx context.Context, ownerID string, input CreatePostInput) (*domain.Post, error)
	FindAll(ctx context.Context, page Pagination) ([]domain.Post, error)
	FindOne(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	Remove(ctx context.Context, id string) (*domain.Post, error)
}

type postService struct {
	posts repository.PostRepository
	now   func() time.Time
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{
		posts: posts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// PostSlug derives the URL slug of a post from its title and id.
func PostSlug(title, id string) string {
	runes := []rune(title)
	if len(runes) > slugTitleRunes {
		runes = runes[:slugTitleRunes]
	}
	if len(id) > slugIDChars {
		id = id[:slugIDChars]
	}
	return slug.Make(string(runes) + " " + id)
}

func (s *postService) Create(ctx context.Context, ownerID string, input CreatePostInput) (*domain.Post, error) {
	now := s.now()
	post := &domain.Post{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Title:     input.Title,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		Tags:      input.Tags,
		CreatorID: ownerID,
	}
	postSlug := PostSlug(post.Title, post.ID)
	post.Slug = &postSlug

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) FindAll(ctx context.Context, page Pagination) ([]domain.Post, error) {
	offset, limit := page.Normalize()
	return s.posts.List(ctx, offset, limit)
}

func (s *postService) FindOne(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error) {
	current, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := domain.PostPatch{
		Title:     input.Title,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		Tags:      input.Tags,
		UpdatedAt: s.now(),
	}
	if input.Title != nil && *input.Title != "" {
		postSlug := PostSlug(*input.Title, current.ID)
		patch.Slug = &postSlug
	}

	post, err := s.posts.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return post, nil
}

func (s *postService) Remove(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return post, nil
}

func notFoundAs(err error, target *Error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
