package repository

import (
	"context"

	"blog-api/internal/domain"
)

// PostRepository exposes persistence operations for blog posts.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) error
	Get(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts ordered by most recent update first.
	List(ctx context.Context, offset, limit int) ([]domain.Post, error)
	Update(ctx context.Context, id string, patch domain.PostPatch) (*domain.Post, error)
	// Delete removes the post and returns the row as it was before deletion.
	Delete(ctx context.Context, id string) (*domain.Post, error)
	DeleteAll(ctx context.Context) error
}
