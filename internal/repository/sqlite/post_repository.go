package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	title TEXT NOT NULL,
	slug TEXT NULL,
	content TEXT NOT NULL,
	image_url TEXT NULL,
	tags TEXT NOT NULL DEFAULT '',
	creator_id TEXT NOT NULL REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_posts_updated_at ON posts(updated_at);
`

const postColumns = `id, created_at, updated_at, title, slug, content, image_url, tags, creator_id`

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO posts (`+postColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.CreatedAt.UTC(),
		post.UpdatedAt.UTC(),
		post.Title,
		post.Slug,
		post.Content,
		post.ImageURL,
		post.Tags,
		post.CreatorID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert post %s: %w", post.ID, repository.ErrConflict)
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	return getPost(ctx, r.db, id)
}

func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	posts := []domain.Post{}
	err := r.db.SelectContext(ctx, &posts, `
SELECT `+postColumns+`
FROM posts
ORDER BY updated_at DESC
LIMIT ? OFFSET ?`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id string, patch domain.PostPatch) (*domain.Post, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		sets = append(sets, column+" = ?")
		args = append(args, *value)
	}
	add("title", patch.Title)
	add("slug", patch.Slug)
	add("content", patch.Content)
	add("image_url", patch.ImageURL)
	add("tags", patch.Tags)

	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt.UTC(), id)

	res, err := r.db.ExecContext(ctx, `UPDATE posts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update post rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("post %s: %w", id, repository.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *PostRepository) Delete(ctx context.Context, id string) (*domain.Post, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin delete post: %w", err)
	}
	defer tx.Rollback()

	post, err := getPost(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	return nil
}

func getPost(ctx context.Context, q sqlx.QueryerContext, id string) (*domain.Post, error) {
	var post domain.Post
	if err := sqlx.GetContext(ctx, q, &post, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("select post: %w", err)
	}
	return &post, nil
}
