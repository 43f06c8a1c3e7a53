package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

func translate(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, repository.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&userRecord{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	rec := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return translate(err, "insert user")
	}
	user.CreatedAt = rec.CreatedAt
	user.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error; err != nil {
		return nil, translate(err, "user")
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, translate(err, "user")
	}
	return rec.toDomain(), nil
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	// users first so the creator foreign key can be created
	if err := r.db.WithContext(ctx).AutoMigrate(&userRecord{}, &postRecord{}); err != nil {
		return fmt.Errorf("migrate posts: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	rec := postFromDomain(post)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return translate(err, "insert post")
	}
	post.CreatedAt = rec.CreatedAt
	post.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	var rec postRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, translate(err, "post "+id)
	}
	post := rec.toDomain()
	return &post, nil
}

func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	var recs []postRecord
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, translate(err, "list posts")
	}
	posts := make([]domain.Post, len(recs))
	for i := range recs {
		posts[i] = recs[i].toDomain()
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id string, patch domain.PostPatch) (*domain.Post, error) {
	res := r.db.WithContext(ctx).
		Model(&postRecord{}).
		Where("id = ?", id).
		Updates(patchColumns(patch, time.Now()))
	if res.Error != nil {
		return nil, translate(res.Error, "update post")
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("post %s: %w", id, repository.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *PostRepository) Delete(ctx context.Context, id string) (*domain.Post, error) {
	var removed domain.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec postRecord
		if err := tx.Where("id = ?", id).First(&rec).Error; err != nil {
			return translate(err, "post "+id)
		}
		if err := tx.Delete(&rec).Error; err != nil {
			return translate(err, "delete post")
		}
		removed = rec.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

func (r *PostRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&postRecord{}).Error; err != nil {
		return translate(err, "delete posts")
	}
	return nil
}
