package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newRepos(t *testing.T) (repository.UserRepository, repository.PostRepository) {
	t.Helper()
	db := openTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := posts.Init(ctx); err != nil {
		t.Fatalf("init posts: %v", err)
	}
	return users, posts
}

func createUser(t *testing.T, users repository.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "hash",
		Name:         "tester",
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	users, _ := newRepos(t)
	ctx := context.Background()
	avatar := "https://example.com/a.png"

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        "test@test.com",
		PasswordHash: "hash",
		Name:         "tester",
		Avatar:       &avatar,
	}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %q", user.Role)
	}

	byEmail, err := users.GetByEmail(ctx, "test@test.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.Name != "tester" || byEmail.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", byEmail)
	}
	if byEmail.Avatar == nil || *byEmail.Avatar != avatar {
		t.Fatalf("avatar not persisted: %v", byEmail.Avatar)
	}

	byID, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != user.Email {
		t.Fatalf("expected %s, got %s", user.Email, byID.Email)
	}
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	users, _ := newRepos(t)
	createUser(t, users, "dup@test.com")

	err := users.Create(context.Background(), &domain.User{
		ID:           uuid.NewString(),
		Email:        "dup@test.com",
		PasswordHash: "hash",
		Name:         "other",
	})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepositoryNotFound(t *testing.T) {
	users, _ := newRepos(t)
	if _, err := users.GetByEmail(context.Background(), "missing@test.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := users.GetByID(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepositoryListOrdersByUpdatedAt(t *testing.T) {
	users, posts := newRepos(t)
	owner := createUser(t, users, "owner@test.com")
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := make([]string, 12)
	for i := range ids {
		post := &domain.Post{
			ID:        uuid.NewString(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Title:     fmt.Sprintf("post %d", i),
			Content:   "some content here",
			CreatorID: owner.ID,
		}
		if err := posts.Create(ctx, post); err != nil {
			t.Fatalf("create post %d: %v", i, err)
		}
		ids[i] = post.ID
	}

	page, err := posts.List(ctx, 5, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(page))
	}
	// newest first: index 11 is first, so offset 5 starts at index 6
	for i, post := range page {
		want := ids[len(ids)-1-5-i]
		if post.ID != want {
			t.Fatalf("position %d: expected %s, got %s (%s)", i, want, post.ID, post.Title)
		}
	}

	empty, err := posts.List(ctx, 100, 10)
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d", len(empty))
	}
}

func TestPostRepositoryUpdatePatch(t *testing.T) {
	users, posts := newRepos(t)
	owner := createUser(t, users, "owner@test.com")
	ctx := context.Background()
	slug := "first-title-12345678"

	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     "first title",
		Slug:      &slug,
		Content:   "original content",
		Tags:      "a,b",
		CreatorID: owner.ID,
	}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("create: %v", err)
	}

	content := "replaced content"
	later := post.UpdatedAt.Add(time.Hour)
	updated, err := posts.Update(ctx, post.ID, domain.PostPatch{Content: &content, UpdatedAt: later})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != content {
		t.Fatalf("content not updated: %q", updated.Content)
	}
	if updated.Title != "first title" || updated.Tags != "a,b" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.Slug == nil || *updated.Slug != slug {
		t.Fatalf("slug changed: %v", updated.Slug)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Fatalf("expected updated_at %v, got %v", later, updated.UpdatedAt)
	}

	if _, err := posts.Update(ctx, "missing", domain.PostPatch{Content: &content}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepositoryDelete(t *testing.T) {
	users, posts := newRepos(t)
	owner := createUser(t, users, "owner@test.com")
	ctx := context.Background()

	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     "to delete",
		Content:   "will be removed",
		CreatorID: owner.ID,
	}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := posts.Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != post.ID || removed.Title != "to delete" {
		t.Fatalf("unexpected removed post %+v", removed)
	}
	if _, err := posts.Get(ctx, post.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected post to be gone, got %v", err)
	}
	if _, err := posts.Delete(ctx, post.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPostRepositoryRequiresExistingCreator(t *testing.T) {
	_, posts := newRepos(t)
	err := posts.Create(context.Background(), &domain.Post{
		ID:        uuid.NewString(),
		Title:     "orphan",
		Content:   "no owner exists",
		CreatorID: "nobody",
	})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}
