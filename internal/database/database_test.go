package database

import (
	"context"
	"path/filepath"
	"testing"

	"blog-api/internal/config"
	"blog-api/internal/domain"
)

func TestOpenSQLite(t *testing.T) {
	var cfg config.Config
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "blog.db")

	store, err := Open(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	user := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: "x", Name: "Alice", Role: domain.RoleUser}
	if err := store.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	posts, err := store.Posts.List(context.Background(), 0, 10)
	if err != nil || len(posts) != 0 {
		t.Fatalf("expected empty post list, got %v %v", posts, err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.Database.Driver = "mysql"
	if _, err := Open(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOpenPostgresRequiresDSN(t *testing.T) {
	var cfg config.Config
	cfg.Database.Driver = "postgres"
	if _, err := Open(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error without a dsn")
	}
}
