package postgres

import (
	"testing"
	"time"

	"blog-api/internal/domain"
)

func TestPatchColumnsOnlyIncludesPresentFields(t *testing.T) {
	title := "new title"
	slug := "new-title-abcd1234"
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cols := patchColumns(domain.PostPatch{Title: &title, Slug: &slug}, now)

	if len(cols) != 3 {
		t.Fatalf("expected title, slug and updated_at, got %v", cols)
	}
	if cols["title"] != title || cols["slug"] != slug {
		t.Fatalf("unexpected columns %v", cols)
	}
	if got := cols["updated_at"].(time.Time); !got.Equal(now) {
		t.Fatalf("expected updated_at %v, got %v", now, got)
	}
	if _, ok := cols["content"]; ok {
		t.Fatal("content must not be written when absent from the patch")
	}
}

func TestPatchColumnsPrefersPatchTimestamp(t *testing.T) {
	stamp := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	cols := patchColumns(domain.PostPatch{UpdatedAt: stamp}, time.Now())
	if got := cols["updated_at"].(time.Time); !got.Equal(stamp) {
		t.Fatalf("expected %v, got %v", stamp, got)
	}
}

func TestRecordRoundTripKeepsPasswordHash(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: "hash", Name: "Al", Role: domain.RoleAdmin}
	got := userFromDomain(user).toDomain()
	if got.PasswordHash != "hash" || got.Role != domain.RoleAdmin || got.Email != "a@b.com" {
		t.Fatalf("unexpected user %+v", got)
	}
}
