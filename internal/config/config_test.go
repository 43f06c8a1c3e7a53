package config

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:3000" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	if cfg.Cookie.Name != "jwt" || !cfg.Cookie.HTTPOnly || !cfg.Cookie.Secure || !cfg.Cookie.Signed {
		t.Fatalf("unexpected cookie defaults %+v", cfg.Cookie)
	}
	if cfg.Security.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.Security.BcryptCost)
	}

	access, err := cfg.AccessTTL()
	if err != nil || access != time.Hour {
		t.Fatalf("expected 1h access ttl, got %v (%v)", access, err)
	}
	refresh, err := cfg.RefreshTTL()
	if err != nil || refresh != 7*24*time.Hour {
		t.Fatalf("expected 7d refresh ttl, got %v (%v)", refresh, err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BLOG_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("BLOG_JWT_ACCESSSECRET", "a-secret")
	t.Setenv("BLOG_JWT_REFRESHSECRET", "r-secret")
	t.Setenv("BLOG_COOKIE_SECURE", "false")
	t.Setenv("BLOG_SECURITY_EXPIRESIN", "30m")
	t.Setenv("BLOG_CORS_ORIGIN", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	if cfg.JWT.AccessSecret != "a-secret" || cfg.JWT.RefreshSecret != "r-secret" {
		t.Fatalf("secrets not loaded: %+v", cfg.JWT)
	}
	if cfg.Cookie.Secure {
		t.Fatal("expected secure cookie to be disabled")
	}
	if ttl, _ := cfg.AccessTTL(); ttl != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", ttl)
	}
	origins := cfg.AllowedOrigins()
	if len(origins) != 2 || origins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", origins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Database.Driver = "postgres"
	cfg.Security.RefreshIn = "soon"

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"access secret", "refresh secret", "dsn", "security.refreshin"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestParseSameSite(t *testing.T) {
	cases := map[string]http.SameSite{
		"strict": http.SameSiteStrictMode,
		"Lax":    http.SameSiteLaxMode,
		"none":   http.SameSiteNoneMode,
	}
	for in, want := range cases {
		got, err := ParseSameSite(in)
		if err != nil || got != want {
			t.Fatalf("%s: expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseSameSite("sometimes"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
