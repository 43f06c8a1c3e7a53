package service

import (
	"context"
	"errors"
	"testing"
)

func TestSignUp(t *testing.T) {
	users, _ := newRepositories(t)
	svc := newAuthService(users)
	ctx := context.Background()

	pair, err := svc.SignUp(ctx, "a@b.com", "Al", "password1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", pair)
	}

	stored, err := users.GetByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.PasswordHash == "password1" || stored.Role != "USER" {
		t.Fatalf("unexpected stored user %+v", stored)
	}

	_, err = svc.SignUp(ctx, "a@b.com", "Someone", "password2")
	if !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict kind, got %v", KindOf(err))
	}
}

func TestSignIn(t *testing.T) {
	users, _ := newRepositories(t)
	svc := newAuthService(users)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "user@test.com", "User", "password1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	if _, err := svc.SignIn(ctx, "user@test.com", "password1"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if _, err := svc.SignIn(ctx, "user@test.com", "wrong-password"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err := svc.SignIn(ctx, "ghost@test.com", "password1"); !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	users, _ := newRepositories(t)
	svc := newAuthService(users)
	ctx := context.Background()

	pair, err := svc.SignUp(ctx, "r@test.com", "Refresher", "password1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	next, err := svc.RefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.AccessToken == pair.AccessToken || next.RefreshToken == pair.RefreshToken {
		t.Fatal("expected a different pair after refresh")
	}

	for _, bad := range []string{"", "not-a-jwt", pair.AccessToken} {
		if _, err := svc.RefreshToken(ctx, bad); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("refresh %q: expected ErrUnauthorized, got %v", bad, err)
		}
	}
}

func TestVerifyAccessToken(t *testing.T) {
	users, _ := newRepositories(t)
	svc := newAuthService(users)
	ctx := context.Background()

	pair, err := svc.SignUp(ctx, "v@test.com", "Verifier", "password1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	user, err := svc.VerifyAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Email != "v@test.com" || user.PasswordHash != "" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := svc.VerifyAccessToken(ctx, pair.RefreshToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for refresh token, got %v", err)
	}

	// a token for an account that no longer resolves
	orphan, err := svc.GenerateTokens("9b2f0f4c-0000-4000-8000-000000000000")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.VerifyAccessToken(ctx, orphan.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestValidateUserMissing(t *testing.T) {
	users, _ := newRepositories(t)
	svc := newAuthService(users)

	user, err := svc.ValidateUser(context.Background(), "missing")
	if err != nil || user != nil {
		t.Fatalf("expected nil user and no error, got %v %v", user, err)
	}
}

func TestSignOut(t *testing.T) {
	users, _ := newRepositories(t)
	if got := newAuthService(users).SignOut(); got != "You have signed out successfully" {
		t.Fatalf("unexpected message %q", got)
	}
}
