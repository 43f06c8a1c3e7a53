package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

const signOutMessage = "You have signed out successfully"

// TokenManager issues and verifies the token pairs handed to clients.
type TokenManager interface {
	Issue(userID string) (auth.TokenPair, error)
	VerifyAccess(token string) (*auth.Claims, error)
	VerifyRefresh(token string) (*auth.Claims, error)
}

// AuthService describes account and session operations.
type AuthService interface {
	SignUp(ctx context.Context, email, name, password string) (auth.TokenPair, error)
	SignIn(ctx context.Context, email, password string) (auth.TokenPair, error)
	SignOut() string
	// ValidateUser returns the user without its password hash, or nil when it does not exist.
	ValidateUser(ctx context.Context, userID string) (*domain.User, error)
	GenerateTokens(userID string) (auth.TokenPair, error)
	RefreshToken(ctx context.Context, token string) (auth.TokenPair, error)
	VerifyAccessToken(ctx context.Context, token string) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens TokenManager
}

func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, tokens TokenManager) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *authService) SignUp(ctx context.Context, email, name, password string) (auth.TokenPair, error) {
	email = strings.TrimSpace(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return auth.TokenPair{}, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return auth.TokenPair{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return auth.TokenPair{}, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent sign-up for the same email
		if errors.Is(err, repository.ErrConflict) {
			return auth.TokenPair{}, ErrEmailInUse
		}
		return auth.TokenPair{}, err
	}

	return s.GenerateTokens(user.ID)
}

func (s *authService) SignIn(ctx context.Context, email, password string) (auth.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.TokenPair{}, ErrEmailNotFound
		}
		return auth.TokenPair{}, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return auth.TokenPair{}, ErrInvalidPassword
	}

	return s.GenerateTokens(user.ID)
}

// SignOut only acknowledges the request; tokens are stateless and stay valid until they expire.
func (s *authService) SignOut() string {
	return signOutMessage
}

func (s *authService) ValidateUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *authService) GenerateTokens(userID string) (auth.TokenPair, error) {
	pair, err := s.tokens.Issue(userID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("generate tokens: %w", err)
	}
	return pair, nil
}

func (s *authService) RefreshToken(ctx context.Context, token string) (auth.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(token)
	if err != nil {
		return auth.TokenPair{}, ErrUnauthorized
	}
	return s.GenerateTokens(claims.UserID)
}

func (s *authService) VerifyAccessToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.VerifyAccess(token)
	if err != nil || claims.UserID == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.ValidateUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
