package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

// AuthService implements registration, login and refresh-token rotation.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenManager
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register hashes the password and persists a new user. The pre-check is a
// fast path only; the unique index on username is the real guarantor, so a
// concurrent duplicate still fails with ErrUsernameTaken at insert time.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a fresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidPassword
	}

	pair, err := s.tokens.IssuePair(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return pair, nil
}

// Refresh rotates the token pair for an already-verified refresh identity.
// The old refresh token stays valid until its own expiry; there is no
// server-side revocation.
func (s *AuthService) Refresh(ctx context.Context, username string) (*domain.TokenPair, error) {
	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	pair, err := s.tokens.IssuePair(username)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	return pair, nil
}
