package ports

import (
	"context"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

// AuthService implements registration and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	// Refresh assumes the caller already passed refresh-token verification;
	// it only re-confirms the identity still exists before rotating the pair.
	Refresh(ctx context.Context, username string) (*domain.TokenPair, error)
}
