package ports

import "github.com/kkkiikkk/kit-global-test/internal/core/domain"

// TokenManager signs and verifies bearer tokens. Each token class is bound
// to its own secret and TTL; a token verifies only against its own class.
type TokenManager interface {
	Issue(username string, class domain.TokenClass) (string, error)
	// Verify returns the username carried by the token. It fails with
	// domain.ErrTokenExpired past the expiry instant and domain.ErrTokenInvalid
	// for anything malformed or signed with the wrong secret.
	Verify(token string, class domain.TokenClass) (string, error)
	IssuePair(username string) (*domain.TokenPair, error)
}
