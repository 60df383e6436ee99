package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

// Token lifetimes are fixed policy, not configuration.
const (
	AccessTokenTTL  = 10 * time.Minute
	RefreshTokenTTL = 25 * time.Minute
)

// Claims is the payload carried by both token classes.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens. Access and refresh tokens use
// disjoint secrets so neither class can be forged from the other.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

func NewManager(accessSecret, refreshSecret string) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

// Issue signs a token of the given class carrying the username.
func (m *Manager) Issue(username string, class domain.TokenClass) (string, error) {
	secret, ttl, err := m.classParams(class)
	if err != nil {
		return "", err
	}

	now := m.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Verify checks signature and expiry against the secret of the declared
// class and returns the username on success.
func (m *Manager) Verify(token string, class domain.TokenClass) (string, error) {
	secret, _, err := m.classParams(class)
	if err != nil {
		return "", err
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Username == "" {
		return "", domain.ErrTokenInvalid
	}

	return claims.Username, nil
}

// IssuePair mints a fresh access+refresh pair for the username. The two
// signatures are independent; ordering between them does not matter.
func (m *Manager) IssuePair(username string) (*domain.TokenPair, error) {
	access, err := m.Issue(username, domain.TokenClassAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := m.Issue(username, domain.TokenClassRefresh)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *Manager) classParams(class domain.TokenClass) ([]byte, time.Duration, error) {
	switch class {
	case domain.TokenClassAccess:
		return m.accessSecret, AccessTokenTTL, nil
	case domain.TokenClassRefresh:
		return m.refreshSecret, RefreshTokenTTL, nil
	}
	return nil, 0, domain.ErrTokenInvalid
}
