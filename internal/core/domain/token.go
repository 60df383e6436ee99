package domain

import "errors"

// TokenClass selects which signing secret and TTL apply to a token. Access
// and refresh tokens are signed with disjoint secrets so one class can never
// be presented where the other is required.
type TokenClass string

const (
	TokenClassAccess  TokenClass = "access"
	TokenClassRefresh TokenClass = "refresh"
)

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")

// TokenPair is returned on login and refresh. Pairs are never persisted;
// each token stays valid until its own expiry.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Identity is the authenticated principal attached to a request after the
// bearer token passed verification. RefreshToken carries the raw token
// string and is populated only on the refresh route.
type Identity struct {
	Username     string
	RefreshToken string
}
