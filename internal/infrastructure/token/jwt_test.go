package token

import (
	"errors"
	"testing"
	"time"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	for _, class := range []domain.TokenClass{domain.TokenClassAccess, domain.TokenClassRefresh} {
		tok, err := m.Issue("alice", class)
		if err != nil {
			t.Fatalf("Issue(%s) error: %v", class, err)
		}
		username, err := m.Verify(tok, class)
		if err != nil {
			t.Fatalf("Verify(%s) error: %v", class, err)
		}
		if username != "alice" {
			t.Fatalf("expected alice, got %q", username)
		}
	}
}

func TestManager_CrossClassRejection(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	access, err := m.Issue("alice", domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	refresh, err := m.Issue("alice", domain.TokenClassRefresh)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	if _, err := m.Verify(access, domain.TokenClassRefresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("access token accepted as refresh: %v", err)
	}
	if _, err := m.Verify(refresh, domain.TokenClassAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("refresh token accepted as access: %v", err)
	}
}

func TestManager_WrongSecret(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")
	other := NewManager("other-access", "other-refresh")

	tok, err := m.Issue("bob", domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := other.Verify(tok, domain.TokenClassAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_ExpiryBoundary(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	tok, err := m.Issue("alice", domain.TokenClassAccess)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// One second before expiry the token still verifies.
	m.now = func() time.Time { return issuedAt.Add(AccessTokenTTL - time.Second) }
	if _, err := m.Verify(tok, domain.TokenClassAccess); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// At the expiry instant and beyond it must fail as expired.
	m.now = func() time.Time { return issuedAt.Add(AccessTokenTTL) }
	if _, err := m.Verify(tok, domain.TokenClassAccess); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at expiry instant, got %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(AccessTokenTTL + time.Hour) }
	if _, err := m.Verify(tok, domain.TokenClassAccess); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestManager_MalformedToken(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(tok, domain.TokenClassAccess); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestManager_IssuePair(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	pair, err := m.IssuePair("alice")
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatalf("access and refresh tokens must differ")
	}

	if _, err := m.Verify(pair.AccessToken, domain.TokenClassAccess); err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if _, err := m.Verify(pair.RefreshToken, domain.TokenClassRefresh); err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
}
