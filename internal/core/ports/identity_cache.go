package ports

import "context"

// IdentityCache memoizes the username → user id mapping consulted by the
// ownership gate on every task route. Implementations must treat failures as
// misses: the gate always has the repository as fallback.
type IdentityCache interface {
	GetUserID(ctx context.Context, username string) (string, bool)
	SetUserID(ctx context.Context, username, userID string)
}
