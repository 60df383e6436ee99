package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const identityTTL = 10 * time.Minute

// IdentityCache memoizes username → user id lookups for the ownership gate.
// User ids are immutable once assigned, so entries can only expire, never go
// wrong. Any Redis failure degrades to a cache miss.
// Key format: identity:<username>
type IdentityCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewIdentityCache creates an IdentityCache wrapping the given Redis client.
func NewIdentityCache(client *redis.Client, log zerolog.Logger) *IdentityCache {
	return &IdentityCache{client: client, log: log}
}

func (c *IdentityCache) GetUserID(ctx context.Context, username string) (string, bool) {
	id, err := c.client.Get(ctx, c.key(username)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("identity cache read failed")
		}
		return "", false
	}
	return id, true
}

func (c *IdentityCache) SetUserID(ctx context.Context, username, userID string) {
	if err := c.client.Set(ctx, c.key(username), userID, identityTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("identity cache write failed")
	}
}

func (c *IdentityCache) key(username string) string {
	return fmt.Sprintf("identity:%s", username)
}
