package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rulingCacheTTL = 5 * time.Minute

// RulingCache keeps serialized rulings pages in Redis so the public
// directory does not hit Mongo on every request.
// Key format: rulings:<category>:<page>:<limit>
type RulingCache struct {
	client *redis.Client
}

// NewRulingCache creates a RulingCache wrapping the given Redis client.
func NewRulingCache(client *redis.Client) *RulingCache {
	return &RulingCache{client: client}
}

// Get returns the cached payload for the page, or (nil, nil) on a miss.
func (c *RulingCache) Get(ctx context.Context, category string, page, limit int) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.key(category, page, limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("ruling cache get: %w", err)
	}
	return raw, nil
}

// Set stores the serialized page (expires after rulingCacheTTL).
func (c *RulingCache) Set(ctx context.Context, category string, page, limit int, payload []byte) error {
	return c.client.Set(ctx, c.key(category, page, limit), payload, rulingCacheTTL).Err()
}

func (c *RulingCache) key(category string, page, limit int) string {
	return fmt.Sprintf("rulings:%s:%d:%d", category, page, limit)
}
