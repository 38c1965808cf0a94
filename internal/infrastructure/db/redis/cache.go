package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

const userCacheTTL = 5 * time.Minute

// UserCache caches sanitized users by id.
// Key format: user:<id>
//
// Only the sanitized view is stored; the password hash never reaches Redis.
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.PublicUser, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var user domain.PublicUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &user, nil
}

// Set stores the user for userCacheTTL.
func (c *UserCache) Set(ctx context.Context, user *domain.PublicUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, userCacheTTL).Err()
}

// Invalidate drops the cached entry after a mutation.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
