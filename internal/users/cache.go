package users

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/userhub/userhub/internal/models"
)

// CachedRepository wraps a UserRepository with a Redis read-through cache for
// id lookups. Users are stored as JSON under "user:<id>" with a fixed TTL.
// Cache failures are treated as misses; the inner repository stays
// authoritative.
type CachedRepository struct {
	inner  UserRepository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCachedRepository wraps inner with a Redis cache. Prefix may be empty and
// defaults to "user:".
func NewCachedRepository(inner UserRepository, client *redis.Client, prefix string, ttl time.Duration) *CachedRepository {
	if prefix == "" {
		prefix = "user:"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRepository{inner: inner, client: client, prefix: prefix, ttl: ttl}
}

func (c *CachedRepository) key(id string) string {
	return c.prefix + id
}

func (c *CachedRepository) cacheSet(ctx context.Context, u *models.User) {
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(u.ID), b, c.ttl).Err()
}

func (c *CachedRepository) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	stored, err := c.inner.Insert(ctx, u)
	if err != nil {
		return nil, err
	}
	c.cacheSet(ctx, stored)
	return stored, nil
}

func (c *CachedRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	b, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var u models.User
		if jerr := json.Unmarshal(b, &u); jerr == nil {
			return &u, nil
		}
		// corrupt entry: drop and fall through to the inner repo
		_ = c.client.Del(ctx, c.key(id)).Err()
	}
	// redis.Nil and transport errors are both treated as misses
	u, err := c.inner.GetByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	c.cacheSet(ctx, u)
	return u, nil
}

func (c *CachedRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return c.inner.GetByEmail(ctx, email)
}

func (c *CachedRepository) List(ctx context.Context) ([]*models.User, error) {
	return c.inner.List(ctx)
}

func (c *CachedRepository) UpdateName(ctx context.Context, id, name string) (*models.User, error) {
	u, err := c.inner.UpdateName(ctx, id, name)
	if err != nil {
		return nil, err
	}
	c.cacheSet(ctx, u)
	return u, nil
}

func (c *CachedRepository) SetAvatarKey(ctx context.Context, id, key string) error {
	if err := c.inner.SetAvatarKey(ctx, id, key); err != nil {
		return err
	}
	_ = c.client.Del(ctx, c.key(id)).Err()
	return nil
}

func (c *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	_ = c.client.Del(ctx, c.key(id)).Err()
	return nil
}
