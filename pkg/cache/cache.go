package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLBoard bounds the last chat board snapshot, superseded every poll
const TTLBoard = 30 * time.Second

// Key prefixes
const (
	PrefixBoard = "board:"
)

// ErrUnavailable is returned by reads when no Redis client is configured
var ErrUnavailable = errors.New("redis not available")

// Service Redis backed JSON cache
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// chat board snapshots
	GetBoard(ctx context.Context, categoryID int64, dest interface{}) error
	SetBoard(ctx context.Context, categoryID int64, data interface{}) error
	InvalidateBoard(ctx context.Context, categoryID int64) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service. A nil client yields a no-op cache.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis client is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrUnavailable
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrUnavailable
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// chat board snapshots
// ========================================

// BoardKey returns the cache key of a category's board snapshot
func BoardKey(categoryID int64) string {
	return fmt.Sprintf("%s%d", PrefixBoard, categoryID)
}

func (c *redisCache) GetBoard(ctx context.Context, categoryID int64, dest interface{}) error {
	return c.Get(ctx, BoardKey(categoryID), dest)
}

func (c *redisCache) SetBoard(ctx context.Context, categoryID int64, data interface{}) error {
	return c.Set(ctx, BoardKey(categoryID), data, TTLBoard)
}

func (c *redisCache) InvalidateBoard(ctx context.Context, categoryID int64) error {
	return c.Delete(ctx, BoardKey(categoryID))
}
