// Package sessioncache persists the last successfully resolved district per
// session. It only ever seeds the cached-district fallback signal.
package sessioncache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cropadvisor:last_district:"

// Entry is the persisted resolution seed: district plus the coordinates it
// was resolved from.
type Entry struct {
	District   string    `json:"district"`
	Lat        float64   `json:"lat,omitempty"`
	Lon        float64   `json:"lon,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Cache reads and writes per-session resolution seeds. A miss returns
// (nil, nil).
type Cache interface {
	Get(ctx context.Context, sessionID string) (*Entry, error)
	Put(ctx context.Context, sessionID string, entry *Entry) error
}

type cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) Cache {
	return &cache{client: client, ttl: ttl}
}

func (c *cache) Get(ctx context.Context, sessionID string) (*Entry, error) {
	raw, err := c.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := sonic.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal cache entry: %w", err)
	}

	return &entry, nil
}

func (c *cache) Put(ctx context.Context, sessionID string, entry *Entry) error {
	raw, err := sonic.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+sessionID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}
