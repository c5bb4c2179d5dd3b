package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	directoryVersionKey = "directory:version"
	directoryPrefix     = "directory:v"
)

// DirectoryCache keeps serialized directory responses per search term.
// Invalidate bumps a generation counter so every older entry stops being
// read and ages out on its TTL. Callers read Version once and pass it to
// both Get and Set, so a payload built before an Invalidate lands in the
// retired generation.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{client: client, ttl: ttl}
}

// NormalizeQuery is the cache identity of a search term.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func directoryKey(version int64, query string) string {
	return fmt.Sprintf("%s%d:%s", directoryPrefix, version, NormalizeQuery(query))
}

// Version is the current generation.
func (c *DirectoryCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, directoryVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("directory cache version: %w", err)
	}
	return v, nil
}

// Get returns the payload cached for query in generation version.
// A miss is (nil, false, nil).
func (c *DirectoryCache) Get(ctx context.Context, version int64, query string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, directoryKey(version, query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}
	return raw, true, nil
}

func (c *DirectoryCache) Set(ctx context.Context, version int64, query string, payload []byte) error {
	if err := c.client.Set(ctx, directoryKey(version, query), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("directory cache set: %w", err)
	}
	return nil
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, directoryVersionKey).Err(); err != nil {
		return fmt.Errorf("directory cache invalidate: %w", err)
	}
	return nil
}
