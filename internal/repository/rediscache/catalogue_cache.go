// Package rediscache keeps derived read models in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campuscalendar/internal/domain"
)

// CatalogueKey is the Redis key of the cached campus catalogue.
const CatalogueKey = "campuscalendar:catalogue"

// client is the subset of redis.Cmdable the cache uses.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type catalogueCache struct {
	rdb client
	ttl time.Duration
}

// NewCatalogueCache returns a domain.CatalogueCache storing the catalogue as
// JSON under CatalogueKey for ttl.
func NewCatalogueCache(rdb *redis.Client, ttl time.Duration) domain.CatalogueCache {
	return &catalogueCache{rdb: rdb, ttl: ttl}
}

func (c *catalogueCache) Get(ctx context.Context) (domain.Catalogue, bool, error) {
	data, err := c.rdb.Get(ctx, CatalogueKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get catalogue: %w", err)
	}
	var cat domain.Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, false, fmt.Errorf("decode cached catalogue: %w", err)
	}
	return cat, true, nil
}

func (c *catalogueCache) Set(ctx context.Context, cat domain.Catalogue) error {
	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("encode catalogue: %w", err)
	}
	if err := c.rdb.Set(ctx, CatalogueKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set catalogue: %w", err)
	}
	return nil
}

func (c *catalogueCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, CatalogueKey).Err(); err != nil {
		return fmt.Errorf("redis del catalogue: %w", err)
	}
	return nil
}
