package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"nagaBack/internal/models"
)

const defaultCacheTTL = 6 * time.Hour

// CachedSearch wraps a Searcher with a time-boxed Redis cache keyed by the
// full input tuple. It sits outside the pipeline: the ranking stages know
// nothing about it. Redis trouble degrades to a live search.
type CachedSearch struct {
	Next Searcher
	RDB  *redis.Client
	TTL  time.Duration
}

func (c *CachedSearch) Search(ctx context.Context, rawQuery, cityFilter string) (models.SearchResponse, error) {
	if c.RDB == nil {
		return c.Next.Search(ctx, rawQuery, cityFilter)
	}

	key := searchCacheKey(rawQuery, cityFilter)
	if data, err := c.RDB.Get(ctx, key).Bytes(); err == nil {
		var cached models.SearchResponse
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	}

	resp, err := c.Next.Search(ctx, rawQuery, cityFilter)
	if err != nil {
		return resp, err
	}

	ttl := c.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if data, err := json.Marshal(resp); err == nil {
		// Best effort; a failed write just means the next request works.
		c.RDB.Set(ctx, key, data, ttl)
	}
	return resp, nil
}

func searchCacheKey(rawQuery, cityFilter string) string {
	sum := sha256.Sum256([]byte(rawQuery + "\x00" + cityFilter))
	return "search:" + hex.EncodeToString(sum[:])
}
