// Copyright (c) 2026 Filmorate. All rights reserved.

package film

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/filmorate/filmorate/internal/platform/constants"
)

// RankingCache caches popularity rankings in Redis.
//
// # Invalidation
//
// Keys carry a generation number that is bumped on every like or catalog
// change. Old generations are never read again and simply expire with
// their TTL, so invalidation is a single INCR rather than a key scan.
//
// # Failure Mode
//
// The cache is strictly best-effort: every Redis failure degrades to a
// miss (reads) or is dropped after logging (writes). Film operations
// never fail because of the cache.
type RankingCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewRankingCache constructs a ranking cache over an existing client.
func NewRankingCache(client *redis.Client, logger *slog.Logger) *RankingCache {
	return &RankingCache{
		client: client,
		logger: logger,
		ttl:    constants.PopularCacheTTL,
	}
}

// Get returns the cached ranking for count, reporting whether it was present.
func (cache *RankingCache) Get(context context.Context, count int) ([]*Film, bool) {
	payload, err := cache.client.Get(context, cache.key(context, count)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("ranking_cache_read_failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var films []*Film
	if err := json.Unmarshal(payload, &films); err != nil {
		cache.logger.Warn("ranking_cache_decode_failed", slog.String("error", err.Error()))
		return nil, false
	}

	return films, true
}

// Set stores a ranking under the current generation.
func (cache *RankingCache) Set(context context.Context, count int, films []*Film) {
	payload, err := json.Marshal(films)
	if err != nil {
		cache.logger.Warn("ranking_cache_encode_failed", slog.String("error", err.Error()))
		return
	}

	if err := cache.client.Set(context, cache.key(context, count), payload, cache.ttl).Err(); err != nil {
		cache.logger.Warn("ranking_cache_write_failed", slog.String("error", err.Error()))
	}
}

// Invalidate bumps the generation counter, orphaning every cached ranking.
func (cache *RankingCache) Invalidate(context context.Context) {
	if err := cache.client.Incr(context, cache.generationKey()).Err(); err != nil {
		cache.logger.Warn("ranking_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}

// key builds the value key for a count under the current generation.
// A generation read failure maps to generation 0, which at worst serves
// one stale TTL window.
func (cache *RankingCache) key(context context.Context, count int) string {
	generation, err := cache.client.Get(context, cache.generationKey()).Int64()
	if err != nil && err != redis.Nil {
		cache.logger.Warn("ranking_cache_generation_failed", slog.String("error", err.Error()))
	}

	return fmt.Sprintf("%sgen%d:count%d", constants.RedisPrefixPopular, generation, count)
}

func (cache *RankingCache) generationKey() string {
	return constants.RedisPrefixPopular + "generation"
}
