// Copyright (c) 2026 Filmorate. All rights reserved.

package film_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/filmorate/internal/film"
	"github.com/filmorate/filmorate/internal/platform/constants"
)

// newCache spins up an in-process Redis and a ranking cache over it.
func newCache(t *testing.T) (*miniredis.Miniredis, *film.RankingCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, film.NewRankingCache(client, slog.Default())
}

func rankedFilms() []*film.Film {
	return []*film.Film{
		{ID: 3, Name: "Third", Rate: 2},
		{ID: 1, Name: "First", Rate: 1},
	}
}

/*
TestRankingCache_RoundTrip verifies the set/get cycle and the cold miss.
*/
func TestRankingCache_RoundTrip(t *testing.T) {
	_, cache := newCache(t)

	_, ok := cache.Get(context.Background(), 10)
	assert.False(t, ok, "cold cache misses")

	cache.Set(context.Background(), 10, rankedFilms())

	films, ok := cache.Get(context.Background(), 10)
	require.True(t, ok)
	require.Len(t, films, 2)
	assert.Equal(t, 3, films[0].ID)
	assert.Equal(t, 2, films[0].Rate)
}

/*
TestRankingCache_CountIsolation verifies rankings of different sizes do
not shadow each other.
*/
func TestRankingCache_CountIsolation(t *testing.T) {
	_, cache := newCache(t)

	cache.Set(context.Background(), 10, rankedFilms())

	_, ok := cache.Get(context.Background(), 2)
	assert.False(t, ok, "a different count is a distinct key")
}

/*
TestRankingCache_Invalidate verifies that bumping the generation orphans
cached rankings.
*/
func TestRankingCache_Invalidate(t *testing.T) {
	_, cache := newCache(t)

	cache.Set(context.Background(), 10, rankedFilms())
	cache.Invalidate(context.Background())

	_, ok := cache.Get(context.Background(), 10)
	assert.False(t, ok, "old generation is never read again")

	// The new generation caches independently.
	cache.Set(context.Background(), 10, rankedFilms())
	_, ok = cache.Get(context.Background(), 10)
	assert.True(t, ok)
}

/*
TestRankingCache_Expiry verifies entries age out with their TTL.
*/
func TestRankingCache_Expiry(t *testing.T) {
	server, cache := newCache(t)

	cache.Set(context.Background(), 10, rankedFilms())
	server.FastForward(constants.PopularCacheTTL + time.Second)

	_, ok := cache.Get(context.Background(), 10)
	assert.False(t, ok)
}

/*
TestRankingCache_DownstreamFailure verifies Redis loss degrades to misses
instead of errors.
*/
func TestRankingCache_DownstreamFailure(t *testing.T) {
	server, cache := newCache(t)

	cache.Set(context.Background(), 10, rankedFilms())
	server.Close()

	_, ok := cache.Get(context.Background(), 10)
	assert.False(t, ok, "a dead cache is a miss, not a failure")

	// Writes are absorbed too.
	cache.Set(context.Background(), 10, rankedFilms())
	cache.Invalidate(context.Background())
}
