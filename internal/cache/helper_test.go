package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "key", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestCacheAside(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			calls++
			*dest = []string{"a", "b"}
			return nil
		}
	}

	var first []string
	require.NoError(t, CacheAside(ctx, "listing", &first, time.Minute, fetch(&first)))
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache.
	var second []string
	require.NoError(t, CacheAside(ctx, "listing", &second, time.Minute, fetch(&second)))
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, 1, calls)
}

func TestHelpersWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "key", &struct{}{})
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, SetJSON(ctx, "key", "v", time.Minute))

	// Without Redis every CacheAside read goes to the source.
	calls := 0
	var out string
	require.NoError(t, CacheAside(ctx, "key", &out, time.Minute, func() error {
		calls++
		out = "fresh"
		return nil
	}))
	assert.Equal(t, "fresh", out)
	assert.Equal(t, 1, calls)
}

func TestInvalidateBrowse(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, BrowseKey(""), []string{"all"}, time.Minute))
	require.NoError(t, SetJSON(ctx, BrowseKey("guitar"), []string{"guitar"}, time.Minute))
	require.NoError(t, SetJSON(ctx, UserKey(1), "profile", time.Minute))

	InvalidateBrowse(ctx)

	var out []string
	found, err := GetJSON(ctx, BrowseKey(""), &out)
	require.NoError(t, err)
	assert.False(t, found)
	found, err = GetJSON(ctx, BrowseKey("guitar"), &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Profile entries survive a browse invalidation.
	var profile string
	found, err = GetJSON(ctx, UserKey(1), &profile)
	require.NoError(t, err)
	assert.True(t, found)
}
