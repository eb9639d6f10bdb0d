package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissPopulatesCache(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	var v cachedValue
	err := Aside(ctx, "k", &v, time.Minute, func() error {
		calls++
		v = cachedValue{Name: "fetched"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fetched", v.Name)
	assert.True(t, mr.Exists("k"))
}

func TestAside_HitSkipsFetch(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var first cachedValue
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, func() error {
		first = cachedValue{Name: "original"}
		return nil
	}))

	var second cachedValue
	err := Aside(ctx, "k", &second, time.Minute, func() error {
		t.Fatal("fetch should not run on a cache hit")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "original", second.Name)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetchErr := errors.New("db down")
	var v cachedValue
	err := Aside(ctx, "k", &v, time.Minute, func() error { return fetchErr })
	assert.ErrorIs(t, err, fetchErr)
	assert.False(t, mr.Exists("k"))
}

func TestAside_NilClientDegradesToFetch(t *testing.T) {
	SetClient(nil)

	calls := 0
	var v cachedValue
	err := Aside(context.Background(), "k", &v, time.Minute, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
