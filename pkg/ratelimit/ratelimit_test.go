package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(), "test", 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, remaining, _, err := limiter.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
		assert.Equal(t, 3-(i+1), remaining)
	}

	allowed, remaining, resetTime, err := limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.True(t, resetTime.After(time.Now()))
}

func TestLimiter_IdentifiersAreIndependent(t *testing.T) {
	limiter := NewLimiter(NewMemoryStore(), "test", 1, time.Minute)
	ctx := context.Background()

	allowed, _, _, err := limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, _, err = limiter.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _, _, err = limiter.Allow(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, allowed, "bob has a separate budget")
}

func TestLimiter_CategoriesAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	creation := NewLimiter(store, "creation", 1, time.Minute)
	general := NewLimiter(store, "general", 1, time.Minute)
	ctx := context.Background()

	allowed, _, _, err := creation.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, _, err = creation.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, allowed, "creation budget exhausted")

	allowed, _, _, err = general.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed, "general budget untouched")
}

func TestMemoryStore_WindowSlides(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	count, err := store.Hit(ctx, "k", base, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Hit(ctx, "k", base.Add(30*time.Second), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The first hit falls out of the window
	count, err = store.Hit(ctx, "k", base.Add(70*time.Second), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Everything expired
	count, err = store.Hit(ctx, "k", base.Add(5*time.Minute), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStore_EvictsIdleIdentifiers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	_, err := store.Hit(ctx, "one-off", base, time.Minute)
	require.NoError(t, err)

	// A later hit on a different key triggers the sweep once the first
	// key's window has fully expired
	_, err = store.Hit(ctx, "active", base.Add(3*time.Minute), time.Minute)
	require.NoError(t, err)

	store.mu.Lock()
	_, oneOffKept := store.entries["one-off"]
	_, activeKept := store.entries["active"]
	store.mu.Unlock()

	assert.False(t, oneOffKept, "expired identifier should be evicted")
	assert.True(t, activeKept)
}
