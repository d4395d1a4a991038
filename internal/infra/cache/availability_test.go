//go:build unit

package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	failAll error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return redis.NewStringResult("", f.failAll)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return redis.NewStatusResult("", f.failAll)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestAvailabilityKey(t *testing.T) {
	assert.Equal(t, "availability:alta:2026-01-12", AvailabilityKey("alta", booking.NewDate(2026, 1, 12)))
}

func TestAvailabilityCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	c := NewAvailabilityCache(kv, 5*time.Second)
	date := booking.NewDate(2026, 1, 12)

	_, ok, err := c.Get(ctx, "alta", date)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache misses")

	view := &queries.AvailabilityView{ResortID: "alta", Date: "2026-01-12", AM: 3, PM: 0}
	require.NoError(t, c.Set(ctx, view))
	assert.Equal(t, 5*time.Second, kv.ttls["availability:alta:2026-01-12"])

	got, ok, err := c.Get(ctx, "alta", date)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, view, got)

	require.NoError(t, c.Invalidate(ctx, "alta", date))
	_, ok, err = c.Get(ctx, "alta", date)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailabilityCache_Errors(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.failAll = errors.New("connection refused")
	c := NewAvailabilityCache(kv, time.Second)

	_, ok, err := c.Get(ctx, "alta", booking.NewDate(2026, 1, 12))
	assert.Error(t, err)
	assert.False(t, ok)

	err = c.Set(ctx, &queries.AvailabilityView{ResortID: "alta", Date: "2026-01-12"})
	assert.Error(t, err)
}

func TestAvailabilityCache_CorruptEntry(t *testing.T) {
	kv := newFakeKV()
	kv.values["availability:alta:2026-01-12"] = "{not json"
	c := NewAvailabilityCache(kv, time.Second)

	_, ok, err := c.Get(context.Background(), "alta", booking.NewDate(2026, 1, 12))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNoopAvailabilityCache(t *testing.T) {
	var c NoopAvailabilityCache
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, &queries.AvailabilityView{ResortID: "alta", Date: "2026-01-12"}))
	_, ok, err := c.Get(ctx, "alta", booking.NewDate(2026, 1, 12))
	assert.NoError(t, err)
	assert.False(t, ok)
}
