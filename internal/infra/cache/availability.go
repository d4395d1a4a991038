package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "availability:"

type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AvailabilityCache stores computed availability views. Entries expire after
// ttl, which bounds how stale a read can be when an invalidation is lost.
type AvailabilityCache struct {
	kv  kvStore
	ttl time.Duration
}

func NewAvailabilityCache(kv kvStore, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{kv: kv, ttl: ttl}
}

func AvailabilityKey(resortID booking.ResortID, date booking.Date) string {
	return availabilityKeyPrefix + resortID.String() + ":" + date.String()
}

func (c *AvailabilityCache) Get(ctx context.Context, resortID booking.ResortID, date booking.Date) (*queries.AvailabilityView, bool, error) {
	raw, err := c.kv.Get(ctx, AvailabilityKey(resortID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var view queries.AvailabilityView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, err
	}
	return &view, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, view *queries.AvailabilityView) error {
	resortID := booking.ResortID(view.ResortID)
	date, err := booking.ParseDate(view.Date)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, AvailabilityKey(resortID, date), raw, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, resortID booking.ResortID, date booking.Date) error {
	return c.kv.Del(ctx, AvailabilityKey(resortID, date)).Err()
}

// NoopAvailabilityCache is used when Redis is disabled. Every read misses.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, booking.ResortID, booking.Date) (*queries.AvailabilityView, bool, error) {
	return nil, false, nil
}

func (NoopAvailabilityCache) Set(context.Context, *queries.AvailabilityView) error {
	return nil
}

func (NoopAvailabilityCache) Invalidate(context.Context, booking.ResortID, booking.Date) error {
	return nil
}
