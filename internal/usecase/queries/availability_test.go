//go:build unit

package queries_test

import (
	"context"
	"testing"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/queries"
	queriesmock "lift-reservation/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Get(t *testing.T) {
	ctx := context.Background()
	date := booking.NewDate(2026, 1, 12)
	policy, err := capacity.NewPolicy(100, nil)
	require.NoError(t, err)

	setup := func(t *testing.T) (*queriesmock.MockCapacityReadStore, *queriesmock.MockAvailabilityCache, queries.AvailabilityQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCapacityReadStore(ctrl)
		cache := queriesmock.NewMockAvailabilityCache(ctrl)
		return store, cache, queries.NewAvailabilityQueries(store, cache, policy)
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		_, cache, q := setup(t)
		cached := &queries.AvailabilityView{ResortID: "alta", Date: "2026-01-12", AM: 3, PM: 4}
		cache.EXPECT().Get(ctx, booking.ResortID("alta"), date).Return(cached, true, nil)

		view, err := q.Get(ctx, "alta", "2026-01-12")
		require.NoError(t, err)
		assert.Equal(t, cached, view)
	})

	t.Run("miss reads the store and fills untouched slots from policy", func(t *testing.T) {
		store, cache, q := setup(t)
		cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(nil, false, nil)
		store.EXPECT().FindByDay(ctx, booking.ResortID("alta"), date).Return([]capacity.Record{
			{Key: capacity.Key{ResortID: "alta", Date: date, Slot: booking.SlotAM}, Total: 100, Remaining: 37},
		}, nil)
		want := &queries.AvailabilityView{ResortID: "alta", Date: "2026-01-12", AM: 37, PM: 100}
		cache.EXPECT().Set(ctx, want).Return(nil)

		view, err := q.Get(ctx, "alta", "2026-01-12")
		require.NoError(t, err)
		assert.Equal(t, want, view)
	})

	t.Run("cache errors fall through to the store", func(t *testing.T) {
		store, cache, q := setup(t)
		cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(nil, false, errs.New("redis down"))
		store.EXPECT().FindByDay(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		cache.EXPECT().Set(ctx, gomock.Any()).Return(errs.New("redis down"))

		view, err := q.Get(ctx, "alta", "2026-01-12")
		require.NoError(t, err)
		assert.Equal(t, int32(100), view.AM)
		assert.Equal(t, int32(100), view.PM)
	})

	t.Run("store failure", func(t *testing.T) {
		store, cache, q := setup(t)
		cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(nil, false, nil)
		store.EXPECT().FindByDay(ctx, gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindTimeout, "statement timeout"))

		_, err := q.Get(ctx, "alta", "2026-01-12")
		assert.True(t, errs.Is(err, queries.ErrStoreUnavailable))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, q := setup(t)
		_, err := q.Get(ctx, "alta", "2026-13-01")
		assert.True(t, errs.Is(err, queries.ErrInvalidQuery))
		_, err = q.Get(ctx, "", "2026-01-12")
		assert.True(t, errs.Is(err, queries.ErrInvalidQuery))
	})
}
