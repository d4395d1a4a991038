package queries

import (
	"context"
	"log/slog"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/shared"
)

type CapacityReadStore interface {
	FindByDay(ctx context.Context, resortID booking.ResortID, date booking.Date) ([]capacity.Record, error)
}

// AvailabilityCache holds computed views for at most its TTL. A miss is
// reported as (nil, false, nil).
type AvailabilityCache interface {
	Get(ctx context.Context, resortID booking.ResortID, date booking.Date) (*AvailabilityView, bool, error)
	Set(ctx context.Context, view *AvailabilityView) error
}

type AvailabilityQueries interface {
	Get(ctx context.Context, resortID, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store  CapacityReadStore
	cache  AvailabilityCache
	policy *capacity.Policy
}

func NewAvailabilityQueries(store CapacityReadStore, cache AvailabilityCache, policy *capacity.Policy) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:  store,
		cache:  cache,
		policy: policy,
	}
}

func (q *availabilityQueriesImpl) Get(ctx context.Context, resortID, date string) (*AvailabilityView, error) {
	rid, err := booking.NewResortID(resortID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}

	if view, ok, cerr := q.cache.Get(ctx, rid, day); cerr != nil {
		slog.WarnContext(ctx, "availability cache read failed",
			"resort_id", rid.String(),
			"date", day.String(),
			"error", cerr.Error())
	} else if ok {
		return view, nil
	}

	records, err := q.store.FindByDay(ctx, rid, day)
	if err != nil {
		return nil, shared.StoreErr(err)
	}

	avail := capacity.BuildAvailability(q.policy, rid, records)
	view := &AvailabilityView{
		ResortID: rid.String(),
		Date:     day.String(),
		AM:       avail[booking.SlotAM],
		PM:       avail[booking.SlotPM],
	}

	if cerr := q.cache.Set(ctx, view); cerr != nil {
		slog.WarnContext(ctx, "availability cache write failed",
			"resort_id", view.ResortID,
			"date", view.Date,
			"error", cerr.Error())
	}

	return view, nil
}
