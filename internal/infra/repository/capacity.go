package repository

import (
	"context"

	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/infra"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/pkg/pgconv"
	"lift-reservation/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

type CapacityWriteQueries interface {
	EnsureCapacityRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureCapacityRecordParams) error
	DecrementCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementCapacityParams) (int32, error)
	IncrementCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementCapacityParams) (int64, error)
}

type CapacityRepository struct {
	queries CapacityWriteQueries
	db      sqlc.DBTX
}

func NewCapacityRepository(queries CapacityWriteQueries, db sqlc.DBTX) *CapacityRepository {
	return &CapacityRepository{
		queries: queries,
		db:      db,
	}
}

// Reserve lazily creates the row for key with the configured total, then takes
// one unit. The decrement is guarded in SQL, so concurrent callers serialize on
// the row lock and the counter never goes below zero.
func (r *CapacityRepository) Reserve(ctx context.Context, tx sqlc.DBTX, key capacity.Key, total int32) (remaining int32, err error) {
	ctx, span := telemetry.StartSpan(ctx, "capacity.reserve", keyAttrs(key)...)
	defer func() { telemetry.EndSpan(span, err) }()

	date := pgconv.DateToPgtype(key.Date.Time())

	err = r.queries.EnsureCapacityRecord(ctx, tx, sqlc.EnsureCapacityRecordParams{
		ResortID:      key.ResortID.String(),
		Date:          date,
		Slot:          key.Slot.String(),
		CapacityTotal: total,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to ensure capacity record", err)
	}

	remaining, err = r.queries.DecrementCapacity(ctx, tx, sqlc.DecrementCapacityParams{
		ResortID: key.ResortID.String(),
		Date:     date,
		Slot:     key.Slot.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("slot is full", err, infra.KindNoCapacity)
		}
		return 0, infra.WrapRepoErr("failed to decrement capacity", err)
	}

	return remaining, nil
}

func (r *CapacityRepository) Release(ctx context.Context, tx sqlc.DBTX, key capacity.Key) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "capacity.release", keyAttrs(key)...)
	defer func() { telemetry.EndSpan(span, err) }()

	affected, err := r.queries.IncrementCapacity(ctx, tx, sqlc.IncrementCapacityParams{
		ResortID: key.ResortID.String(),
		Date:     pgconv.DateToPgtype(key.Date.Time()),
		Slot:     key.Slot.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to increment capacity", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindCapacityOverflow, "capacity already at total")
	}
	return nil
}

func keyAttrs(key capacity.Key) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("resort.id", key.ResortID.String()),
		attribute.String("booking.date", key.Date.String()),
		attribute.String("booking.slot", key.Slot.String()),
	}
}
