package readstore

import (
	"context"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/infra/repository/converter"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/pkg/pgconv"
)

type CapacityReadQueries interface {
	GetCapacityRecordsByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCapacityRecordsByDayParams) ([]sqlc.CapacityRecords, error)
}

type CapacityReadStore struct {
	queries CapacityReadQueries
	db      sqlc.DBTX
}

func NewCapacityReadStore(queries CapacityReadQueries, db sqlc.DBTX) *CapacityReadStore {
	return &CapacityReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByDay returns the rows that exist for the day. Slots never reserved
// have no row yet.
func (r *CapacityReadStore) FindByDay(ctx context.Context, resortID booking.ResortID, date booking.Date) ([]capacity.Record, error) {
	rows, err := r.queries.GetCapacityRecordsByDay(ctx, r.db, sqlc.GetCapacityRecordsByDayParams{
		ResortID: resortID.String(),
		Date:     pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get capacity records", err)
	}

	records := make([]capacity.Record, len(rows))
	for i, row := range rows {
		records[i] = converter.CapacityRecordFromRow(row)
	}
	return records, nil
}
