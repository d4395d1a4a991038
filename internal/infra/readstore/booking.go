package readstore

import (
	"context"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/infra/repository/converter"
	sqlc "lift-reservation/internal/infra/sqlc/generated"
	"lift-reservation/internal/pkg/pgconv"
	"lift-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetActiveBookingForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveBookingForSlotParams) (sqlc.Bookings, error)
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListActiveBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListActiveBookingsByUserRow, error)
	ListBookingsByResortDayFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResortDayFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByResortDayKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResortDayKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the aggregate for command-side checks.
func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) FindActiveForSlot(ctx context.Context, userID uuid.UUID, key capacity.Key) (*booking.Booking, error) {
	row, err := r.queries.GetActiveBookingForSlot(ctx, r.db, sqlc.GetActiveBookingForSlotParams{
		UserID:   userID,
		ResortID: key.ResortID.String(),
		Date:     pgconv.DateToPgtype(key.Date.Time()),
		Slot:     key.Slot.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active booking for slot", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active booking for slot", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return &queries.BookingView{
		ID:         row.ID,
		UserID:     row.UserID,
		ResortID:   row.ResortID,
		Date:       formatDate(row.Date.Time),
		Slot:       row.Slot,
		Status:     row.Status,
		TicketID:   row.TicketID,
		QRPayload:  row.QrPayload,
		IssuedAt:   pgconv.TimeFromPgtype(row.IssuedAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		CanceledAt: pgconv.TimePtrFromPgtype(row.CanceledAt),
	}, nil
}

func (r *BookingReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListActiveBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingView{
			ID:         row.ID,
			UserID:     row.UserID,
			ResortID:   row.ResortID,
			Date:       formatDate(row.Date.Time),
			Slot:       row.Slot,
			Status:     row.Status,
			TicketID:   row.TicketID,
			QRPayload:  row.QrPayload,
			IssuedAt:   pgconv.TimeFromPgtype(row.IssuedAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			CanceledAt: pgconv.TimePtrFromPgtype(row.CanceledAt),
		}
	}
	return result, nil
}

func (r *BookingReadStore) FindByResortDayFirstPage(ctx context.Context, resortID booking.ResortID, date booking.Date, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByResortDayFirstPage(ctx, r.db, sqlc.ListBookingsByResortDayFirstPageParams{
		ResortID: resortID.String(),
		Date:     pgconv.DateToPgtype(date.Time()),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return toBookingListItems(rows), nil
}

func (r *BookingReadStore) FindByResortDayKeyset(ctx context.Context, resortID booking.ResortID, date booking.Date, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByResortDayKeyset(ctx, r.db, sqlc.ListBookingsByResortDayKeysetParams{
		ResortID:       resortID.String(),
		Date:           pgconv.DateToPgtype(date.Time()),
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return toBookingListItems(rows), nil
}

func toBookingListItems(rows []sqlc.Bookings) []*queries.BookingListItem {
	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:         row.ID,
			UserID:     row.UserID,
			Slot:       row.Slot,
			Status:     row.Status,
			TicketID:   row.TicketID,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			CanceledAt: pgconv.TimePtrFromPgtype(row.CanceledAt),
		}
	}
	return result
}

func formatDate(t time.Time) string {
	return t.Format(booking.DateLayout)
}
