package queries

import (
	"context"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/infra"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrInvalidCursor   = errs.New("invalid cursor")
	ErrInvalidQuery    = errs.New("invalid query parameter")

	ErrStoreUnavailable = shared.ErrStoreUnavailable
)

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByResortDayFirstPage(ctx context.Context, resortID booking.ResortID, date booking.Date, limit int32) ([]*BookingListItem, error)
	FindByResortDayKeyset(ctx context.Context, resortID booking.ResortID, date booking.Date, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListByResortDay(ctx context.Context, resortID, date string, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, shared.StoreErr(err)
	}
	if view.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.store.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, shared.StoreErr(err)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListByResortDay(ctx context.Context, resortID, date string, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	rid, err := booking.NewResortID(resortID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidQuery)
	}
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidQuery)
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByResortDayFirstPage(ctx, rid, day, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		rows, err = q.store.FindByResortDayKeyset(ctx, rid, day, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, shared.StoreErr(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
