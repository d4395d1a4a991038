//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedCapacity creates or overwrites one capacity row.
func SeedCapacity(t *testing.T, db DBLike, resortID, date, slot string, total, remaining int32) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO capacity_records (resort_id, date, slot, capacity_total, capacity_remaining)
		VALUES ($1, $2::date, $3, $4, $5)
		ON CONFLICT (resort_id, date, slot)
		DO UPDATE SET capacity_total = EXCLUDED.capacity_total, capacity_remaining = EXCLUDED.capacity_remaining`,
		resortID, date, slot, total, remaining)
	require.NoError(t, err)
}

// RemainingCapacity returns -1 when the row has not been created yet.
func RemainingCapacity(t *testing.T, db DBLike, resortID, date, slot string) int32 {
	t.Helper()

	var remaining int32 = -1
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(
			(SELECT capacity_remaining FROM capacity_records WHERE resort_id = $1 AND date = $2::date AND slot = $3),
			-1)`,
		resortID, date, slot).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

func CountConfirmedBookings(t *testing.T, db DBLike, resortID, date, slot string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM bookings
		WHERE resort_id = $1 AND date = $2::date AND slot = $3 AND status = 'confirmed'`,
		resortID, date, slot).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountTickets(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM tickets").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
