//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"lift-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "statement timeout", err: &pgconn.PgError{Code: "57014"}, want: infra.KindTimeout},
		{name: "deadline", err: context.DeadlineExceeded, want: infra.KindTimeout},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	err := infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNoCapacity)
	assert.True(t, infra.IsKind(err, infra.KindNoCapacity))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
}

func TestNewRepoErr(t *testing.T) {
	err := infra.NewRepoErr(infra.KindCapacityOverflow, "remaining already at total")
	assert.True(t, infra.IsKind(err, infra.KindCapacityOverflow))
	assert.Equal(t, "CAPACITY_OVERFLOW: remaining already at total", err.Error())
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindCapacityOverflow))
}
