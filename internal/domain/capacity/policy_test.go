//go:build unit

package capacity_test

import (
	"testing"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/capacity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy(t *testing.T) {
	t.Run("override wins over default", func(t *testing.T) {
		p, err := capacity.NewPolicy(100, map[string]int32{"alta": 20})
		require.NoError(t, err)

		assert.Equal(t, int32(20), p.TotalFor("alta"))
		assert.Equal(t, int32(100), p.TotalFor("snowbird"))
	})

	t.Run("rejects negative totals", func(t *testing.T) {
		_, err := capacity.NewPolicy(-1, nil)
		assert.ErrorIs(t, err, capacity.ErrNegativeCapacity)

		_, err = capacity.NewPolicy(10, map[string]int32{"alta": -5})
		assert.ErrorIs(t, err, capacity.ErrNegativeCapacity)
	})

	t.Run("rejects malformed resort ids", func(t *testing.T) {
		_, err := capacity.NewPolicy(10, map[string]int32{"Not A Slug": 5})
		assert.ErrorIs(t, err, booking.ErrInvalidResortID)
	})

	t.Run("zero capacity is allowed", func(t *testing.T) {
		p, err := capacity.NewPolicy(0, nil)
		require.NoError(t, err)
		assert.Equal(t, int32(0), p.TotalFor("alta"))
	})
}

func TestBuildAvailability(t *testing.T) {
	p, err := capacity.NewPolicy(100, map[string]int32{"alta": 3})
	require.NoError(t, err)
	date := booking.NewDate(2026, 1, 10)

	t.Run("missing records report the policy total", func(t *testing.T) {
		got := capacity.BuildAvailability(p, "alta", nil)
		assert.Equal(t, capacity.Availability{booking.SlotAM: 3, booking.SlotPM: 3}, got)
	})

	t.Run("stored records take precedence", func(t *testing.T) {
		records := []capacity.Record{
			{Key: capacity.Key{ResortID: "alta", Date: date, Slot: booking.SlotPM}, Total: 3, Remaining: 1},
		}
		got := capacity.BuildAvailability(p, "alta", records)
		assert.Equal(t, capacity.Availability{booking.SlotAM: 3, booking.SlotPM: 1}, got)
	})

	t.Run("never negative", func(t *testing.T) {
		records := []capacity.Record{
			{Key: capacity.Key{ResortID: "alta", Date: date, Slot: booking.SlotAM}, Total: 3, Remaining: -2},
		}
		got := capacity.BuildAvailability(p, "alta", records)
		assert.Equal(t, int32(0), got[booking.SlotAM])
	})
}
