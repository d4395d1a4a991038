//go:build unit

package ticket_test

import (
	"strings"
	"testing"
	"time"

	"lift-reservation/internal/domain/booking"
	"lift-reservation/internal/domain/ticket"
	"lift-reservation/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 1, 10, 7, 0, 0, 0, time.UTC)

func newIssuer(t *testing.T, key string) *ticket.Issuer {
	t.Helper()
	issuer, err := ticket.NewIssuer(key, clock.NewMockClock(issuedAt))
	require.NoError(t, err)
	return issuer
}

func confirmedBooking() *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), uuid.New(), "alta", booking.NewDate(2026, 1, 12), booking.SlotPM,
		booking.StatusConfirmed, uuid.Nil, issuedAt, nil)
}

func TestNewIssuer(t *testing.T) {
	_, err := ticket.NewIssuer("", clock.NewRealClock())
	assert.ErrorIs(t, err, ticket.ErrEmptySigningKey)

	_, err = ticket.NewIssuer(strings.Repeat("k", 200), clock.NewRealClock())
	assert.NoError(t, err, "keys longer than the MAC key size are compressed")
}

func TestIssuer_Issue(t *testing.T) {
	issuer := newIssuer(t, "signing-key")

	t.Run("mints a ticket for a confirmed booking", func(t *testing.T) {
		b := confirmedBooking()

		tk, err := issuer.Issue(b)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tk.ID())
		assert.Equal(t, b.ID(), tk.BookingID())
		assert.Equal(t, issuedAt, tk.IssuedAt())
		assert.True(t, strings.HasPrefix(tk.QRPayload(), "LT1."))

		claims, err := issuer.Verify(tk.QRPayload())
		require.NoError(t, err)
		assert.Equal(t, ticket.Claims{TicketID: tk.ID(), ResortID: "alta", Date: "2026-01-12", Slot: "PM"}, *claims)
	})

	t.Run("ticket ids are unique", func(t *testing.T) {
		b := confirmedBooking()
		seen := map[uuid.UUID]bool{}
		for range 50 {
			tk, err := issuer.Issue(b)
			require.NoError(t, err)
			require.False(t, seen[tk.ID()])
			seen[tk.ID()] = true
		}
	})

	t.Run("refuses canceled bookings", func(t *testing.T) {
		b := confirmedBooking()
		require.NoError(t, b.Cancel(issuedAt))

		_, err := issuer.Issue(b)
		assert.ErrorIs(t, err, ticket.ErrBookingNotActive)
	})

	t.Run("does not alter the booking", func(t *testing.T) {
		b := confirmedBooking()
		_, err := issuer.Issue(b)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestIssuer_Payload(t *testing.T) {
	claims := ticket.Claims{TicketID: uuid.MustParse("3f1c2b9a-8d5e-4c7f-9a1b-2c3d4e5f6a7b"), ResortID: "alta", Date: "2026-01-12", Slot: "AM"}

	t.Run("deterministic for equal inputs", func(t *testing.T) {
		a, err := newIssuer(t, "k1").Payload(claims)
		require.NoError(t, err)
		b, err := newIssuer(t, "k1").Payload(claims)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("key changes the signature only", func(t *testing.T) {
		a, err := newIssuer(t, "k1").Payload(claims)
		require.NoError(t, err)
		b, err := newIssuer(t, "k2").Payload(claims)
		require.NoError(t, err)

		pa, pb := strings.Split(a, "."), strings.Split(b, ".")
		assert.Equal(t, pa[1], pb[1])
		assert.NotEqual(t, pa[2], pb[2])
	})
}

func TestIssuer_Verify(t *testing.T) {
	issuer := newIssuer(t, "k1")
	good, err := issuer.Payload(ticket.Claims{TicketID: uuid.New(), ResortID: "alta", Date: "2026-01-12", Slot: "AM"})
	require.NoError(t, err)
	parts := strings.Split(good, ".")

	forged, err := newIssuer(t, "other").Payload(ticket.Claims{TicketID: uuid.New(), ResortID: "alta", Date: "2026-01-12", Slot: "AM"})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		payload string
		errIs   error
	}{
		{name: "wrong prefix", payload: "LT2." + parts[1] + "." + parts[2], errIs: ticket.ErrMalformedPayload},
		{name: "missing segment", payload: "LT1." + parts[1], errIs: ticket.ErrMalformedPayload},
		{name: "bad base64", payload: "LT1.***." + parts[2], errIs: ticket.ErrMalformedPayload},
		{name: "signed with another key", payload: forged, errIs: ticket.ErrSignatureMismatch},
		{name: "body swapped", payload: "LT1." + strings.Split(forged, ".")[1] + "." + parts[2], errIs: ticket.ErrSignatureMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := issuer.Verify(tc.payload)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
