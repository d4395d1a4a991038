//go:build unit

package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"lift-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueName(t *testing.T) {
	assert.Equal(t, "lift.booking.confirmed", QueueName("lift", shared.EventBookingConfirmed))
	assert.Equal(t, "booking.canceled", QueueName("", shared.EventBookingCanceled))
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	event := shared.BookingEvent{
		Name:      shared.EventBookingConfirmed,
		BookingID: uuid.New(),
		UserID:    uuid.New(),
		ResortID:  "alta",
		Date:      "2026-01-12",
		Slot:      "AM",
	}

	require.NoError(t, NewLogNotifier(logger).Notify(context.Background(), event))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booking event", line["msg"])
	assert.Equal(t, "booking.confirmed", line["event"])
	assert.Equal(t, event.BookingID.String(), line["booking_id"])
	assert.Equal(t, "alta", line["resort_id"])
}

func TestBookingEvent_WireFormat(t *testing.T) {
	event := shared.BookingEvent{
		Name:       shared.EventBookingCanceled,
		BookingID:  uuid.MustParse("3f1c2b9a-8d5e-4c7f-9a1b-2c3d4e5f6a7b"),
		UserID:     uuid.MustParse("6a0e4a1e-0d55-4d4e-9a43-0b8c5f3d2e11"),
		ResortID:   "alta",
		Date:       "2026-01-12",
		Slot:       "PM",
		TicketID:   uuid.MustParse("0c5a2f7e-9a3b-4c61-8d2e-7f1a3b4c5d6e"),
		OccurredAt: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"event": "booking.canceled",
		"booking_id": "3f1c2b9a-8d5e-4c7f-9a1b-2c3d4e5f6a7b",
		"user_id": "6a0e4a1e-0d55-4d4e-9a43-0b8c5f3d2e11",
		"resort_id": "alta",
		"date": "2026-01-12",
		"slot": "PM",
		"ticket_id": "0c5a2f7e-9a3b-4c61-8d2e-7f1a3b4c5d6e",
		"occurred_at": "2026-01-11T09:00:00Z"
	}`, string(raw))
}

func TestAMQPNotifier_NotifyHonorsContextDeadline(t *testing.T) {
	// Accepts TCP connections but never speaks AMQP.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()

	n := &AMQPNotifier{url: "amqp://guest:guest@" + ln.Addr().String() + "/", prefix: "lift"}
	event := shared.BookingEvent{Name: shared.EventBookingConfirmed, BookingID: uuid.New()}

	t.Run("dial gives up at the deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := n.Notify(ctx, event)
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.Less(t, elapsed, time.Second)
	})

	t.Run("concurrent caller fails fast while reconnecting", func(t *testing.T) {
		slow, cancelSlow := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancelSlow()
		done := make(chan error, 1)
		go func() { done <- n.Notify(slow, event) }()

		require.Eventually(t, func() bool {
			n.mu.Lock()
			defer n.mu.Unlock()
			return n.connecting
		}, 400*time.Millisecond, 5*time.Millisecond)

		start := time.Now()
		err := n.Notify(context.Background(), event)
		assert.ErrorIs(t, err, ErrReconnecting)
		assert.Less(t, time.Since(start), 100*time.Millisecond)

		require.Error(t, <-done)
	})

	t.Run("expired context skips the dial", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		assert.ErrorIs(t, n.Notify(ctx, event), context.DeadlineExceeded)
	})
}
