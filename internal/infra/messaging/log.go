package messaging

import (
	"context"
	"log/slog"

	"lift-reservation/internal/usecase/shared"
)

// LogNotifier stands in for the broker when AMQP is disabled.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event shared.BookingEvent) error {
	n.logger.InfoContext(ctx, "booking event",
		"event", event.Name,
		"booking_id", event.BookingID.String(),
		"user_id", event.UserID.String(),
		"resort_id", event.ResortID,
		"date", event.Date,
		"slot", event.Slot)
	return nil
}
