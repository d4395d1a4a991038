package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"lift-reservation/internal/pkg/config"
	"lift-reservation/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var publishedEvents = []string{shared.EventBookingConfirmed, shared.EventBookingCanceled}

// defaultDialTimeout bounds dials whose context carries no deadline.
const defaultDialTimeout = 5 * time.Second

// ErrReconnecting is returned while another caller is re-establishing the
// broker connection.
var ErrReconnecting = errors.New("rabbitmq reconnect in progress")

var errNotifierClosed = errors.New("rabbitmq notifier closed")

// AMQPNotifier publishes booking events on the default exchange, one durable
// queue per event name.
type AMQPNotifier struct {
	url    string
	prefix string

	mu         sync.Mutex
	conn       *amqp.Connection
	ch         *amqp.Channel
	connecting bool
	closed     bool
}

func NewAMQPNotifier(cfg config.AMQPConfig) (*AMQPNotifier, func(), error) {
	n := &AMQPNotifier{url: cfg.URL, prefix: cfg.QueuePrefix}
	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()
	if err := n.reconnect(ctx); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.closed = true
		n.closeLocked()
	}
	return n, cleanup, nil
}

func QueueName(prefix, event string) string {
	if prefix == "" {
		return event
	}
	return prefix + "." + event
}

func (n *AMQPNotifier) Notify(ctx context.Context, event shared.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Name, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID.String() + ":" + event.Name,
		Timestamp:    event.OccurredAt.UTC(),
		Type:         event.Name,
		Body:         body,
	}

	ch, err := n.channel(ctx)
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx,
		"",                              // default exchange
		QueueName(n.prefix, event.Name), // routing key = queue name
		false,                           // mandatory
		false,                           // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish %s: %w", event.Name, err)
	}
	return nil
}

// channel returns the open channel, reconnecting when it is gone. Only one
// caller dials at a time; the others fail with ErrReconnecting instead of
// queueing behind it.
func (n *AMQPNotifier) channel(ctx context.Context) (*amqp.Channel, error) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil, errNotifierClosed
	}
	if n.ch != nil && !n.ch.IsClosed() {
		ch := n.ch
		n.mu.Unlock()
		return ch, nil
	}
	if n.connecting {
		n.mu.Unlock()
		return nil, ErrReconnecting
	}
	n.connecting = true
	n.mu.Unlock()

	err := n.reconnect(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.connecting = false
	if err != nil {
		return nil, err
	}
	return n.ch, nil
}

// reconnect dials outside n.mu and swaps the new connection in on success.
func (n *AMQPNotifier) reconnect(ctx context.Context) error {
	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout <= 0 {
		return fmt.Errorf("rabbitmq dial: %w", context.DeadlineExceeded)
	}

	conn, err := amqp.DialConfig(n.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}

	for _, event := range publishedEvents {
		if _, err := ch.QueueDeclare(
			QueueName(n.prefix, event),
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("rabbitmq queue declare %s: %w", event, err)
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		_ = conn.Close()
		return errNotifierClosed
	}
	n.closeLocked()
	n.conn, n.ch = conn, ch
	return nil
}

func (n *AMQPNotifier) closeLocked() {
	if n.ch != nil {
		if err := n.ch.Close(); err != nil && !n.ch.IsClosed() {
			slog.Warn("failed to close rabbitmq channel", "error", err.Error())
		}
		n.ch = nil
	}
	if n.conn != nil {
		if err := n.conn.Close(); err != nil && !n.conn.IsClosed() {
			slog.Warn("failed to close rabbitmq connection", "error", err.Error())
		}
		n.conn = nil
	}
}
