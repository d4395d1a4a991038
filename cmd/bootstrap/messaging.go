package bootstrap

import (
	"context"
	"log/slog"

	"lift-reservation/internal/infra/messaging"
	"lift-reservation/internal/pkg/config"
	"lift-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	if !cfg.AMQP.Enabled {
		return messaging.NewLogNotifier(logger), nil
	}

	notifier, cleanup, err := messaging.NewAMQPNotifier(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return notifier, nil
}
