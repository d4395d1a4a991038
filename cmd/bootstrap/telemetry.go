package bootstrap

import (
	"context"

	"lift-reservation/internal/pkg/config"
	"lift-reservation/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetry,
	),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config) (*telemetry.Provider, error) {
	tp, err := telemetry.NewProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		// flushes batched spans
		OnStop: tp.Shutdown,
	})

	return tp, nil
}
