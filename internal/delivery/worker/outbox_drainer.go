package worker

import (
	"context"
	"log/slog"
	"time"

	"ecodeli/config"
	"ecodeli/internal/delivery"
	"ecodeli/internal/usecase"

	"go.uber.org/fx"
)

const defaultDrainInterval = 5 * time.Second

// outboxDrainer periodically sweeps the outbox for events that the
// post-commit drain missed, e.g. after a crash between commit and dispatch.
type outboxDrainer struct {
	interval time.Duration
	outboxUC usecase.OutboxUsecase
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// DrainerParams holds dependencies for the outbox drainer
type DrainerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	OutboxUC usecase.OutboxUsecase
}

// NewOutboxDrainer creates the background outbox sweeper
func NewOutboxDrainer(params DrainerParams) (delivery.Delivery, error) {
	interval := defaultDrainInterval
	if params.Cfg.Outbox != nil && params.Cfg.Outbox.DrainInterval > 0 {
		interval = params.Cfg.Outbox.DrainInterval
	}

	drainer := &outboxDrainer{
		interval: interval,
		outboxUC: params.OutboxUC,
		logger:   params.Logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: drainer.shutdown,
	})

	return drainer, nil
}

// Serve sweeps the outbox until the process stops
func (d *outboxDrainer) Serve(ctx context.Context) error {
	defer close(d.done)

	d.logger.Info("Starting outbox drainer", slog.Duration("interval", d.interval))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.stop:
			return nil
		case <-ticker.C:
			processed, err := d.outboxUC.Drain(ctx)
			if err != nil {
				d.logger.Error("Outbox drain sweep failed", slog.Any("error", err))

				continue
			}
			if processed > 0 {
				d.logger.Debug("Outbox drain sweep finished", slog.Int("processed", processed))
			}
		}
	}
}

func (d *outboxDrainer) shutdown(ctx context.Context) error {
	close(d.stop)

	select {
	case <-d.done:
	case <-ctx.Done():
	}

	d.logger.Info("Outbox drainer stopped")

	return nil
}
