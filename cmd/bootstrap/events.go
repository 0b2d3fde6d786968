package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/events"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		fx.Annotate(
			NewOutbox,
			fx.As(new(events.Outbox)),
		),
		NewRelay,
	),
	fx.Invoke(func(*events.Relay) {}),
)

// NewPublisher falls back to logging events when no broker URL is configured.
func NewPublisher(cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	if cfg.Events.AMQPURL == "" {
		logger.Info("EVENTS_AMQP_URL not set, events are only logged")
		return events.NewLogPublisher(logger), nil
	}
	return events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
}

func NewOutbox(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, cfg config.Config) (*events.PostgresOutbox, error) {
	return events.NewPostgresOutbox(pool, q, clk, cfg.Events.MaxAttempts)
}

func NewRelay(lc fx.Lifecycle, outbox events.Outbox, publisher events.Publisher, cfg config.Config, logger *slog.Logger) (*events.Relay, error) {
	relay, err := events.NewRelay(outbox, publisher, cfg.Events.PollInterval, cfg.Events.BatchSize, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})

	return relay, nil
}
