package events

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/infra/uow"
	"court-booking/internal/pkg/clock"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	retryBaseDelay = 5 * time.Second
	retryMaxDelay  = 10 * time.Minute
)

// Outbox hands due jobs to a handler and records the outcome of each.
type Outbox interface {
	Process(ctx context.Context, limit int32, handle func(ctx context.Context, job repository.NotificationJob) error) (int, error)
}

type PostgresOutbox struct {
	pool        *pgxpool.Pool
	repo        *repository.NotificationRepository
	clock       clock.Clock
	maxAttempts int32
}

func NewPostgresOutbox(pool *pgxpool.Pool, queries *sqlc.Queries, clk clock.Clock, maxAttempts int32) (*PostgresOutbox, error) {
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("outbox max attempts must be positive, got %d", maxAttempts)
	}
	return &PostgresOutbox{
		pool:        pool,
		repo:        repository.NewNotificationRepository(queries, pool),
		clock:       clk,
		maxAttempts: maxAttempts,
	}, nil
}

// Process claims up to limit due jobs and keeps them locked while handle runs,
// so a second relay instance never publishes the same job concurrently.
func (o *PostgresOutbox) Process(ctx context.Context, limit int32, handle func(ctx context.Context, job repository.NotificationJob) error) (int, error) {
	return uow.RunInTx(ctx, o.pool, func(tx sqlc.DBTX) (int, error) {
		jobs, err := o.repo.ClaimDue(ctx, tx, limit)
		if err != nil {
			return 0, err
		}

		for _, job := range jobs {
			outcome := nextOutcome(job, handle(ctx, job), o.clock.Now(), o.maxAttempts)
			if err := o.repo.UpdateJobStatus(ctx, tx, job.ID, outcome.status, outcome.lastError, outcome.runAt); err != nil {
				return 0, err
			}
		}
		return len(jobs), nil
	})
}

type jobOutcome struct {
	status    string
	lastError *string
	runAt     time.Time
}

// nextOutcome marks a delivered job sent, gives up after maxAttempts, and
// otherwise requeues it with exponential backoff.
func nextOutcome(job repository.NotificationJob, deliveryErr error, now time.Time, maxAttempts int32) jobOutcome {
	if deliveryErr == nil {
		return jobOutcome{status: repository.JobStatusSent, runAt: job.RunAt}
	}

	msg := deliveryErr.Error()
	attempts := job.Attempts + 1
	if attempts >= maxAttempts {
		return jobOutcome{status: repository.JobStatusFailed, lastError: &msg, runAt: job.RunAt}
	}
	return jobOutcome{
		status:    repository.JobStatusQueued,
		lastError: &msg,
		runAt:     now.Add(retryDelay(attempts)),
	}
}

func retryDelay(attempts int32) time.Duration {
	delay := retryBaseDelay
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return delay
}
