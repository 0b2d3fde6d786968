package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"court-booking/internal/infra/repository"
)

// Relay moves committed outbox jobs to the publisher on a fixed interval.
type Relay struct {
	outbox    Outbox
	publisher Publisher
	interval  time.Duration
	batchSize int32
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(outbox Outbox, publisher Publisher, interval time.Duration, batchSize int32, logger *slog.Logger) (*Relay, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("relay interval must be positive, got %s", interval)
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("relay batch size must be positive, got %d", batchSize)
	}
	return &Relay{
		outbox:    outbox,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop cancels the loop and waits for the batch in flight, bounded by ctx.
func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return r.publisher.Close()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Flush(ctx)
		}
	}
}

// Flush publishes due jobs batch by batch until a batch comes back short.
func (r *Relay) Flush(ctx context.Context) int {
	total := 0
	for ctx.Err() == nil {
		n, err := r.outbox.Process(ctx, r.batchSize, r.deliver)
		if err != nil {
			r.logger.Error("outbox relay failed", "error", err)
			return total
		}
		total += n
		if n < int(r.batchSize) {
			return total
		}
	}
	return total
}

func (r *Relay) deliver(ctx context.Context, job repository.NotificationJob) error {
	if err := r.publisher.Publish(ctx, job.Topic, job.Payload); err != nil {
		r.logger.Warn("event publish failed",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempt", job.Attempts+1,
			"error", err)
		return err
	}
	r.logger.Debug("event published", "job_id", job.ID, "topic", job.Topic)
	return nil
}
