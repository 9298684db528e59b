package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/ports"
	"grocery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const relayBatchSize = 100

// OutboxRelayJob drains the outbox and publishes pending notifications to the
// broker. Runs every second; a message that fails to publish stays pending
// and is retried on the next tick, so delivery is at-least-once.
type OutboxRelayJob struct {
	store     ports.OutboxRelayStore
	publisher ports.MessagePublisher
	relayed   *metrics.RelayMetrics
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job.
func NewOutboxRelayJob(
	store ports.OutboxRelayStore,
	publisher ports.MessagePublisher,
	relayed *metrics.RelayMetrics,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		store:     store,
		publisher: publisher,
		relayed:   relayed,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayOnce publishes one batch of pending messages. Publish failures are
// logged per message and do not abort the batch; the failed messages simply
// stay pending.
func (j *OutboxRelayJob) relayOnce(ctx context.Context) error {
	pending, err := j.store.FetchPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	sent := make([]string, 0, len(pending))
	for _, message := range pending {
		if err = j.publisher.Publish(ctx, message); err != nil {
			j.relayed.Failed.Inc()
			j.logger.WarnContext(ctx, "Failed to publish notification",
				"event_id", message.EventID, "error", err)
			continue
		}
		j.relayed.Published.Inc()
		sent = append(sent, message.EventID)
	}

	if len(sent) == 0 {
		return nil
	}
	return j.store.MarkSent(ctx, sent)
}
