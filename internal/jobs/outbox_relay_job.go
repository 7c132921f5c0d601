package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelayBatch bounds how many outbox messages one run publishes.
const DefaultRelayBatch = 100

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) error
}

// OutboxRelayJob publishes pending shipment change messages.
// Runs every second; each run relays one batch.
type OutboxRelayJob struct {
	handler outboxRelayer
	batch   int
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates a relay job. A non-positive batch falls back to
// DefaultRelayBatch.
func NewOutboxRelayJob(handler outboxRelayer, batch int, logger *slog.Logger) *OutboxRelayJob {
	if batch <= 0 {
		batch = DefaultRelayBatch
	}
	return &OutboxRelayJob{
		handler: handler,
		batch:   batch,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

// Start begins relaying every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)", "batch", j.batch)
	return nil
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewRelayOutboxCommand(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		// An empty outbox is the normal idle state
		if !errors.Is(err, commands.ErrNothingToRelay) {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	}
}
