package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRetention is how long published messages are kept.
const DefaultOutboxRetention = 7 * 24 * time.Hour

type outboxPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeOutboxCommand) (int64, error)
}

// OutboxPurgeJob deletes published outbox messages older than the retention.
// Runs at the top of every hour.
type OutboxPurgeJob struct {
	handler   outboxPurger
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxPurgeJob(handler outboxPurger, retention time.Duration, logger *slog.Logger) *OutboxPurgeJob {
	if retention <= 0 {
		retention = DefaultOutboxRetention
	}
	return &OutboxPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_purge_job"),
	}
}

func (j *OutboxPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox purge job started (running hourly)", "retention", j.retention)
	return nil
}

func (j *OutboxPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox purge job stopped")
}

// RunOnce purges immediately, outside the schedule.
func (j *OutboxPurgeJob) RunOnce() {
	j.run()
}

func (j *OutboxPurgeJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewPurgeOutboxCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox purge job misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox purge job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Outbox purged", "removed", removed)
	}
}
