package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager starts and stops the outbox jobs together.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	outboxPurgeJob *OutboxPurgeJob
}

// NewJobManager builds both jobs. Non-positive relayBatch and retention fall
// back to DefaultRelayBatch and DefaultOutboxRetention.
func NewJobManager(
	relayHandler outboxRelayer,
	purgeHandler outboxPurger,
	relayBatch int,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayHandler, relayBatch, logger),
		outboxPurgeJob: NewOutboxPurgeJob(purgeHandler, retention, logger),
	}
}

// StartAll starts the relay, then the purge. If the purge cannot be scheduled
// the relay is stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.outboxPurgeJob.Start(); err != nil {
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start outbox purge job: %w", err)
	}

	return nil
}

// StopAll waits for running jobs to return.
func (jm *JobManager) StopAll() {
	jm.outboxPurgeJob.Stop()
	jm.outboxRelayJob.Stop()
}
