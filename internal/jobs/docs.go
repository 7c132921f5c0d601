// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs never touch order or package state; they only move the shipment change
// outbox along.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending outbox messages to the broker
// 2. OutboxPurgeJob - Runs hourly to delete published messages older than the retention
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, purgeHandler, jobs.DefaultRelayBatch, retention, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The relay job ignores commands.ErrNothingToRelay; an idle outbox is not an error
// - A failed relay leaves its batch unpublished, so the next run retries it
// - Failed job starts will stop any already running jobs
package jobs
