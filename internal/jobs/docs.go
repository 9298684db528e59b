// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish committed notifications
// from the outbox table to the message broker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayStore, publisher, relayMetrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The relay treats publish failures as transient: the message stays pending
// and is retried on the next tick. Only messages confirmed by the broker are
// marked sent, which makes delivery at-least-once rather than exactly-once.
package jobs
