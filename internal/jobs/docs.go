// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every second to drain the notification
// outbox and hand unsent rows to the notifier.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notificationRepo, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed delivery leaves the outbox row unsent; the next tick retries it.
// MarkSent failures are logged and may produce a duplicate notification,
// delivery is at-least-once by construction.
package jobs
