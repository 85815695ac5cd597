// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. PickupReminderJob - Runs every minute to report orders waiting for customer pickup
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(readyForPickupHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the standard cron expression "* * * * *" and runs
// every minute. Waiting orders are reported on every run until the customer
// picks the vehicle up.
//
// # Error Handling
//
// - The reminder job logs query failures and retries on the next tick
// - Failed job starts stop any already running jobs
package jobs
