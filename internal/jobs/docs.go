// Package jobs provides scheduled background tasks for the beverage
// ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Background work is limited to housekeeping: order lifecycle transitions
// always run synchronously inside request handling, never from a job.
//
// # Available Jobs
//
// 1. NotificationRetentionJob - Runs hourly to delete read notification
// entries older than the configured retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pruneHandler, 30*24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
