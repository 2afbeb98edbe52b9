// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order flow depends on.
//
// # Available Jobs
//
// 1. OTPPurgeJob - Runs every minute to delete expired phone verification codes
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeExpiredOTPsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; a missed sweep only
// delays cleanup, it never affects correctness because expired codes are also
// rejected at verification time.
package jobs
