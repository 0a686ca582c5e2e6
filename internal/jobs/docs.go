// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. FulfillmentJob - Periodically advances dwelled orders through the
// fulfillment pipeline (pending to processing, processing to shipped).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(fulfillmentJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The fulfillment sweep treats a lost status race as a skipped order, not
// a failure; only repository-level errors are logged.
package jobs
