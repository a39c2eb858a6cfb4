// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. BacklogReportJob - Periodically counts parcels that have not completed
// delivery and logs the backlog broken down by lifecycle stage, giving
// operators visibility into stuck or aging parcels.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uncompletedParcelsHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The backlog report is observational: failures are logged and the next tick
// tries again. A failed job start stops any already running jobs.
package jobs
