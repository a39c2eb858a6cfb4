package jobs

import (
	"context"
	"log/slog"

	"parcels/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically reports the delivery backlog: how many
// parcels sit in each lifecycle stage short of completion. Purely
// observational; it never mutates state.
type BacklogReportJob struct {
	handler  queries.GetUncompletedParcelsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogReportJob creates a job that logs the uncompleted-parcel backlog
// on the given cron schedule (with seconds field).
func NewBacklogReportJob(
	handler queries.GetUncompletedParcelsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *BacklogReportJob {
	return &BacklogReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

// Start begins the backlog report job on its configured schedule.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetUncompletedParcelsQuery()

		parcels, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, prc := range parcels {
			byStatus[prc.Status]++
		}

		j.logger.InfoContext(ctx, "Delivery backlog",
			"total", len(parcels),
			"by_status", byStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
