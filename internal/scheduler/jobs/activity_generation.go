package jobs

import (
	"context"
	"time"

	"github.com/wonny/renthub/backend/internal/contracts"
	"github.com/wonny/renthub/backend/pkg/logger"
)

// ActivityGenerationJob runs the reminder engine once a day, early
// enough that the day's reminders are in place before office hours.
type ActivityGenerationJob struct {
	engine contracts.ActivityEngine
	logger *logger.Logger
}

// NewActivityGenerationJob creates a new activity generation job
func NewActivityGenerationJob(engine contracts.ActivityEngine, log *logger.Logger) *ActivityGenerationJob {
	return &ActivityGenerationJob{
		engine: engine,
		logger: log,
	}
}

// Name returns the job name
func (j *ActivityGenerationJob) Name() string {
	return "activity_generation"
}

// Schedule returns the cron schedule (daily at 06:00)
func (j *ActivityGenerationJob) Schedule() string {
	return "0 0 6 * * *"
}

// Run executes one generation pass for the current date
func (j *ActivityGenerationJob) Run(ctx context.Context) error {
	activities, err := j.engine.Generate(ctx, time.Now())
	if err != nil {
		return err
	}

	j.logger.WithField("count", len(activities)).Info("Scheduled activity generation finished")
	return nil
}
