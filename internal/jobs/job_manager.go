package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fulfillmentJob *FulfillmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(fulfillmentJob *FulfillmentJob) *JobManager {
	return &JobManager{
		fulfillmentJob: fulfillmentJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fulfillmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fulfillmentJob.Stop()
}
