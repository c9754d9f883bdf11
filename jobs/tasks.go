package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskPaymentsStaleScan is the task type for the stale pending payment scan.
	TaskPaymentsStaleScan = "payments:stale_scan"
)

// StaleScanPayload configures a stale pending payment scan.
type StaleScanPayload struct {
	// OlderThanHours is the age past which a pending payment counts as stale.
	OlderThanHours int `json:"older_than_hours"`
	// Limit caps how many stale payments a single run reports.
	Limit int `json:"limit"`
}

// NewStaleScanTask constructs an Asynq task.
func NewStaleScanTask(payload StaleScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentsStaleScan, data), nil
}
