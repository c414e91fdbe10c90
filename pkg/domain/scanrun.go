package domain

import "time"

// ScanRunID uniquely identifies a recorded scan run.
type ScanRunID int64

// ScanRunStatus is the lifecycle state of a scan run record.
type ScanRunStatus string

const (
	// ScanRunStatusRunning marks a scan that is still in progress.
	ScanRunStatusRunning ScanRunStatus = "running"
	// ScanRunStatusCompleted marks a scan that finished successfully.
	ScanRunStatusCompleted ScanRunStatus = "completed"
	// ScanRunStatusFailed marks a scan that ended with an error.
	ScanRunStatusFailed ScanRunStatus = "failed"
)

// ScanRun is the audit record of one inbox scan. Rows are append-only:
// a run is created when the scan starts and finalized exactly once.
type ScanRun struct {
	ID ScanRunID `json:"id"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Status ScanRunStatus `json:"status"`

	// EmailsFetched is how many messages the mailbox returned.
	EmailsFetched *int `json:"emails_fetched,omitempty"`
	// EmailsInserted is how many new email references were stored.
	EmailsInserted *int `json:"emails_inserted,omitempty"`
	// AppsCreated is how many applications were auto-created.
	AppsCreated *int `json:"apps_created,omitempty"`

	// Error is the failure message for failed runs.
	Error string `json:"error,omitempty"`
}
