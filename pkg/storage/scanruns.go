package storage

import (
	"context"

	"jobtracker/pkg/domain"
)

// ScanRunStorage records the audit trail of inbox scans. Runs are begun when
// a scan starts and finalized exactly once with Complete or Fail; history is
// append-only so failed scans stay visible.
type ScanRunStorage interface {
	// BeginScanRun inserts a new run in the running state and returns it.
	BeginScanRun(ctx context.Context) (*domain.ScanRun, error)
	// CompleteScanRun finalizes a run with its counters.
	CompleteScanRun(ctx context.Context,
		id domain.ScanRunID,
		fetched, inserted, created int) error
	// FailScanRun finalizes a run with an error message.
	FailScanRun(ctx context.Context, id domain.ScanRunID, errMsg string) error
	// RecentScanRuns returns the newest runs, most recent first.
	RecentScanRuns(ctx context.Context, limit uint) ([]domain.ScanRun, error)
}
