package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"jobtracker/internal/scan"
	"jobtracker/pkg/logger"
	"jobtracker/pkg/metrics"
	"jobtracker/pkg/serrors"
)

// InboxScanWorker is a River worker that runs one inbox scan per job. The
// scan service owns the rate limiter; when a job lands inside the window the
// worker snoozes it until the next slot opens instead of burning a retry.
type InboxScanWorker struct {
	river.WorkerDefaults[scan.JobArgs]

	scanner scan.Scanner
}

// NewInboxScanWorker constructs an InboxScanWorker using the provided scanner.
func NewInboxScanWorker(scanner scan.Scanner) *InboxScanWorker {
	return &InboxScanWorker{scanner: scanner}
}

// Work executes a single scan job. Progress lines are forwarded to the debug
// log; the counters land in the scan run history either way.
func (w *InboxScanWorker) Work(ctx context.Context, job *river.Job[scan.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("mailbox", job.Args.Mailbox))

	metrics.ScansStarted.WithLabelValues("job").Inc()

	result, err := w.scanner.Run(ctx, func(stage, detail string) {
		logger.Debug(ctx, "scan progress", zap.String("stage", stage), zap.String("detail", detail))
	})
	if err != nil {
		var rateLimited *scan.RateLimitedError
		if errors.As(err, &rateLimited) {
			logger.Info(ctx, "scan slot busy, snoozing job",
				zap.Duration("retryAfter", rateLimited.RetryAfter))

			return river.JobSnooze(rateLimited.RetryAfter) //nolint: wrapcheck
		}
		if errors.Is(err, serrors.ErrUnauthorized) {
			// retrying won't fix a revoked mailbox token
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error running inbox scan", zap.Error(err))

		return fmt.Errorf("could not run inbox scan: %w", err)
	}

	logger.Info(ctx, "inbox scan job finished",
		zap.Int("inserted", result.Inserted),
		zap.Int("applicationsCreated", result.ApplicationsCreated))

	return nil
}
