package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the River queue backend. When the
// handle is transactional the insert joins the surrounding transaction.
type JobStorage interface {
	// AddJob enqueues a job with the given arguments. The boolean reports
	// whether a row was actually inserted; false means a unique constraint
	// matched an existing job and the insert was skipped.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
