package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible only once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted; false means
	// River skipped it as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
