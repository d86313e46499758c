package mlm

import (
	"casino/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs asks the worker to distribute payouts for one confirmed deposit.
type JobArgs struct {
	DepositID domain.DepositID `json:"depositId" river:"unique"`

	maxAttempts int
}

// NewJobArgs builds the job arguments for depositID, retried at most
// maxAttempts times.
func NewJobArgs(depositID domain.DepositID, maxAttempts int) JobArgs {
	return JobArgs{DepositID: depositID, maxAttempts: maxAttempts}
}

func (args JobArgs) Kind() string { return "DistributePayoutsJob" }

// InsertOpts keeps a single job per deposit for its whole lifetime, so
// confirming and a manual trigger never race each other in the queue.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
