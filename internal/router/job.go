package router

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PreviewJobArgs asks a worker to fetch the page preview of URL. Jobs are
// unique per URL so every resolution of the same page shares one fetch.
type PreviewJobArgs struct {
	URL string `json:"url" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind is the River job kind the preview worker is registered under.
func (args PreviewJobArgs) Kind() string { return "FetchPreviewJob" }

// InsertOpts keeps at most one job per URL in any live or recently completed
// state within the cache period.
func (args PreviewJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
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
