package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"linkrouter/internal/router"
	"linkrouter/pkg/logger"
	"linkrouter/pkg/preview"
	"linkrouter/pkg/serrors"
)

// DefaultSnooze is how long a rate limited job waits when the remote host
// did not say.
const DefaultSnooze = time.Minute

// PreviewWorker runs preview jobs through the router. Jobs nobody waits for
// are cancelled and throttled ones are snoozed for as long as the remote host
// asked.
type PreviewWorker struct {
	river.WorkerDefaults[router.PreviewJobArgs]

	router router.Router
}

// NewPreviewWorker returns a worker delegating to r.
func NewPreviewWorker(r router.Router) *PreviewWorker {
	return &PreviewWorker{router: r}
}

// Timeout bounds a single fetch, including the time spent waiting for the
// outgoing rate limiter.
func (w *PreviewWorker) Timeout(*river.Job[router.PreviewJobArgs]) time.Duration {
	return 2 * time.Minute
}

func (w *PreviewWorker) Work(ctx context.Context, job *river.Job[router.PreviewJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("URL", job.Args.URL))

	err := w.router.FetchPreview(ctx, job.Args.URL, router.FetchOptions{
		FinalAttempt: job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts,
	})
	if err == nil {
		logger.Info(ctx, "preview fetched")

		return nil
	}

	if errors.Is(err, serrors.ErrConflict) {
		logger.Debug(ctx, "nobody waits for this preview anymore")

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error fetching preview", zap.Error(err))

	if errors.Is(err, serrors.ErrRateLimited) {
		wait := DefaultSnooze
		var ra *preview.RetryAfterError
		if errors.As(err, &ra) && ra.After > 0 {
			wait = ra.After
		}

		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	return fmt.Errorf("could not fetch preview: %w", err)
}
