// Package preview defines how page previews for external destinations are
// fetched.
package preview

import (
	"context"
	"time"

	"linkrouter/pkg/domain"
)

// Client fetches preview metadata for a URL.
//
// Implementations return serrors.ErrNotFound when the page is gone and an
// error wrapping *RetryAfterError together with serrors.ErrRateLimited when the
// remote host throttles us.
//
//go:generate mockgen -package mockpreview -source=interface.go -destination=mock/mockpreview.go *
type Client interface {
	Fetch(ctx context.Context, URL string) (*domain.Preview, error)
}

// RetryAfterError reports how long the remote host asked us to wait.
type RetryAfterError struct {
	After time.Duration
}

func (e *RetryAfterError) Error() string {
	return "retry after " + e.After.String()
}
