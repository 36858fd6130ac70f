// Package router records where links lead. It classifies the input, stores a
// resolution for the user and schedules page previews for destinations that
// open outside the app.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"linkrouter/internal/config"
	"linkrouter/internal/linkparser"
	"linkrouter/pkg/domain"
	"linkrouter/pkg/logger"
	"linkrouter/pkg/preview"
	"linkrouter/pkg/serrors"
	"linkrouter/pkg/storage"
)

const (
	instrumentationName = "linkrouter/internal/router"

	// DefaultPageSize is used when a listing asks for no limit.
	DefaultPageSize = 20
	// MaxPageSize caps a listing page.
	MaxPageSize = 100
)

// Options configure preview scheduling and instrumentation.
type Options struct {
	// MaxAttempts bounds preview fetches per URL, both for the River job and
	// for the resolutions waiting on it.
	MaxAttempts int
	// PreviewCacheTTL is the window in which a fetched preview is reused
	// instead of scheduling another fetch for the same URL.
	PreviewCacheTTL time.Duration

	// MeterProvider and TracerProvider default to no-ops when nil.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.Router.MaxAttempts,
		PreviewCacheTTL: cfg.Router.PreviewCacheTTL,
	}
}

type router struct {
	options Options
	storage storage.Storage
	preview preview.Client

	tracer          trace.Tracer
	classifications metric.Int64Counter
	previews        metric.Int64Counter
}

// New returns a Router backed by storage that fetches previews with client.
func New(storage storage.Storage, client preview.Client, options Options) (Router, error) {
	mp := options.MeterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	tp := options.TracerProvider
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	classifications, err := meter.Int64Counter("linkrouter.classifications",
		metric.WithDescription("Classified inputs by destination kind"))
	if err != nil {
		return nil, fmt.Errorf("could not create classification counter: %w", err)
	}
	previews, err := meter.Int64Counter("linkrouter.preview.fetches",
		metric.WithDescription("Preview fetches by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create preview counter: %w", err)
	}

	return &router{
		options:         options,
		storage:         storage,
		preview:         client,
		tracer:          tp.Tracer(instrumentationName),
		classifications: classifications,
		previews:        previews,
	}, nil
}

// previewable reports whether d points at a web page a worker can fetch.
func previewable(d domain.Destination) bool {
	if !d.Kind.External() {
		return false
	}
	u, ok := linkparser.ParseURI(d.URL)
	if !ok {
		return false
	}
	scheme := strings.ToLower(u.Scheme)

	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// Resolve classifies raw and stores the outcome for userID. In-app
// destinations are completed at once. External ones stay pending until their
// preview is fetched, unless a fetch for the same URL settled recently, in
// which case its outcome is copied.
func (r *router) Resolve(ctx context.Context,
	userID domain.UserID,
	raw string,
	opts ResolveOptions) (*domain.Resolution, error) {
	if raw == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "empty input")
	}

	ctx, span := r.tracer.Start(ctx, "router.Resolve")
	defer span.End()

	dest := linkparser.Classify(raw)
	span.SetAttributes(attribute.String("destination.kind", string(dest.Kind)))
	r.classifications.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(dest.Kind))))

	res := domain.Resolution{
		UserID:           userID,
		Input:            raw,
		Destination:      dest,
		FromNotification: opts.FromNotification,
		Status:           domain.ResolutionStatusCompleted,
	}

	if !previewable(dest) {
		stored, err := r.storage.StoreResolutions(ctx, res)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())

			return nil, fmt.Errorf("could not store resolution: %w", err)
		}

		return &stored[0], nil
	}

	res.Status = domain.ResolutionStatusPending
	key := preview.CacheKey(dest.URL)
	var out *domain.Resolution
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreResolutions(ctx, res)
		if err != nil {
			return fmt.Errorf("could not store resolution: %w", err)
		}
		out = &stored[0]

		jobAdded, err := tx.AddJob(ctx, PreviewJobArgs{
			URL:             key,
			maxAttempts:     r.options.MaxAttempts,
			uniqueJobPeriod: r.options.PreviewCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if jobAdded {
			return nil
		}

		// a job for this URL is queued or already ran. A queued one still has
		// other rows waiting on it and will settle ours with them.
		pending, err := tx.PendingResolutionCountByURL(ctx, key)
		if err != nil {
			return fmt.Errorf("could not count pending resolutions: %w", err)
		}
		if pending > 1 {
			return nil
		}

		last, err := tx.LastSettledResolutionByURL(ctx, key)
		if err != nil {
			return fmt.Errorf("could not get last settled resolution: %w", err)
		}
		if last == nil {
			return nil
		}

		lastError := last.LastError
		updates := storage.ResolutionUpdates{
			Status:    last.Status,
			LastError: &lastError,
		}
		if last.Status == domain.ResolutionStatusCompleted {
			updates.Preview = &last.Preview
		}
		updated, err := tx.UpdateResolutionByID(ctx, out.ID, updates)
		if err != nil {
			return fmt.Errorf("could not update resolution: %w", err)
		}
		if updated != nil {
			out = updated
		}

		return nil
	}); err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("could not resolve input: %w", err)
	}

	return out, nil
}

// FetchPreview fetches the preview of URL and records the outcome on every
// pending resolution of it. It returns serrors.ErrConflict when nothing waits
// for the URL anymore. On the final attempt a failed fetch fails every pending
// row, including rows that joined after earlier attempts.
func (r *router) FetchPreview(ctx context.Context, URL string, opts FetchOptions) error {
	ctx, span := r.tracer.Start(ctx, "router.FetchPreview", trace.WithAttributes(attribute.String("url", URL)))
	defer span.End()

	pending, err := r.storage.PendingResolutionCountByURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("could not count pending resolutions: %w", err)
	}
	if pending == 0 {
		return serrors.With(serrors.ErrConflict, "no pending resolutions for URL")
	}

	p, fetchErr := r.preview.Fetch(ctx, URL)
	if fetchErr == nil {
		r.previews.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
		empty := ""
		if err := r.storage.UpdatePendingResolutionsByURL(ctx, URL, storage.ResolutionUpdates{
			Status:    domain.ResolutionStatusCompleted,
			Preview:   p,
			LastError: &empty,
		}); err != nil {
			return fmt.Errorf("could not complete resolutions: %w", err)
		}

		return nil
	}

	span.SetStatus(codes.Error, fetchErr.Error())
	msg := fetchErr.Error()

	switch {
	case errors.Is(fetchErr, serrors.ErrRateLimited):
		r.previews.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "rate_limited")))

		return fmt.Errorf("could not fetch preview: %w", fetchErr)
	case errors.Is(fetchErr, serrors.ErrNotFound), errors.Is(fetchErr, serrors.ErrForbidden):
		r.previews.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "not_found")))
		logger.Info(ctx, "page cannot be fetched, failing pending resolutions",
			zap.String("URL", URL), zap.Error(fetchErr))
		if err := r.storage.UpdatePendingResolutionsByURL(ctx, URL, storage.ResolutionUpdates{
			Status:    domain.ResolutionStatusFailed,
			LastError: &msg,
		}); err != nil {
			return fmt.Errorf("could not fail resolutions: %w", err)
		}

		return nil
	default:
		r.previews.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		updates := storage.ResolutionUpdates{
			Status:      domain.ResolutionStatusFailed,
			LastError:   &msg,
			MaxAttempts: r.options.MaxAttempts,
		}
		if opts.FinalAttempt {
			updates.MaxAttempts = 0
		}
		if err := r.storage.UpdatePendingResolutionsByURL(ctx, URL, updates); err != nil {
			return fmt.Errorf("could not record preview failure: %w", err)
		}

		return fmt.Errorf("could not fetch preview: %w", fetchErr)
	}
}

// UserResolutions pages through the user's resolutions, optionally filtered
// by destination kind. The cursor is opaque and taken from a previous page.
func (r *router) UserResolutions(ctx context.Context,
	userID domain.UserID,
	kind domain.DestinationKind,
	cursor string,
	limit uint) ([]domain.Resolution, string, error) {
	if kind != "" && !kind.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown destination kind %q", kind)
	}

	var after storage.Cursor
	if cursor != "" {
		c, err := DecodeCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		after = c
	}

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := r.storage.UserResolutions(ctx, userID, kind, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user resolutions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = EncodeCursor(*page.NextCursor)
	}

	return page.Resolutions, next, nil
}

// Result returns one of the user's resolutions.
func (r *router) Result(ctx context.Context,
	userID domain.UserID,
	id domain.ResolutionID) (*domain.Resolution, error) {
	res, err := r.storage.ResolutionByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get resolution: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "resolution not found")
	}

	return res, nil
}

// Delete soft-deletes one of the user's resolutions. A queued preview job is
// left alone: other users may wait on the same URL, and the worker drops jobs
// nobody waits for.
func (r *router) Delete(ctx context.Context, userID domain.UserID, id domain.ResolutionID) error {
	res, err := r.storage.DeleteResolution(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete resolution: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "resolution not found")
	}

	return nil
}
