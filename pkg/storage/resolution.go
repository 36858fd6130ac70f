package storage

import (
	"context"
	"time"

	"linkrouter/pkg/domain"
)

// ResolutionUpdates is the set of fields applied when a preview fetch finishes.
type ResolutionUpdates struct {
	// Status is the new status.
	Status domain.ResolutionStatus
	// Preview replaces the stored preview when non-nil.
	Preview *domain.Preview
	// LastError sets the last error when non-nil. An empty string clears it.
	LastError *string
	// MaxAttempts guards the FAILED status: when positive, rows only move to
	// FAILED once their incremented attempt count reaches it and stay PENDING
	// otherwise.
	MaxAttempts int
}

// Cursor is the position of the last row of a page in (created_at, id) order.
// The zero value starts from the newest row.
type Cursor struct {
	CreatedAt time.Time
	ID        domain.ResolutionID
}

// IsZero reports whether c points at the first page.
func (c Cursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

// UserResolutions is one page of a user's resolutions.
type UserResolutions struct {
	Resolutions []domain.Resolution
	// NextCursor is where the next page starts, nil on the last page.
	NextCursor *Cursor
}

// ResolutionStorage persists resolutions. Soft-deleted rows are invisible to
// every read and update except LastSettledResolutionByURL.
type ResolutionStorage interface {
	// StoreResolutions inserts resolutions and returns them with generated fields filled.
	StoreResolutions(ctx context.Context, resolutions ...domain.Resolution) ([]domain.Resolution, error)
	// UpdatePendingResolutionsByURL records a fetch outcome on every pending
	// resolution whose destination URL is URL, incrementing attempts.
	UpdatePendingResolutionsByURL(ctx context.Context, URL string, updates ResolutionUpdates) error
	// PendingResolutionCountByURL counts pending resolutions for URL across all users.
	PendingResolutionCountByURL(ctx context.Context, URL string) (int64, error)
	// UpdateResolutionByID applies updates to one resolution without counting an
	// attempt and returns it, or nil when missing.
	UpdateResolutionByID(ctx context.Context,
		ID domain.ResolutionID,
		updates ResolutionUpdates) (*domain.Resolution, error)
	// DeleteResolution soft-deletes a user's resolution and returns it, or nil when missing.
	DeleteResolution(ctx context.Context, userID domain.UserID, ID domain.ResolutionID) (*domain.Resolution, error)
	// UserResolutions pages through a user's resolutions, newest first, strictly
	// after cursor in (created_at, id) order when cursor is set. A non-empty kind
	// filters by destination kind.
	UserResolutions(ctx context.Context,
		userID domain.UserID,
		kind domain.DestinationKind,
		cursor Cursor,
		limit uint) (UserResolutions, error)
	// ResolutionByID returns a user's resolution, or nil when missing.
	ResolutionByID(ctx context.Context, userID domain.UserID, ID domain.ResolutionID) (*domain.Resolution, error)
	// LastSettledResolutionByURL returns the newest completed or failed
	// resolution for URL across all users, or nil. Soft-deleted rows count:
	// the fetch outcome they carry is still valid for the URL.
	LastSettledResolutionByURL(ctx context.Context, URL string) (*domain.Resolution, error)
}
