package router

import (
	"context"

	"linkrouter/pkg/domain"
)

// ResolveOptions carries what the caller knows about where a link was opened.
type ResolveOptions struct {
	// FromNotification is set when the link was opened from the notifications screen.
	FromNotification bool
}

// FetchOptions carries what the caller knows about the fetch being made.
type FetchOptions struct {
	// FinalAttempt is set when no retry follows a failure. Every pending
	// resolution of the URL is then failed regardless of its own attempt count.
	FinalAttempt bool
}

//go:generate mockgen -package mockrouter -source=interface.go -destination=mock/mockrouter.go *
type Router interface {
	Resolve(ctx context.Context, userID domain.UserID, raw string, opts ResolveOptions) (*domain.Resolution, error)
	FetchPreview(ctx context.Context, URL string, opts FetchOptions) error
	UserResolutions(ctx context.Context,
		userID domain.UserID,
		kind domain.DestinationKind,
		cursor string,
		limit uint) ([]domain.Resolution, string, error)
	Result(ctx context.Context, userID domain.UserID, ID domain.ResolutionID) (*domain.Resolution, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.ResolutionID) error
}
