package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionID uniquely identifies a stored resolution.
type ResolutionID uuid.UUID

// ResolutionStatus is the lifecycle state of a resolution.
type ResolutionStatus string

const (
	// ResolutionStatusPending means the destination is known but its page preview is still being fetched.
	ResolutionStatusPending ResolutionStatus = "PENDING"
	// ResolutionStatusCompleted means the resolution is final.
	ResolutionStatusCompleted ResolutionStatus = "COMPLETED"
	// ResolutionStatusFailed means the preview could not be fetched within the allowed attempts.
	ResolutionStatusFailed ResolutionStatus = "FAILED"
)

// Preview is the metadata scraped from an external page.
type Preview struct {
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
	Image       string `json:"image,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// IsZero reports whether no metadata was collected.
func (p Preview) IsZero() bool { return p == Preview{} }

// Resolution records one request to open a URL or shorthand reference,
// together with where it led.
type Resolution struct {
	ID     ResolutionID `json:"id"`
	UserID UserID       `json:"userId"`

	// Input is the raw string as received.
	Input string `json:"input"`
	// Destination is the classification of Input.
	Destination Destination `json:"destination"`
	// FromNotification marks resolutions started from the notifications screen;
	// clients return to it and refresh the notification list afterwards.
	FromNotification bool `json:"fromNotification"`

	Status  ResolutionStatus `json:"status"`
	Preview Preview          `json:"preview"`

	// Attempts counts preview fetch attempts.
	Attempts  uint   `json:"attempts"`
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
