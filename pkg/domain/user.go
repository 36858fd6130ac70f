package domain

import "github.com/google/uuid"

// UserID identifies the user a resolution belongs to.
type UserID uuid.UUID

// String returns the canonical UUID text form.
func (u UserID) String() string { return uuid.UUID(u).String() }
