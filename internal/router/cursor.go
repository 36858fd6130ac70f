package router

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkrouter/pkg/domain"
	"linkrouter/pkg/storage"
)

const cursorSeparator = "_"

// EncodeCursor renders c as "<RFC 3339 created_at>_<id>".
func EncodeCursor(c storage.Cursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + uuid.UUID(c.ID).String()
}

// DecodeCursor parses a cursor made by EncodeCursor.
func DecodeCursor(s string) (storage.Cursor, error) {
	ts, id, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return storage.Cursor{}, fmt.Errorf("missing id in cursor %q", s)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.Cursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return storage.Cursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return storage.Cursor{CreatedAt: createdAt, ID: domain.ResolutionID(parsed)}, nil
}
