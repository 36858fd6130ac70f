package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"linkrouter/pkg/domain"
	"linkrouter/pkg/preview"
)

// PgResolution is the row layout of the resolutions table. Kind and URL
// duplicate the destination document so they can be filtered on.
type PgResolution struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Input            string          `db:"input"`
	Kind             string          `db:"kind"`
	URL              sql.NullString  `db:"url"`
	Destination      json.RawMessage `db:"destination"`
	FromNotification bool            `db:"from_notification"`

	Status  string          `db:"status"`
	Preview json.RawMessage `db:"preview"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgResolution) ToDomain() (*domain.Resolution, error) {
	var dest domain.Destination
	if err := json.Unmarshal(p.Destination, &dest); err != nil {
		return nil, fmt.Errorf("could not unmarshal destination: %w", err)
	}

	var preview domain.Preview
	if len(p.Preview) > 0 {
		if err := json.Unmarshal(p.Preview, &preview); err != nil {
			return nil, fmt.Errorf("could not unmarshal preview: %w", err)
		}
	}

	return &domain.Resolution{
		ID:               domain.ResolutionID(p.ID),
		UserID:           domain.UserID(p.UserID),
		Input:            p.Input,
		Destination:      dest,
		FromNotification: p.FromNotification,
		Status:           domain.ResolutionStatus(p.Status),
		Preview:          preview,
		Attempts:         p.Attempts,
		LastError:        p.LastError.String,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}, nil
}

func (p *PgResolution) FromDomain(res domain.Resolution) error {
	dest, err := json.Marshal(res.Destination)
	if err != nil {
		return fmt.Errorf("could not marshal destination: %w", err)
	}
	preview, err := json.Marshal(res.Preview)
	if err != nil {
		return fmt.Errorf("could not marshal preview: %w", err)
	}

	*p = PgResolution{
		ID:               uuid.UUID(res.ID),
		UserID:           uuid.UUID(res.UserID),
		Input:            res.Input,
		Kind:             string(res.Destination.Kind),
		URL:              resolutionURL(res.Destination),
		Destination:      dest,
		FromNotification: res.FromNotification,
		Status:           string(res.Status),
		Preview:          preview,
		Attempts:         res.Attempts,
		LastError: sql.NullString{
			String: res.LastError,
			Valid:  res.LastError != "",
		},
		CreatedAt: res.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  res.UpdatedAt,
			Valid: !res.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  res.DeletedAt,
			Valid: !res.DeletedAt.IsZero(),
		},
	}

	return nil
}

// resolutionURL is the preview cache key of a destination. In-app screens have none.
func resolutionURL(d domain.Destination) sql.NullString {
	if !d.Kind.External() || d.URL == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: preview.CacheKey(d.URL), Valid: true}
}

func domainResolutionsToPg(resolutions []domain.Resolution) ([]PgResolution, error) {
	out := make([]PgResolution, len(resolutions))
	for i := range out {
		if err := out[i].FromDomain(resolutions[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgResolutionsToDomain(rows []PgResolution) ([]domain.Resolution, error) {
	out := make([]domain.Resolution, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
