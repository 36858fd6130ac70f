package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"linkrouter/pkg/domain"
	"linkrouter/pkg/storage"
)

const (
	resolutionsTable = "resolutions"
)

func (p *PgSQL) StoreResolutions(ctx context.Context, resolutions ...domain.Resolution) ([]domain.Resolution, error) {
	if len(resolutions) == 0 {
		return nil, nil
	}

	rows, err := domainResolutionsToPg(resolutions)
	if err != nil {
		return nil, err
	}

	var result []PgResolution
	if err := p.Builder.Insert(resolutionsTable).
		Rows(rows).
		Returning(&PgResolution{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store resolutions into pg: %w", err)
	}

	return pgResolutionsToDomain(result)
}

// updateRecord builds the SET clause shared by both update paths. Only fetch
// outcomes count as attempts.
func updateRecord(updates storage.ResolutionUpdates, countAttempt bool) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"status":     string(updates.Status),
	}
	if countAttempt {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	if updates.Status == domain.ResolutionStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.Case().
			When(goqu.L("attempts + 1 >= ?", updates.MaxAttempts), string(domain.ResolutionStatusFailed)).
			Else(goqu.I("status"))
	}
	if updates.Preview != nil {
		b, err := json.Marshal(updates.Preview)
		if err != nil {
			return nil, fmt.Errorf("could not marshal preview: %w", err)
		}

		rec["preview"] = string(b)
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingResolutionsByURL updates every pending resolution for URL.
// Attempts is incremented and updated_at is set.
func (p *PgSQL) UpdatePendingResolutionsByURL(ctx context.Context, URL string, updates storage.ResolutionUpdates) error {
	rec, err := updateRecord(updates, true)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(resolutionsTable).
		Set(rec).Where(
		goqu.I("url").Eq(URL),
		goqu.I("status").Eq(string(domain.ResolutionStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending resolutions by url in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) PendingResolutionCountByURL(ctx context.Context, URL string) (int64, error) {
	count, err := p.Builder.From(resolutionsTable).
		Where(
			goqu.I("url").Eq(URL),
			goqu.I("status").Eq(string(domain.ResolutionStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending resolutions in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) UpdateResolutionByID(ctx context.Context,
	id domain.ResolutionID,
	updates storage.ResolutionUpdates) (*domain.Resolution, error) {
	rec, err := updateRecord(updates, false)
	if err != nil {
		return nil, err
	}

	var row PgResolution
	found, err := p.Builder.Update(resolutionsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgResolution{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update resolution in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteResolution soft-deletes by setting deleted_at and returns the deleted row.
func (p *PgSQL) DeleteResolution(ctx context.Context,
	userID domain.UserID,
	id domain.ResolutionID) (*domain.Resolution, error) {
	var row PgResolution
	found, err := p.Builder.Update(resolutionsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgResolution{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete resolution in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserResolutions returns a page ordered by created_at DESC, id DESC.
func (p *PgSQL) UserResolutions(ctx context.Context,
	userID domain.UserID,
	kind domain.DestinationKind,
	cursor storage.Cursor,
	limit uint) (storage.UserResolutions, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if kind != "" {
		w = append(w, goqu.I("kind").Eq(string(kind)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	// one extra row tells whether there is a next page
	ds := p.Builder.From(resolutionsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgResolution
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserResolutions{}, fmt.Errorf("could not fetch user resolutions from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: domain.ResolutionID(last.ID)}
		}
	}

	out, err := pgResolutionsToDomain(rows)
	if err != nil {
		return storage.UserResolutions{}, err
	}

	return storage.UserResolutions{
		Resolutions: out,
		NextCursor:  nextCursor,
	}, nil
}

func (p *PgSQL) ResolutionByID(ctx context.Context,
	userID domain.UserID,
	id domain.ResolutionID) (*domain.Resolution, error) {
	var row PgResolution
	found, err := p.Builder.From(resolutionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch resolution by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastSettledResolutionByURL includes soft-deleted rows.
func (p *PgSQL) LastSettledResolutionByURL(ctx context.Context, URL string) (*domain.Resolution, error) {
	var row PgResolution
	found, err := p.Builder.From(resolutionsTable).
		Where(
			goqu.I("url").Eq(URL),
			goqu.I("status").In(
				string(domain.ResolutionStatusCompleted),
				string(domain.ResolutionStatusFailed),
			),
		).
		Order(goqu.I("updated_at").Desc().NullsLast(), goqu.I("created_at").Desc()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last settled resolution: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
