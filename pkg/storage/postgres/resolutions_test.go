package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"linkrouter/pkg/domain"
	"linkrouter/pkg/storage"
)

func external(userID domain.UserID, URL string, status domain.ResolutionStatus) domain.Resolution {
	return domain.Resolution{
		UserID:      userID,
		Input:       URL,
		Destination: domain.Destination{Kind: domain.DestinationBrowser, URL: URL},
		Status:      status,
	}
}

func TestPgSQL_StoreResolutions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("store in-app resolution", func(t *testing.T) {
		t.Parallel()

		r := domain.Resolution{
			UserID:           userID,
			Input:            "https://www.wykop.pl/wpis/123/#comment-456",
			Destination:      domain.Destination{Kind: domain.DestinationEntry, EntryID: 123, CommentID: 456},
			FromNotification: true,
			Status:           domain.ResolutionStatusCompleted,
		}

		res, err := pgSQL.StoreResolutions(ctx, r)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
		require.Equal(t, r.Destination, res[0].Destination)
		require.True(t, res[0].FromNotification)
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple resolutions", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreResolutions(ctx,
			external(userID, "https://example.com/a", domain.ResolutionStatusPending),
			external(userID, "https://example.com/b", domain.ResolutionStatusPending),
		)
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.Zero(t, res[0].Attempts)
	})

	t.Run("store nothing", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreResolutions(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingResolutionsByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	urlA := "https://example.com/a"
	urlB := "https://example.com/b"

	ins, err := pgSQL.StoreResolutions(ctx,
		external(userID, urlA, domain.ResolutionStatusPending),
		external(userID, urlA, domain.ResolutionStatusPending),
		external(userID, urlA, domain.ResolutionStatusCompleted),
		external(userID, urlB, domain.ResolutionStatusPending),
	)
	require.NoError(t, err)
	require.Len(t, ins, 4)

	count, err := pgSQL.PendingResolutionCountByURL(ctx, urlA)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	empty := ""
	preview := domain.Preview{URL: urlA, Title: "A"}
	require.NoError(t, pgSQL.UpdatePendingResolutionsByURL(ctx, urlA, storage.ResolutionUpdates{
		Status:    domain.ResolutionStatusCompleted,
		Preview:   &preview,
		LastError: &empty,
	}))

	page, err := pgSQL.UserResolutions(ctx, userID, "", storage.Cursor{}, 50)
	require.NoError(t, err)

	byID := map[domain.ResolutionID]domain.Resolution{}
	for _, r := range page.Resolutions {
		byID[r.ID] = r
	}

	for i := range 2 {
		r := byID[ins[i].ID]
		require.Equal(t, domain.ResolutionStatusCompleted, r.Status)
		require.Equal(t, preview, r.Preview)
		require.EqualValues(t, 1, r.Attempts)
		require.False(t, r.UpdatedAt.IsZero())
		require.Empty(t, r.LastError)
	}
	require.EqualValues(t, 0, byID[ins[2].ID].Attempts)
	require.Equal(t, domain.ResolutionStatusPending, byID[ins[3].ID].Status)

	count, err = pgSQL.PendingResolutionCountByURL(ctx, urlA)
	require.NoError(t, err)
	require.Zero(t, count)

	last, err := pgSQL.LastSettledResolutionByURL(ctx, urlA)
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, preview, last.Preview)

	last, err = pgSQL.LastSettledResolutionByURL(ctx, urlB)
	require.NoError(t, err)
	require.Nil(t, last)
}

func TestPgSQL_LastSettledResolutionByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	URL := "https://example.com/settled"
	ins, err := pgSQL.StoreResolutions(ctx, external(userID, URL, domain.ResolutionStatusPending))
	require.NoError(t, err)

	preview := domain.Preview{URL: URL, Title: "kept"}
	require.NoError(t, pgSQL.UpdatePendingResolutionsByURL(ctx, URL, storage.ResolutionUpdates{
		Status:  domain.ResolutionStatusCompleted,
		Preview: &preview,
	}))

	// deleting the only completed row keeps its preview reusable
	_, err = pgSQL.DeleteResolution(ctx, userID, ins[0].ID)
	require.NoError(t, err)

	last, err := pgSQL.LastSettledResolutionByURL(ctx, URL)
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, domain.ResolutionStatusCompleted, last.Status)
	require.Equal(t, preview, last.Preview)

	gone := "https://example.com/gone"
	_, err = pgSQL.StoreResolutions(ctx, external(userID, gone, domain.ResolutionStatusPending))
	require.NoError(t, err)
	msg := "page not found"
	require.NoError(t, pgSQL.UpdatePendingResolutionsByURL(ctx, gone, storage.ResolutionUpdates{
		Status:    domain.ResolutionStatusFailed,
		LastError: &msg,
	}))

	last, err = pgSQL.LastSettledResolutionByURL(ctx, gone)
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, domain.ResolutionStatusFailed, last.Status)
	require.Equal(t, msg, last.LastError)
}

func TestPgSQL_UpdatePendingResolutionsByURL_MaxAttempts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	URL := "https://example.com/flaky"
	ins, err := pgSQL.StoreResolutions(ctx, external(userID, URL, domain.ResolutionStatusPending))
	require.NoError(t, err)

	msg := "connection refused"
	updates := storage.ResolutionUpdates{
		Status:      domain.ResolutionStatusFailed,
		LastError:   &msg,
		MaxAttempts: 2,
	}

	// the first attempt stays pending, the second reaches the limit
	for attempt := 1; attempt <= 2; attempt++ {
		require.NoError(t, pgSQL.UpdatePendingResolutionsByURL(ctx, URL, updates))

		r, err := pgSQL.ResolutionByID(ctx, userID, ins[0].ID)
		require.NoError(t, err)
		require.EqualValues(t, attempt, r.Attempts)
		require.Equal(t, msg, r.LastError)
		if attempt < 2 {
			require.Equal(t, domain.ResolutionStatusPending, r.Status)
		} else {
			require.Equal(t, domain.ResolutionStatusFailed, r.Status)
		}
	}
}

func TestPgSQL_UpdateResolutionByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StoreResolutions(ctx, external(userID, "https://example.com/x", domain.ResolutionStatusPending))
	require.NoError(t, err)

	preview := domain.Preview{Title: "X"}
	updated, err := pgSQL.UpdateResolutionByID(ctx, ins[0].ID, storage.ResolutionUpdates{
		Status:  domain.ResolutionStatusCompleted,
		Preview: &preview,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.ResolutionStatusCompleted, updated.Status)
	require.Equal(t, "X", updated.Preview.Title)
	require.Zero(t, updated.Attempts)

	missing, err := pgSQL.UpdateResolutionByID(ctx, domain.ResolutionID(uuid.New()), storage.ResolutionUpdates{
		Status: domain.ResolutionStatusCompleted,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteResolution(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreResolutions(ctx, external(userID, "https://delete.me", domain.ResolutionStatusPending))
	require.NoError(t, err)
	id := stored[0].ID

	// another user cannot delete it
	other, err := pgSQL.DeleteResolution(ctx, domain.UserID(uuid.New()), id)
	require.NoError(t, err)
	require.Nil(t, other)

	deleted, err := pgSQL.DeleteResolution(ctx, userID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)

	got, err := pgSQL.ResolutionByID(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := pgSQL.PendingResolutionCountByURL(ctx, "https://delete.me/")
	require.NoError(t, err)
	require.Zero(t, count)

	again, err := pgSQL.DeleteResolution(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestPgSQL_UserResolutions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	for i := range 5 {
		r := domain.Resolution{
			UserID:      userID,
			Input:       "#tag",
			Destination: domain.Destination{Kind: domain.DestinationTag, Tag: "tag"},
			Status:      domain.ResolutionStatusCompleted,
		}
		if i%2 == 0 {
			r = external(userID, "https://example.com/", domain.ResolutionStatusPending)
		}
		_, err := pgSQL.StoreResolutions(ctx, r)
		require.NoError(t, err)
		// distinct created_at values keep the cursor unambiguous
		time.Sleep(10 * time.Millisecond)
	}
	_, err := pgSQL.StoreResolutions(ctx, external(domain.UserID(uuid.New()), "https://example.com/", domain.ResolutionStatusPending))
	require.NoError(t, err)

	first, err := pgSQL.UserResolutions(ctx, userID, "", storage.Cursor{}, 3)
	require.NoError(t, err)
	require.Len(t, first.Resolutions, 3)
	require.NotNil(t, first.NextCursor)
	for i := 1; i < len(first.Resolutions); i++ {
		require.False(t, first.Resolutions[i].CreatedAt.After(first.Resolutions[i-1].CreatedAt))
	}

	second, err := pgSQL.UserResolutions(ctx, userID, "", *first.NextCursor, 3)
	require.NoError(t, err)
	require.Len(t, second.Resolutions, 2)
	require.Nil(t, second.NextCursor)

	tags, err := pgSQL.UserResolutions(ctx, userID, domain.DestinationTag, storage.Cursor{}, 10)
	require.NoError(t, err)
	require.Len(t, tags.Resolutions, 2)
	for _, r := range tags.Resolutions {
		require.Equal(t, "tag", r.Destination.Tag)
	}
}

func TestPgSQL_UserResolutions_SameCreatedAt(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// one insert statement gives every row the same created_at
	userID := domain.UserID(uuid.New())
	batch := make([]domain.Resolution, 5)
	for i := range batch {
		batch[i] = external(userID, "https://example.com/same", domain.ResolutionStatusPending)
	}
	ins, err := pgSQL.StoreResolutions(ctx, batch...)
	require.NoError(t, err)
	require.True(t, ins[0].CreatedAt.Equal(ins[4].CreatedAt))

	seen := map[domain.ResolutionID]bool{}
	cursor := storage.Cursor{}
	for {
		page, err := pgSQL.UserResolutions(ctx, userID, "", cursor, 2)
		require.NoError(t, err)
		for _, r := range page.Resolutions {
			require.False(t, seen[r.ID], "row %s returned twice", r.ID)
			seen[r.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.Len(t, seen, 5)
}
