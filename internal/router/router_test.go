package router_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linkrouter/internal/router"
	"linkrouter/pkg/domain"
	"linkrouter/pkg/logger"
	"linkrouter/pkg/preview"
	mockpreview "linkrouter/pkg/preview/mock"
	"linkrouter/pkg/serrors"
	"linkrouter/pkg/storage"
	mockstorage "linkrouter/pkg/storage/mock"
)

const (
	videoURL = "https://streamable.com/abc12"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *mockpreview.MockClient, router.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	pc := mockpreview.NewMockClient(ctrl)
	r, err := router.New(st, pc, router.Options{MaxAttempts: 3, PreviewCacheTTL: time.Hour})
	require.NoError(t, err)

	return ctrl, st, pc, r
}

// expectWithTx runs the transaction callback against a fresh MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func echoStore(_ context.Context, resolutions ...domain.Resolution) ([]domain.Resolution, error) {
	out := make([]domain.Resolution, len(resolutions))
	for i, r := range resolutions {
		r.ID = domain.ResolutionID(uuid.New())
		out[i] = r
	}

	return out, nil
}

func TestRouter_Resolve_InApp(t *testing.T) {
	_, st, _, r := newTestRouter(t)
	userID := domain.UserID(uuid.New())

	st.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)

	res, err := r.Resolve(context.Background(), userID, "https://www.wykop.pl/wpis/123/slug/#comment-456",
		router.ResolveOptions{FromNotification: true})
	require.NoError(t, err)
	require.Equal(t, domain.ResolutionStatusCompleted, res.Status)
	require.Equal(t, domain.Destination{Kind: domain.DestinationEntry, EntryID: 123, CommentID: 456}, res.Destination)
	require.True(t, res.FromNotification)
	require.Equal(t, userID, res.UserID)
}

func TestRouter_Resolve_Shorthand(t *testing.T) {
	_, st, _, r := newTestRouter(t)

	st.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)

	res, err := r.Resolve(context.Background(), domain.UserID{}, "#polska", router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.Destination{Kind: domain.DestinationTag, Tag: "polska"}, res.Destination)
}

func TestRouter_Resolve_EmptyInput(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	_, err := r.Resolve(context.Background(), domain.UserID{}, "", router.ResolveOptions{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRouter_Resolve_NonHTTPBrowserCompletes(t *testing.T) {
	_, st, _, r := newTestRouter(t)

	st.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)

	res, err := r.Resolve(context.Background(), domain.UserID{}, "mailto:someone@example.com", router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.DestinationBrowser, res.Destination.Kind)
	require.Equal(t, domain.ResolutionStatusCompleted, res.Status)
}

func TestRouter_Resolve_ExternalKeyIsNormalized(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)
	raw := "HTTPS://Streamable.com:443/abc12#t=3"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args router.PreviewJobArgs, _ any) (bool, error) {
				require.Equal(t, videoURL, args.URL)

				return false, nil
			},
		)
		tx.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(2), nil)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, raw, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, raw, res.Destination.URL)
	require.Equal(t, domain.ResolutionStatusPending, res.Status)
}

func TestRouter_Resolve_EscapedSlashesArePreviewed(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)
	raw := `https:\/\/example.com\/x`

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args router.PreviewJobArgs, _ any) (bool, error) {
				require.Equal(t, "https://example.com/x", args.URL)

				return true, nil
			},
		)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, raw, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.DestinationBrowser, res.Destination.Kind)
	require.Equal(t, domain.ResolutionStatusPending, res.Status)
}

func TestRouter_Resolve_ExternalJobAdded(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args router.PreviewJobArgs, _ any) (bool, error) {
				require.Equal(t, videoURL, args.URL)
				opts := args.InsertOpts()
				require.Equal(t, 3, opts.MaxAttempts)
				require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)

				return true, nil
			},
		)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, videoURL, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.ResolutionStatusPending, res.Status)
	require.Equal(t, domain.DestinationEmbed, res.Destination.Kind)
}

func TestRouter_Resolve_ReusesCompletedPreview(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)
	// the row carrying the preview may have been deleted by its owner since
	cached := domain.Resolution{
		Status:    domain.ResolutionStatusCompleted,
		Preview:   domain.Preview{URL: videoURL, Title: "clip"},
		DeletedAt: time.Now(),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(1), nil)
		tx.EXPECT().LastSettledResolutionByURL(gomock.Any(), videoURL).Return(&cached, nil)
		tx.EXPECT().UpdateResolutionByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.ResolutionID, updates storage.ResolutionUpdates) (*domain.Resolution, error) {
				require.Equal(t, domain.ResolutionStatusCompleted, updates.Status)
				require.NotNil(t, updates.Preview)

				return &domain.Resolution{ID: id, Status: updates.Status, Preview: *updates.Preview}, nil
			},
		)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, videoURL, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.ResolutionStatusCompleted, res.Status)
	require.Equal(t, "clip", res.Preview.Title)
}

func TestRouter_Resolve_PendingWhenJobQueued(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(3), nil)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, videoURL, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.ResolutionStatusPending, res.Status)
}

func TestRouter_Resolve_PendingWhenOthersDeleted(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(1), nil)
		tx.EXPECT().LastSettledResolutionByURL(gomock.Any(), videoURL).Return(nil, nil)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, videoURL, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.ResolutionStatusPending, res.Status)
}

func TestRouter_Resolve_CopiesFailedFetch(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)
	gone := domain.Resolution{Status: domain.ResolutionStatusFailed, LastError: "page not found"}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(1), nil)
		tx.EXPECT().LastSettledResolutionByURL(gomock.Any(), videoURL).Return(&gone, nil)
		tx.EXPECT().UpdateResolutionByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.ResolutionID, updates storage.ResolutionUpdates) (*domain.Resolution, error) {
				require.Equal(t, domain.ResolutionStatusFailed, updates.Status)
				require.Nil(t, updates.Preview)
				require.Equal(t, "page not found", *updates.LastError)

				return &domain.Resolution{ID: id, Status: updates.Status, LastError: *updates.LastError}, nil
			},
		)
	})

	res, err := r.Resolve(context.Background(), domain.UserID{}, videoURL, router.ResolveOptions{})
	require.NoError(t, err)
	require.Equal(t, domain.ResolutionStatusFailed, res.Status)
	require.Equal(t, "page not found", res.LastError)
}

func TestRouter_Resolve_TxError(t *testing.T) {
	ctrl, st, _, r := newTestRouter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreResolutions(gomock.Any(), gomock.Any()).DoAndReturn(echoStore)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))
	})

	_, err := r.Resolve(context.Background(), domain.UserID{}, videoURL, router.ResolveOptions{})
	require.ErrorContains(t, err, "queue down")
}

func TestRouter_FetchPreview_Success(t *testing.T) {
	_, st, pc, r := newTestRouter(t)
	p := &domain.Preview{URL: videoURL, Title: "clip"}

	st.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(2), nil)
	pc.EXPECT().Fetch(gomock.Any(), videoURL).Return(p, nil)
	st.EXPECT().UpdatePendingResolutionsByURL(gomock.Any(), videoURL, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.ResolutionUpdates) error {
			require.Equal(t, domain.ResolutionStatusCompleted, updates.Status)
			require.Equal(t, p, updates.Preview)
			require.NotNil(t, updates.LastError)
			require.Empty(t, *updates.LastError)

			return nil
		},
	)

	require.NoError(t, r.FetchPreview(context.Background(), videoURL, router.FetchOptions{}))
}

func TestRouter_FetchPreview_NothingPending(t *testing.T) {
	_, st, _, r := newTestRouter(t)

	st.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(0), nil)

	err := r.FetchPreview(context.Background(), videoURL, router.FetchOptions{})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestRouter_FetchPreview_Failure(t *testing.T) {
	_, st, pc, r := newTestRouter(t)

	st.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(1), nil)
	pc.EXPECT().Fetch(gomock.Any(), videoURL).Return(nil, errors.New("connection reset"))
	st.EXPECT().UpdatePendingResolutionsByURL(gomock.Any(), videoURL, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.ResolutionUpdates) error {
			require.Equal(t, domain.ResolutionStatusFailed, updates.Status)
			require.Equal(t, 3, updates.MaxAttempts)
			require.Equal(t, "connection reset", *updates.LastError)

			return nil
		},
	)

	err := r.FetchPreview(context.Background(), videoURL, router.FetchOptions{})
	require.ErrorContains(t, err, "connection reset")
}

func TestRouter_FetchPreview_FinalAttemptFailsEveryRow(t *testing.T) {
	_, st, pc, r := newTestRouter(t)

	st.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(2), nil)
	pc.EXPECT().Fetch(gomock.Any(), videoURL).Return(nil, errors.New("connection reset"))
	st.EXPECT().UpdatePendingResolutionsByURL(gomock.Any(), videoURL, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.ResolutionUpdates) error {
			require.Equal(t, domain.ResolutionStatusFailed, updates.Status)
			require.Zero(t, updates.MaxAttempts)

			return nil
		},
	)

	err := r.FetchPreview(context.Background(), videoURL, router.FetchOptions{FinalAttempt: true})
	require.ErrorContains(t, err, "connection reset")
}

func TestRouter_FetchPreview_PermanentFailureFailsAtOnce(t *testing.T) {
	for name, fetchErr := range map[string]error{
		"not found": serrors.With(serrors.ErrNotFound, "gone"),
		"forbidden": serrors.With(serrors.ErrForbidden, "refusing to fetch 127.0.0.1"),
	} {
		t.Run(name, func(t *testing.T) {
			_, st, pc, r := newTestRouter(t)

			st.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(1), nil)
			pc.EXPECT().Fetch(gomock.Any(), videoURL).Return(nil, fetchErr)
			st.EXPECT().UpdatePendingResolutionsByURL(gomock.Any(), videoURL, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, updates storage.ResolutionUpdates) error {
					require.Equal(t, domain.ResolutionStatusFailed, updates.Status)
					require.Zero(t, updates.MaxAttempts)

					return nil
				},
			)

			require.NoError(t, r.FetchPreview(context.Background(), videoURL, router.FetchOptions{}))
		})
	}
}

func TestRouter_FetchPreview_RateLimitedLeavesRows(t *testing.T) {
	_, st, pc, r := newTestRouter(t)

	st.EXPECT().PendingResolutionCountByURL(gomock.Any(), videoURL).Return(int64(1), nil)
	pc.EXPECT().Fetch(gomock.Any(), videoURL).Return(nil,
		serrors.Wrap(serrors.ErrRateLimited, &preview.RetryAfterError{After: time.Minute}, "slow down"))

	err := r.FetchPreview(context.Background(), videoURL, router.FetchOptions{})
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	var ra *preview.RetryAfterError
	require.ErrorAs(t, err, &ra)
	require.Equal(t, time.Minute, ra.After)
}

func TestRouter_UserResolutions(t *testing.T) {
	_, st, _, r := newTestRouter(t)
	userID := domain.UserID(uuid.New())
	next := storage.Cursor{
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 123000000, time.UTC),
		ID:        domain.ResolutionID(uuid.MustParse("0b6f2a8e-3c1d-4f5e-9a7b-2c8d1e0f4a6b")),
	}

	st.EXPECT().UserResolutions(gomock.Any(), userID, domain.DestinationTag, storage.Cursor{}, uint(router.DefaultPageSize)).
		Return(storage.UserResolutions{
			Resolutions: []domain.Resolution{{UserID: userID}},
			NextCursor:  &next,
		}, nil)

	items, cursor, err := r.UserResolutions(context.Background(), userID, domain.DestinationTag, "", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "2026-03-01T10:00:00.123Z_0b6f2a8e-3c1d-4f5e-9a7b-2c8d1e0f4a6b", cursor)

	st.EXPECT().UserResolutions(gomock.Any(), userID, domain.DestinationKind(""), next, uint(router.MaxPageSize)).
		Return(storage.UserResolutions{}, nil)

	items, cursor, err = r.UserResolutions(context.Background(), userID, "", cursor, 1000)
	require.NoError(t, err)
	require.Empty(t, items)
	require.Empty(t, cursor)
}

func TestDecodeCursor(t *testing.T) {
	c := storage.Cursor{
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 1000, time.UTC),
		ID:        domain.ResolutionID(uuid.New()),
	}
	got, err := router.DecodeCursor(router.EncodeCursor(c))
	require.NoError(t, err)
	require.True(t, c.CreatedAt.Equal(got.CreatedAt))
	require.Equal(t, c.ID, got.ID)

	for _, bad := range []string{
		"2026-03-01T10:00:00Z",
		"yesterday_0b6f2a8e-3c1d-4f5e-9a7b-2c8d1e0f4a6b",
		"2026-03-01T10:00:00Z_not-a-uuid",
	} {
		_, err := router.DecodeCursor(bad)
		require.Error(t, err, bad)
	}
}

func TestRouter_UserResolutions_BadInput(t *testing.T) {
	_, _, _, r := newTestRouter(t)

	_, _, err := r.UserResolutions(context.Background(), domain.UserID{}, "", "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = r.UserResolutions(context.Background(), domain.UserID{}, "video", "", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRouter_Result(t *testing.T) {
	_, st, _, r := newTestRouter(t)
	userID := domain.UserID(uuid.New())
	id := domain.ResolutionID(uuid.New())

	st.EXPECT().ResolutionByID(gomock.Any(), userID, id).Return(&domain.Resolution{ID: id}, nil)
	res, err := r.Result(context.Background(), userID, id)
	require.NoError(t, err)
	require.Equal(t, id, res.ID)

	st.EXPECT().ResolutionByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = r.Result(context.Background(), userID, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRouter_Delete(t *testing.T) {
	_, st, _, r := newTestRouter(t)
	userID := domain.UserID(uuid.New())
	id := domain.ResolutionID(uuid.New())

	st.EXPECT().DeleteResolution(gomock.Any(), userID, id).Return(&domain.Resolution{ID: id}, nil)
	require.NoError(t, r.Delete(context.Background(), userID, id))

	st.EXPECT().DeleteResolution(gomock.Any(), userID, id).Return(nil, nil)
	require.ErrorIs(t, r.Delete(context.Background(), userID, id), serrors.ErrNotFound)

	st.EXPECT().DeleteResolution(gomock.Any(), userID, id).Return(nil, errors.New("db down"))
	require.ErrorContains(t, r.Delete(context.Background(), userID, id), "db down")
}
