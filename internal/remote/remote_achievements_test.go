// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/mock"
	"github.com/MKhiriev/arcent/models"
)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestRemote(t *testing.T) (*RemoteAchievements, *mock.MockBaaSAdapter, *mock.MockReporter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	client := mock.NewMockBaaSAdapter(ctrl)
	reporter := mock.NewMockReporter(ctrl)

	r := NewRemoteAchievements(client, &seqIDs{}, reporter, logger.Nop())
	r.now = func() time.Time { return time.UnixMilli(1) }
	return r, client, reporter
}

func docs(ids ...string) adapter.DocumentList {
	list := adapter.DocumentList{}
	for i, id := range ids {
		list.Documents = append(list.Documents, adapter.Document{ID: id, Data: map[string]any{
			"title":      id,
			"achievedAt": float64(i + 1),
		}})
	}
	return list
}

// waitFor reads ch until a value satisfies ok. Intermediate values may be
// skipped since subscribers only keep the latest one.
func waitFor(t *testing.T, ch <-chan []models.Achievement, ok func([]models.Achievement) bool) []models.Achievement {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v, open := <-ch:
			require.True(t, open, "feed closed early")
			if ok(v) {
				return v
			}
		case <-deadline:
			t.Fatal("expected value not received")
			return nil
		}
	}
}

func ofLen(n int) func([]models.Achievement) bool {
	return func(v []models.Achievement) bool { return len(v) == n }
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestRemoteAchievements_Add_WithPhoto(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx := context.Background()
	perms := adapter.Permissions("user-1")
	photo := &models.Photo{Bytes: []byte("img"), MIME: "image/png", FileName: "a.png"}

	gomock.InOrder(
		client.EXPECT().GetAccount(ctx).Return(models.Account{ID: "user-1"}, nil),
		client.EXPECT().CreateFile(ctx, "id-2", *photo, perms).Return(adapter.File{ID: "file-9"}, nil),
		client.EXPECT().FileViewURL("file-9").Return("https://baas/v1/storage/buckets/b/files/file-9/view?project=p"),
		client.EXPECT().CreateDocument(ctx, "id-1", gomock.Any(), perms).DoAndReturn(
			func(_ context.Context, id string, data map[string]any, _ []string) (adapter.Document, error) {
				assert.Equal(t, "Run 5K", data["title"])
				assert.Equal(t, "", data["details"])
				assert.Equal(t, "1970-01-01T00:00:01Z", data["achievedAt"])
				assert.Equal(t, "https://baas/v1/storage/buckets/b/files/file-9/view?project=p", data["photoUrl"])
				return adapter.Document{ID: id}, nil
			}),
	)

	got, err := r.Add(ctx, models.AchievementInput{Title: "Run 5K", AchievedAt: 1000, Photo: photo})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	require.NotNil(t, got.PhotoURL)
	assert.Contains(t, *got.PhotoURL, "/files/file-9/view")
}

func TestRemoteAchievements_Add_Failure_ReportedOnce(t *testing.T) {
	r, client, reporter := newTestRemote(t)
	ctx := context.Background()
	boom := errors.New("network unreachable")

	client.EXPECT().GetAccount(ctx).Return(models.Account{ID: "user-1"}, nil)
	client.EXPECT().CreateDocument(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.Document{}, boom)
	reporter.EXPECT().Capture(ctx, opAdd, gomock.Any()).Times(1)

	got, err := r.Add(ctx, models.AchievementInput{Title: "Run", Details: models.StringPtr("kept")})
	assert.Equal(t, models.RemoteErrorTitle, got.Title)
	assert.Equal(t, "kept", models.StringValue(got.Details))
	assert.ErrorIs(t, err, boom)

	var degraded *models.DegradedError
	assert.ErrorAs(t, err, &degraded)
}

func TestRemoteAchievements_Add_PrependsToRecent(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).Return(docs("old"), nil)

	feed := r.Recent(ctx, 5)
	waitFor(t, feed, ofLen(1))

	client.EXPECT().GetAccount(gomock.Any()).Return(models.Account{ID: "u"}, nil)
	client.EXPECT().CreateDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.Document{}, nil)

	_, err := r.Add(context.Background(), models.AchievementInput{Title: "new", AchievedAt: 10})
	require.NoError(t, err)

	latest := waitFor(t, feed, ofLen(2))
	assert.Equal(t, "new", latest[0].Title)
	assert.Equal(t, "old", latest[1].Title)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestRemoteAchievements_Update_KeepsPhotoWithoutUpload(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx := context.Background()
	current := "https://baas/old/view"

	client.EXPECT().GetAccount(ctx).Return(models.Account{ID: "u"}, nil)
	client.EXPECT().UpdateDocument(ctx, "doc-1", gomock.Any(), adapter.Permissions("u")).DoAndReturn(
		func(_ context.Context, _ string, data map[string]any, _ []string) (adapter.Document, error) {
			assert.Equal(t, current, data["photoUrl"])
			return adapter.Document{ID: "doc-1"}, nil
		})

	got, err := r.Update(ctx, models.AchievementUpdate{
		ID:               "doc-1",
		AchievementInput: models.AchievementInput{Title: "T"},
		CurrentPhotoURL:  &current,
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, current, *got.PhotoURL)
}

func TestRemoteAchievements_Delete(t *testing.T) {
	r, client, reporter := newTestRemote(t)
	ctx := context.Background()

	client.EXPECT().DeleteDocument(ctx, "gone").Return(&adapter.BaaSError{Status: 404, Err: adapter.ErrNotFound})
	require.NoError(t, r.Delete(ctx, "gone"), "missing documents are already deleted")

	boom := &adapter.BaaSError{Status: 500, Err: adapter.ErrInternalServerError}
	client.EXPECT().DeleteDocument(ctx, "x").Return(boom)
	reporter.EXPECT().Capture(ctx, opDelete, boom)
	assert.ErrorIs(t, r.Delete(ctx, "x"), adapter.ErrInternalServerError)
}

// ── LoadPage ─────────────────────────────────────────────────────────────────

func TestRemoteAchievements_LoadPage_FullPageHasCursor(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx := context.Background()
	cursor := "prev"

	client.EXPECT().ListDocuments(ctx, []adapter.Query{
		adapter.OrderDesc("achievedAt"),
		adapter.Limit(3),
		adapter.CursorAfter("prev"),
	}).Return(docs("a", "b", "c"), nil)

	page, err := r.LoadPage(ctx, &cursor, 3)
	require.NoError(t, err)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "c", *page.NextCursor, "cursor is the last document in server order")
	// re-sorted newest first
	assert.Equal(t, []string{"c", "b", "a"}, []string{page.Data[0].ID, page.Data[1].ID, page.Data[2].ID})
}

func TestRemoteAchievements_LoadPage_ShortPageEnds(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx := context.Background()

	client.EXPECT().ListDocuments(ctx, gomock.Any()).Return(docs("a"), nil)

	page, err := r.LoadPage(ctx, nil, 0)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Nil(t, page.NextCursor)
}

func TestRemoteAchievements_LoadPage_DegradedOrderingIsPermanent(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().ListDocuments(ctx, []adapter.Query{adapter.OrderDesc("achievedAt"), adapter.Limit(2)}).
			Return(adapter.DocumentList{}, degradedIndexErr()),
		client.EXPECT().ListDocuments(ctx, []adapter.Query{adapter.Limit(2)}).
			Return(docs("a", "b"), nil),
		client.EXPECT().ListDocuments(ctx, []adapter.Query{adapter.Limit(2), adapter.CursorAfter("b")}).
			Return(docs("c"), nil),
	)

	first, err := r.LoadPage(ctx, nil, 2)
	require.NoError(t, err)
	require.NotNil(t, first.NextCursor)

	second, err := r.LoadPage(ctx, first.NextCursor, 2)
	require.NoError(t, err)
	assert.Nil(t, second.NextCursor)
	assert.False(t, r.Breaker().OrderingSupported())
}

func TestRemoteAchievements_LoadPage_FailureIsEmpty(t *testing.T) {
	r, client, reporter := newTestRemote(t)
	ctx := context.Background()
	boom := errors.New("timeout")

	client.EXPECT().ListDocuments(ctx, gomock.Any()).Return(adapter.DocumentList{}, boom)
	reporter.EXPECT().Capture(ctx, opLoadPage, boom).Times(1)

	page, err := r.LoadPage(ctx, nil, 20)
	assert.ErrorIs(t, err, boom)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.True(t, r.Breaker().OrderingSupported())
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestRemoteAchievements_Search_FailureReported(t *testing.T) {
	r, client, reporter := newTestRemote(t)
	ctx := context.Background()
	boom := errors.New("dns failure")

	client.EXPECT().ListDocuments(ctx, gomock.Any()).Return(adapter.DocumentList{}, boom)
	reporter.EXPECT().Capture(ctx, opSearch, boom).Times(1)

	got, err := r.Search(ctx, "egypt")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)
}

func TestRemoteAchievements_SearchSharesBreakerWithPaging(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx := context.Background()

	client.EXPECT().ListDocuments(ctx, gomock.Any()).Return(adapter.DocumentList{}, degradedIndexErr())
	client.EXPECT().ListDocuments(ctx, gomock.Any()).Return(docs(), nil)
	_, err := r.LoadPage(ctx, nil, 2)
	require.NoError(t, err)

	client.EXPECT().ListDocuments(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, queries []adapter.Query) (adapter.DocumentList, error) {
			assert.False(t, hasOrder(queries))
			return docs("Egypt"), nil
		})
	got, err := r.Search(ctx, "egypt")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// ── Recent cache ─────────────────────────────────────────────────────────────

func TestRemoteAchievements_Recent_LoadsOnce(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).Return(docs("a", "b", "c"), nil).Times(1)

	first := r.Recent(ctx, 2)
	got := waitFor(t, first, func(v []models.Achievement) bool { return len(v) > 0 })
	assert.Len(t, got, 2, "truncated to limit")

	second := r.Recent(ctx, 5)
	assert.Len(t, waitFor(t, second, ofLen(3)), 3, "served from cache without a request")
}

func TestRemoteAchievements_ResetCache_RearmsLoad(t *testing.T) {
	r, client, _ := newTestRemote(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).Return(docs("a"), nil)
	feed := r.Recent(ctx, 5)
	waitFor(t, feed, ofLen(1))

	r.ResetCache()
	waitFor(t, feed, ofLen(0))

	client.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).Return(docs("x", "y"), nil)
	again := r.Recent(ctx, 5)
	waitFor(t, again, ofLen(2))
}
