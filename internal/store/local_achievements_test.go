// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/crash"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/mock"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newSQLiteStore builds a LocalAchievements over a real database in a temp dir.
func newSQLiteStore(t *testing.T) (*LocalAchievements, *PhotoFiles) {
	t.Helper()

	dir := t.TempDir()
	l := logger.Nop()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: filepath.Join(dir, "arcent.db")}, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	photos := NewPhotoFiles(filepath.Join(dir, "achievements_photos"), l)
	s := NewLocalAchievements(
		NewAchievementRepository(db, l),
		photos,
		utils.NewUUIDGenerator(),
		crash.NewReporter(l, nil, true),
		l,
	)
	return s, photos
}

func newMockedStore(t *testing.T) (*LocalAchievements, *mock.MockAchievementRepository, *mock.MockPhotoStorage, *mock.MockReporter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockAchievementRepository(ctrl)
	photos := mock.NewMockPhotoStorage(ctrl)
	reporter := mock.NewMockReporter(ctrl)

	s := NewLocalAchievements(repo, photos, utils.NewUUIDGenerator(), reporter, logger.Nop())
	return s, repo, photos, reporter
}

func seed(t *testing.T, s *LocalAchievements, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.Add(context.Background(), models.AchievementInput{
			Title:      fmt.Sprintf("Achievement %02d", i),
			AchievedAt: int64(1000 + i),
		})
		require.NoError(t, err)
	}
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestLocalAchievements_Add_ThenLoadPage(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, models.AchievementInput{
		Title:      "Run 5K",
		Details:    models.StringPtr("Felt great"),
		AchievedAt: 1700000000000,
		Tags:       []string{"fitness"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Run 5K", created.Title)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.PhotoURL)

	page, err := s.LoadPage(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Nil(t, page.NextCursor)
	assert.Equal(t, created, page.Data[0])
}

func TestLocalAchievements_Add_WithPhoto(t *testing.T) {
	s, photos := newSQLiteStore(t)

	created, err := s.Add(context.Background(), models.AchievementInput{
		Title:      "Summit",
		AchievedAt: 1,
		Photo:      &models.Photo{Bytes: []byte("jpeg"), MIME: "image/jpeg"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.PhotoURL)

	path, ok := PathFromURI(*created.PhotoURL)
	require.True(t, ok)
	assert.Equal(t, photos.Dir(), filepath.Dir(path))
	assert.Equal(t, ".jpg", filepath.Ext(path))
}

func TestLocalAchievements_Add_UsesGeneratedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAchievementRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	ctx := context.Background()

	s := NewLocalAchievements(repo, mock.NewMockPhotoStorage(ctrl), ids, mock.NewMockReporter(ctrl), logger.Nop())

	ids.EXPECT().Generate().Return("0192b3c4-0000-7000-8000-000000000001")

	var inserted models.Achievement
	repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a models.Achievement) error {
		inserted = a
		return nil
	})

	got, err := s.Add(ctx, models.AchievementInput{Title: "Run 5K", AchievedAt: 1})
	require.NoError(t, err)
	assert.Equal(t, "0192b3c4-0000-7000-8000-000000000001", got.ID)
	assert.Equal(t, got, inserted)
}

func TestLocalAchievements_Add_InsertFails_ReportsOnce(t *testing.T) {
	s, repo, _, reporter := newMockedStore(t)
	ctx := context.Background()
	boom := errors.New("database is locked")

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(boom)
	reporter.EXPECT().Capture(ctx, opAdd, boom).Times(1)

	got, err := s.Add(ctx, models.AchievementInput{Title: "Run 5K", Details: models.StringPtr("Felt great"), AchievedAt: 1})
	assert.Equal(t, models.LocalErrorTitle, got.Title)
	assert.Equal(t, "Felt great", models.StringValue(got.Details))
	assert.NotEmpty(t, got.ID)

	var degraded *models.DegradedError
	require.ErrorAs(t, err, &degraded)
	assert.Equal(t, opAdd, degraded.Op)
	assert.ErrorIs(t, err, boom)
}

func TestLocalAchievements_Add_PhotoFails_ProceedsWithoutPhoto(t *testing.T) {
	s, repo, photos, reporter := newMockedStore(t)
	ctx := context.Background()
	photoErr := fmt.Errorf("%w: disk full", ErrSavingPhoto)

	photos.EXPECT().Save(ctx, "Run", gomock.Any()).Return("", photoErr)
	reporter.EXPECT().Capture(ctx, opPhoto, photoErr)
	repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a models.Achievement) error {
		assert.Nil(t, a.PhotoURL)
		return nil
	})

	got, err := s.Add(ctx, models.AchievementInput{Title: "Run", Photo: &models.Photo{Bytes: []byte("x")}})
	require.NoError(t, err)
	assert.Nil(t, got.PhotoURL)
	assert.Equal(t, "Run", got.Title)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestLocalAchievements_Update_KeepsCurrentPhoto(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, models.AchievementInput{Title: "Old", AchievedAt: 5})
	require.NoError(t, err)

	current := "file:///photos/old.jpg"
	updated, err := s.Update(ctx, models.AchievementUpdate{
		ID:               created.ID,
		AchievementInput: models.AchievementInput{Title: "New", AchievedAt: 6, Categories: []string{"work"}},
		CurrentPhotoURL:  &current,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, &current, updated.PhotoURL)

	page, err := s.LoadPage(ctx, nil, 20)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "New", page.Data[0].Title)
	assert.Equal(t, []string{"work"}, page.Data[0].Categories)
	assert.Equal(t, current, models.StringValue(page.Data[0].PhotoURL))
}

func TestLocalAchievements_Update_Fails_ReturnsRequestedRecord(t *testing.T) {
	s, repo, _, reporter := newMockedStore(t)
	ctx := context.Background()
	boom := errors.New("readonly database")

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(boom)
	reporter.EXPECT().Capture(ctx, opUpdate, boom).Times(1)

	got, err := s.Update(ctx, models.AchievementUpdate{ID: "keep", AchievementInput: models.AchievementInput{Title: "T"}})
	assert.Equal(t, "keep", got.ID)
	assert.ErrorIs(t, err, boom)
}

func TestLocalAchievements_Delete_Idempotent(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, models.AchievementInput{Title: "Gone", AchievedAt: 1})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))
	require.NoError(t, s.Delete(ctx, created.ID))
	require.NoError(t, s.Delete(ctx, "never-existed"))

	page, err := s.LoadPage(ctx, nil, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

// ── LoadPage ─────────────────────────────────────────────────────────────────

func TestLocalAchievements_LoadPage_TwentyFive(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()
	seed(t, s, 25)

	first, err := s.LoadPage(ctx, nil, 20)
	require.NoError(t, err)
	require.Len(t, first.Data, 20)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, int64(1024), first.Data[0].AchievedAt)
	assert.Equal(t, int64(1005), first.Data[19].AchievedAt)

	second, err := s.LoadPage(ctx, first.NextCursor, 20)
	require.NoError(t, err)
	require.Len(t, second.Data, 5)
	assert.Nil(t, second.NextCursor)
	assert.Equal(t, int64(1004), second.Data[0].AchievedAt)
}

func TestLocalAchievements_LoadPage_Terminates(t *testing.T) {
	for _, tc := range []struct{ n, size int }{{0, 5}, {1, 5}, {10, 5}, {11, 5}, {40, 20}, {7, 1}} {
		t.Run(fmt.Sprintf("n=%d size=%d", tc.n, tc.size), func(t *testing.T) {
			s, _ := newSQLiteStore(t)
			ctx := context.Background()
			seed(t, s, tc.n)

			seen := make(map[string]struct{})
			var all []models.Achievement
			var cursor *string
			calls := 0
			for {
				page, err := s.LoadPage(ctx, cursor, tc.size)
				require.NoError(t, err)
				calls++
				all = append(all, page.Data...)
				for _, a := range page.Data {
					seen[a.ID] = struct{}{}
				}
				if page.NextCursor == nil {
					break
				}
				require.Less(t, calls, tc.n+2, "paging did not terminate")
				cursor = page.NextCursor
			}

			expectedCalls := (tc.n + tc.size - 1) / tc.size
			if expectedCalls == 0 {
				expectedCalls = 1
			}
			assert.Equal(t, expectedCalls, calls)
			assert.Len(t, all, tc.n)
			assert.Len(t, seen, tc.n)
			for i := 1; i < len(all); i++ {
				assert.GreaterOrEqual(t, all[i-1].AchievedAt, all[i].AchievedAt)
			}
		})
	}
}

func TestLocalAchievements_LoadPage_IndependentCursors(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()
	seed(t, s, 6)

	a, err := s.LoadPage(ctx, nil, 2)
	require.NoError(t, err)
	b, err := s.LoadPage(ctx, nil, 2)
	require.NoError(t, err)

	// a second pager starting from scratch sees the first page again
	assert.Equal(t, a.Data, b.Data)
	assert.Equal(t, "2", *a.NextCursor)
}

func TestLocalAchievements_LoadPage_DefaultPageSize(t *testing.T) {
	s, repo, _, _ := newMockedStore(t)
	ctx := context.Background()

	repo.EXPECT().Page(ctx, uint64(DefaultPageSize), uint64(0)).Return([]models.Achievement{}, nil)

	page, err := s.LoadPage(ctx, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, page.NextCursor)
}

func TestLocalAchievements_LoadPage_InvalidCursor(t *testing.T) {
	s, _, _, reporter := newMockedStore(t)
	ctx := context.Background()

	reporter.EXPECT().Capture(ctx, opLoadPage, gomock.Any()).Times(1)

	bad := "abc"
	page, err := s.LoadPage(ctx, &bad, 20)
	assert.ErrorIs(t, err, ErrInvalidCursor)
	assert.Empty(t, page.Data)
	assert.Nil(t, page.NextCursor)
}

func TestLocalAchievements_LoadPage_QueryFails(t *testing.T) {
	s, repo, _, reporter := newMockedStore(t)
	ctx := context.Background()
	boom := errors.New("no such table: achievements")

	repo.EXPECT().Page(ctx, uint64(20), uint64(0)).Return(nil, boom)
	reporter.EXPECT().Capture(ctx, opLoadPage, boom)

	page, err := s.LoadPage(ctx, nil, 20)
	assert.ErrorIs(t, err, boom)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestLocalAchievements_Search(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx := context.Background()

	for i, in := range []models.AchievementInput{
		{Title: "Visited Egypt", AchievedAt: 1},
		{Title: "Pyramids", Details: models.StringPtr("Trip to Egypt"), AchievedAt: 3},
		{Title: "100% done", AchievedAt: 2},
		{Title: "Unrelated", AchievedAt: 4},
	} {
		_, err := s.Add(ctx, in)
		require.NoError(t, err, "seed %d", i)
	}

	hits, err := s.Search(ctx, "Egypt")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Pyramids", hits[0].Title)
	assert.Equal(t, "Visited Egypt", hits[1].Title)

	hits, err = s.Search(ctx, "%")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "100% done", hits[0].Title)
}

func TestLocalAchievements_Search_Blank(t *testing.T) {
	s, _, _, _ := newMockedStore(t)

	hits, err := s.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}

func TestLocalAchievements_Search_Capped(t *testing.T) {
	s, repo, _, _ := newMockedStore(t)
	ctx := context.Background()

	repo.EXPECT().Search(ctx, "run", uint64(MaxSearchResults)).Return([]models.Achievement{{ID: "a"}}, nil)

	hits, err := s.Search(ctx, "run")
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

// ── Recent ───────────────────────────────────────────────────────────────────

func TestLocalAchievements_Recent_ReemitsOnChange(t *testing.T) {
	s, _ := newSQLiteStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := s.Recent(ctx, 2)
	assert.Empty(t, receive(t, feed))

	for i := 0; i < 3; i++ {
		_, err := s.Add(context.Background(), models.AchievementInput{Title: fmt.Sprintf("A%d", i), AchievedAt: int64(i)})
		require.NoError(t, err)
	}

	latest := waitFor(t, feed, func(list []models.Achievement) bool {
		return len(list) == 2 && list[0].Title == "A2"
	})
	assert.Equal(t, "A1", latest[1].Title)

	cancel()
	waitClosed(t, feed)
}

func receive(t *testing.T, ch <-chan []models.Achievement) []models.Achievement {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received")
		return nil
	}
}

func waitFor(t *testing.T, ch <-chan []models.Achievement, ok func([]models.Achievement) bool) []models.Achievement {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v := <-ch:
			if ok(v) {
				return v
			}
		case <-deadline:
			t.Fatal("expected snapshot never arrived")
			return nil
		}
	}
}

func waitClosed(t *testing.T, ch <-chan []models.Achievement) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("feed not closed after cancel")
		}
	}
}

// ── Wipe ─────────────────────────────────────────────────────────────────────

func TestLocalAchievements_Wipe(t *testing.T) {
	s, photos := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, models.AchievementInput{Title: "P", Photo: &models.Photo{Bytes: []byte("x"), MIME: "image/png"}})
	require.NoError(t, err)
	seed(t, s, 3)

	require.NoError(t, s.Wipe(ctx))

	page, err := s.LoadPage(ctx, nil, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	_, err = os.Stat(photos.Dir())
	assert.True(t, os.IsNotExist(err))

	// nothing left to wipe
	require.NoError(t, s.Wipe(ctx))
}

func TestLocalAchievements_Wipe_ReportsJoinedFailure(t *testing.T) {
	s, repo, photos, reporter := newMockedStore(t)
	ctx := context.Background()
	dbErr := errors.New("locked")

	repo.EXPECT().ClearAll(ctx).Return(dbErr)
	photos.EXPECT().RemoveAll(ctx).Return(nil)
	reporter.EXPECT().Capture(ctx, opWipe, gomock.Any()).Times(1)

	err := s.Wipe(ctx)
	assert.ErrorIs(t, err, dbErr)
}
