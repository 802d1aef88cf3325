// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package home

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/session"
	"github.com/MKhiriev/arcent/models"
)

// fakeRepo records calls; LoadPage and Search can be held open with gates.
type fakeRepo struct {
	mu sync.Mutex

	pages       map[string]models.Page
	pageCalls   []string
	pageGate    chan struct{}
	recentList  []models.Achievement
	recentCalls int

	searchCalls []string
	searchGates map[string]chan struct{}
	deleted     []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		pages:       map[string]models.Page{},
		searchGates: map[string]chan struct{}{},
	}
}

func (r *fakeRepo) Recent(ctx context.Context, _ int) <-chan []models.Achievement {
	r.mu.Lock()
	r.recentCalls++
	list := slices.Clone(r.recentList)
	r.mu.Unlock()

	out := make(chan []models.Achievement, 1)
	out <- list
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out
}

func (r *fakeRepo) LoadPage(ctx context.Context, cursor *string, _ int) (models.Page, error) {
	key := models.StringValue(cursor)

	r.mu.Lock()
	r.pageCalls = append(r.pageCalls, key)
	gate := r.pageGate
	page := r.pages[key]
	r.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
		}
	}
	if page.Data == nil {
		page.Data = []models.Achievement{}
	}
	return page, nil
}

func (r *fakeRepo) Search(ctx context.Context, q string) ([]models.Achievement, error) {
	r.mu.Lock()
	r.searchCalls = append(r.searchCalls, q)
	gate := r.searchGates[q]
	r.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return []models.Achievement{}, ctx.Err()
		}
	}
	return []models.Achievement{{ID: "id-" + q, Title: q}}, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) searches() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.searchCalls)
}

func (r *fakeRepo) loads() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.pageCalls)
}

func newTestVM(t *testing.T, repo *fakeRepo) (*ViewModel, *session.Events) {
	t.Helper()
	events := session.NewEvents()
	vm := NewViewModel(repo, events, config.Home{
		SearchDebounce: 40 * time.Millisecond,
		RecentLimit:    5,
		PageSize:       2,
	}, logger.Nop())
	vm.loc = time.UTC

	ctx, cancel := context.WithCancel(context.Background())
	vm.Start(ctx)
	t.Cleanup(func() {
		cancel()
		vm.Wait()
	})
	return vm, events
}

func ach(id string, at int64) models.Achievement {
	return models.Achievement{ID: id, Title: id, AchievedAt: at, Categories: []string{}, Tags: []string{}}
}

func ids(list []models.Achievement) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

const day = int64(24 * time.Hour / time.Millisecond)

// ── search ───────────────────────────────────────────────────────────────────

func TestViewModel_Search_DebouncedLatestWins(t *testing.T) {
	repo := newFakeRepo()
	vm, _ := newTestVM(t, repo)

	vm.OnSearchQueryChange("E")
	vm.OnSearchQueryChange("Eg")
	vm.OnSearchQueryChange("Egypt")

	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Egypt", vm.State().SearchResults[0].Title)
	assert.False(t, vm.State().SearchLoading)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"Egypt"}, repo.searches())
}

func TestViewModel_Search_BlankClearsImmediately(t *testing.T) {
	repo := newFakeRepo()
	vm, _ := newTestVM(t, repo)

	vm.OnSearchQueryChange("Test")
	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)

	vm.OnSearchQueryChange("")
	assert.Empty(t, vm.State().SearchResults, "cleared without waiting for the debounce")
	assert.False(t, vm.State().SearchLoading)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"Test"}, repo.searches())
}

func TestViewModel_Search_StaleResultNeverApplied(t *testing.T) {
	repo := newFakeRepo()
	slow := make(chan struct{})
	repo.searchGates["slow"] = slow
	vm, _ := newTestVM(t, repo)

	vm.OnSearchQueryChange("slow")
	require.Eventually(t, func() bool { return slices.Contains(repo.searches(), "slow") }, time.Second, 5*time.Millisecond)

	vm.OnSearchQueryChange("fast")
	require.Eventually(t, func() bool {
		r := vm.State().SearchResults
		return len(r) == 1 && r[0].Title == "fast"
	}, time.Second, 5*time.Millisecond)

	close(slow)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "fast", vm.State().SearchResults[0].Title)
}

func TestViewModel_Search_EditAndRevertKeepsRunningSearch(t *testing.T) {
	repo := newFakeRepo()
	held := make(chan struct{})
	repo.searchGates["abc"] = held
	vm, _ := newTestVM(t, repo)

	vm.OnSearchQueryChange("abc")
	require.Eventually(t, func() bool { return slices.Contains(repo.searches(), "abc") }, time.Second, 5*time.Millisecond)

	vm.OnSearchQueryChange("abcd")
	vm.OnSearchQueryChange("abc")
	time.Sleep(80 * time.Millisecond)
	close(held)

	require.Eventually(t, func() bool { return !vm.State().SearchLoading }, time.Second, 5*time.Millisecond)
	state := vm.State()
	assert.Equal(t, "abc", state.SearchQuery)
	require.Len(t, state.SearchResults, 1)
	assert.Equal(t, "abc", state.SearchResults[0].Title)
	assert.Equal(t, []string{"abc"}, repo.searches())
}

func TestViewModel_Search_SameQueryAfterClearRunsAgain(t *testing.T) {
	repo := newFakeRepo()
	vm, _ := newTestVM(t, repo)

	vm.OnSearchQueryChange("Run")
	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)

	vm.OnSearchQueryChange("")
	vm.OnSearchQueryChange("Run")
	require.Eventually(t, func() bool { return len(repo.searches()) == 2 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)
}

func TestViewModel_Search_WaitsForPageLoad(t *testing.T) {
	repo := newFakeRepo()
	gate := make(chan struct{})
	repo.pageGate = gate
	vm, _ := newTestVM(t, repo)

	require.Eventually(t, func() bool { return vm.State().LoadingMore }, time.Second, 5*time.Millisecond)

	vm.OnSearchQueryChange("Egypt")
	require.Eventually(t, func() bool { return vm.State().SearchLoading }, time.Second, 5*time.Millisecond)
	assert.Empty(t, repo.searches(), "search holds while the first page loads")

	close(gate)
	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)
}

func TestViewModel_OpenCloseSearch(t *testing.T) {
	repo := newFakeRepo()
	vm, _ := newTestVM(t, repo)

	vm.OpenSearch()
	assert.True(t, vm.State().Searching)

	vm.OnSearchQueryChange("Run")
	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)

	vm.CloseSearch()
	s := vm.State()
	assert.False(t, s.Searching)
	assert.Empty(t, s.SearchQuery)
	assert.Empty(t, s.SearchResults)
}

// ── paging ───────────────────────────────────────────────────────────────────

func TestViewModel_Paging(t *testing.T) {
	repo := newFakeRepo()
	next := "2"
	repo.pages[""] = models.Page{Data: []models.Achievement{ach("c", 3*day), ach("b", 3*day+1)}, NextCursor: &next}
	repo.pages["2"] = models.Page{Data: []models.Achievement{ach("a", day)}}
	vm, _ := newTestVM(t, repo)

	require.Eventually(t, func() bool { return len(vm.State().All) == 2 && !vm.State().LoadingMore }, time.Second, 5*time.Millisecond)
	require.NotNil(t, vm.State().NextCursor)

	vm.LoadMore(context.Background())
	s := vm.State()
	assert.Equal(t, []string{"c", "b", "a"}, ids(s.All))
	assert.Nil(t, s.NextCursor)

	require.Len(t, s.AllItems, 5)
	assert.True(t, s.AllItems[0].Header)
	assert.Equal(t, "b", s.AllItems[1].Achievement.ID, "newest first within a day")
	assert.Equal(t, "c", s.AllItems[2].Achievement.ID)
	assert.True(t, s.AllItems[3].Header)
	assert.Equal(t, "a", s.AllItems[4].Achievement.ID)

	vm.LoadMore(context.Background())
	assert.Equal(t, []string{"", "2"}, repo.loads(), "no load after the last page")
}

func TestViewModel_ToggleAll(t *testing.T) {
	vm, _ := newTestVM(t, newFakeRepo())

	vm.ToggleAll()
	assert.True(t, vm.State().ShowingAll)
	vm.ToggleAll()
	assert.False(t, vm.State().ShowingAll)
}

// ── recent + optimistic updates ──────────────────────────────────────────────

func TestViewModel_RecentFeed(t *testing.T) {
	repo := newFakeRepo()
	repo.recentList = []models.Achievement{ach("r1", 2), ach("r2", 1)}
	vm, _ := newTestVM(t, repo)

	require.Eventually(t, func() bool { return vm.State().TotalWins == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"r1", "r2"}, ids(vm.State().Recent))
}

func TestViewModel_OnSavedAndDeleted(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[""] = models.Page{Data: []models.Achievement{ach("b", 20), ach("a", 10)}}
	vm, _ := newTestVM(t, repo)
	require.Eventually(t, func() bool { return len(vm.State().All) == 2 && !vm.State().LoadingMore }, time.Second, 5*time.Millisecond)

	vm.OpenSearch()
	vm.OnSearchQueryChange("a")
	require.Eventually(t, func() bool { return len(vm.State().SearchResults) == 1 }, time.Second, 5*time.Millisecond)

	// new record with the same timestamp as b goes first
	vm.OnSaved(ach("n", 20))
	assert.Equal(t, []string{"n", "b", "a"}, ids(vm.State().All))
	assert.Equal(t, "n", vm.State().Recent[0].ID)

	// edit of an existing record is replaced in place, search included
	edited := ach("id-a", 30)
	edited.Title = "edited"
	vm.OnSaved(edited)
	assert.Equal(t, "edited", vm.State().SearchResults[0].Title)
	assert.Equal(t, "id-a", vm.State().All[0].ID)

	vm.Delete(context.Background(), "id-a")
	s := vm.State()
	assert.Equal(t, []string{"n", "b", "a"}, ids(s.All))
	assert.Empty(t, s.SearchResults)
	assert.NotContains(t, ids(s.Recent), "id-a")
	assert.Equal(t, []string{"id-a"}, repo.deleted)
}

func TestViewModel_OnSaved_RecentLimit(t *testing.T) {
	repo := newFakeRepo()
	repo.recentList = []models.Achievement{ach("seed", -1)}
	vm, _ := newTestVM(t, repo)
	require.Eventually(t, func() bool { return vm.State().TotalWins == 1 }, time.Second, 5*time.Millisecond)

	for i := range 7 {
		vm.OnSaved(ach(string(rune('a'+i)), int64(i)))
	}
	assert.Len(t, vm.State().Recent, 5)
	assert.Equal(t, "g", vm.State().Recent[0].ID)
}

// ── auth events ──────────────────────────────────────────────────────────────

func TestViewModel_AuthChangeResets(t *testing.T) {
	repo := newFakeRepo()
	repo.pages[""] = models.Page{Data: []models.Achievement{ach("old", 1)}}
	vm, events := newTestVM(t, repo)
	require.Eventually(t, func() bool { return len(vm.State().All) == 1 }, time.Second, 5*time.Millisecond)

	repo.mu.Lock()
	repo.pages[""] = models.Page{Data: []models.Achievement{ach("new1", 2), ach("new2", 1)}}
	repo.mu.Unlock()

	vm.ToggleAll()
	events.Fire(session.AuthSignedIn)

	require.Eventually(t, func() bool { return len(vm.State().All) == 2 }, time.Second, 5*time.Millisecond)
	assert.False(t, vm.State().ShowingAll, "state starts over")
	assert.Equal(t, []string{"new1", "new2"}, ids(vm.State().All))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 2, repo.recentCalls, "recent feed is re-subscribed")
}

// ── grouping ─────────────────────────────────────────────────────────────────

func TestGroupByDay(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, time.UTC))

	base := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC).UnixMilli()
	items := GroupByDay([]models.Achievement{
		ach("late", base),
		ach("next-day", base+time.Hour.Milliseconds()),
		ach("early", base-20*time.Hour.Milliseconds()),
	}, time.UTC)

	require.Len(t, items, 5)
	assert.True(t, items[0].Header)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), items[0].Day)
	assert.Equal(t, "next-day", items[1].Achievement.ID)
	assert.True(t, items[2].Header)
	assert.Equal(t, "late", items[3].Achievement.ID)
	assert.Equal(t, "early", items[4].Achievement.ID)
}
