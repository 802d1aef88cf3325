// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package home drives the home screen: the live recent strip, the paged
// "all" list grouped by day and a debounced search.
package home

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/arcent/internal/config"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/session"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
)

// Achievements is the part of the repository the home screen reads.
type Achievements interface {
	Recent(ctx context.Context, limit int) <-chan []models.Achievement
	LoadPage(ctx context.Context, cursor *string, pageSize int) (models.Page, error)
	Search(ctx context.Context, query string) ([]models.Achievement, error)
	Delete(ctx context.Context, id string) error
}

// AuthEvents delivers identity changes.
type AuthEvents interface {
	Subscribe(ctx context.Context) <-chan session.AuthChange
}

// ViewModel holds home screen state. Repository failures are never surfaced
// here: degraded results come back as usable empty values.
type ViewModel struct {
	repo   Achievements
	events AuthEvents
	cfg    config.Home
	loc    *time.Location
	logger *logger.Logger

	mu    sync.Mutex
	state State
	// epoch changes on every reset; page loads started before it are dropped
	epoch uint64
	// searchGen changes when a search fires, on blank input and on reset;
	// results tagged with an older value are dropped
	searchGen    uint64
	lastSearched string
	cancelRecent context.CancelFunc

	states  *utils.Broadcaster[State]
	queries chan string
	wg      sync.WaitGroup
}

func NewViewModel(repo Achievements, events AuthEvents, cfg config.Home, logger *logger.Logger) *ViewModel {
	vm := &ViewModel{
		repo:    repo,
		events:  events,
		cfg:     cfg,
		loc:     time.Local,
		logger:  logger,
		state:   emptyState(),
		states:  utils.NewBroadcaster[State](),
		queries: make(chan string, 1),
	}
	vm.states.Publish(vm.state)
	return vm
}

// Start subscribes to the recent feed and auth events, loads the first page
// and runs the search pipeline. Everything stops when ctx is done.
func (vm *ViewModel) Start(ctx context.Context) {
	changes := vm.events.Subscribe(ctx)
	vm.restartRecent(ctx)

	vm.goTracked(func() { vm.loadPage(ctx, true) })
	vm.goTracked(func() { vm.watchAuth(ctx, changes) })
	vm.goTracked(func() { vm.runSearchPipeline(ctx) })
}

// Wait blocks until every goroutine started by the view-model has returned.
func (vm *ViewModel) Wait() {
	vm.wg.Wait()
}

// State returns the current snapshot.
func (vm *ViewModel) State() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Subscribe streams snapshots, starting with the current one.
func (vm *ViewModel) Subscribe(ctx context.Context) <-chan State {
	return vm.states.Subscribe(ctx)
}

func (vm *ViewModel) goTracked(fn func()) {
	vm.wg.Add(1)
	go func() {
		defer vm.wg.Done()
		fn()
	}()
}

// update applies fn to the state under the lock and publishes the result.
func (vm *ViewModel) update(fn func(s *State)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	fn(&vm.state)
	vm.states.Publish(vm.state)
}

// ── recent strip ─────────────────────────────────────────────────────────────

func (vm *ViewModel) restartRecent(ctx context.Context) {
	recentCtx, cancel := context.WithCancel(ctx)

	vm.mu.Lock()
	if vm.cancelRecent != nil {
		vm.cancelRecent()
	}
	vm.cancelRecent = cancel
	vm.mu.Unlock()

	feed := vm.repo.Recent(recentCtx, vm.cfg.RecentLimit)
	vm.goTracked(func() {
		for list := range feed {
			vm.mu.Lock()
			// a canceled feed must not overwrite a reset state
			if recentCtx.Err() == nil {
				vm.state.Recent = slices.Clone(list)
				vm.state.TotalWins = len(list)
				vm.states.Publish(vm.state)
			}
			vm.mu.Unlock()
		}
	})
}

func (vm *ViewModel) watchAuth(ctx context.Context, changes <-chan session.AuthChange) {
	for change := range changes {
		vm.logger.Debug().Str("func", "ViewModel.watchAuth").Stringer("change", change).Msg("resetting home state")

		vm.mu.Lock()
		vm.cancelRecent()
		vm.epoch++
		vm.searchGen++
		vm.lastSearched = ""
		vm.state = emptyState()
		vm.states.Publish(vm.state)
		vm.mu.Unlock()

		// the active backend may have changed
		vm.restartRecent(ctx)
		vm.loadPage(ctx, true)
	}
}

// ── paging ───────────────────────────────────────────────────────────────────

// ToggleAll switches between the recent strip and the full list.
func (vm *ViewModel) ToggleAll() {
	vm.update(func(s *State) { s.ShowingAll = !s.ShowingAll })
}

// LoadMore fetches the next page unless one is loading or the list is
// exhausted. It blocks until the page is merged.
func (vm *ViewModel) LoadMore(ctx context.Context) {
	vm.loadPage(ctx, false)
}

// loadPage loads the first page when reset is set, the next one otherwise.
func (vm *ViewModel) loadPage(ctx context.Context, reset bool) {
	vm.mu.Lock()
	if !reset && (vm.state.LoadingMore || vm.state.NextCursor == nil) {
		vm.mu.Unlock()
		return
	}
	epoch := vm.epoch
	var cursor *string
	if !reset {
		cursor = vm.state.NextCursor
	}
	vm.state.LoadingMore = true
	vm.states.Publish(vm.state)
	vm.mu.Unlock()

	page, _ := vm.repo.LoadPage(ctx, cursor, vm.cfg.PageSize)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if epoch != vm.epoch {
		// state was reset while loading; the reset started its own load
		return
	}

	merged := page.Data
	if !reset {
		merged = append(slices.Clone(vm.state.All), page.Data...)
	}
	if merged == nil {
		merged = []models.Achievement{}
	}

	vm.state.All = merged
	vm.state.AllItems = GroupByDay(merged, vm.loc)
	vm.state.NextCursor = page.NextCursor
	vm.state.LoadingMore = false
	vm.states.Publish(vm.state)
}

// ── optimistic updates ───────────────────────────────────────────────────────

// OnSaved splices a into every list it belongs to without a re-fetch.
func (vm *ViewModel) OnSaved(a models.Achievement) {
	vm.update(func(s *State) {
		all := splice(s.All, a)
		slices.SortStableFunc(all, func(x, y models.Achievement) int {
			if c := compareDesc(x.AchievedAt, y.AchievedAt); c != 0 {
				return c
			}
			// the saved record leads its timestamp
			switch {
			case x.ID == a.ID:
				return -1
			case y.ID == a.ID:
				return 1
			default:
				return 0
			}
		})

		recent := splice(s.Recent, a)
		if limit := vm.cfg.RecentLimit; limit > 0 && len(recent) > limit {
			recent = recent[:limit]
		}

		s.All = all
		s.AllItems = GroupByDay(all, vm.loc)
		s.Recent = recent
		s.SearchResults = replaceIn(s.SearchResults, a)
	})
}

// OnDeleted drops id from every list.
func (vm *ViewModel) OnDeleted(id string) {
	vm.update(func(s *State) {
		s.All = without(s.All, id)
		s.AllItems = GroupByDay(s.All, vm.loc)
		s.Recent = without(s.Recent, id)
		s.SearchResults = without(s.SearchResults, id)
	})
}

// Delete removes id from the repository, then from the lists. The lists are
// updated even when the repository call degraded.
func (vm *ViewModel) Delete(ctx context.Context, id string) {
	_ = vm.repo.Delete(ctx, id)
	vm.OnDeleted(id)
}

// ── search ───────────────────────────────────────────────────────────────────

func (vm *ViewModel) OpenSearch() {
	vm.resetSearch(true)
}

func (vm *ViewModel) CloseSearch() {
	vm.resetSearch(false)
}

func (vm *ViewModel) resetSearch(searching bool) {
	vm.mu.Lock()
	vm.searchGen++
	vm.lastSearched = ""
	vm.state.Searching = searching
	vm.state.SearchQuery = ""
	vm.state.SearchResults = []models.Achievement{}
	vm.state.SearchLoading = false
	vm.states.Publish(vm.state)
	vm.mu.Unlock()

	utils.SendLatest(vm.queries, "")
}

// OnSearchQueryChange records the typed query. A blank query clears the
// results at once; anything else is searched after the debounce window,
// and only the latest query's results are ever applied.
func (vm *ViewModel) OnSearchQueryChange(q string) {
	vm.mu.Lock()
	vm.state.SearchQuery = q
	if strings.TrimSpace(q) == "" {
		vm.searchGen++
		vm.lastSearched = ""
		vm.state.SearchResults = []models.Achievement{}
		vm.state.SearchLoading = false
	}
	vm.states.Publish(vm.state)
	vm.mu.Unlock()

	utils.SendLatest(vm.queries, q)
}

func (vm *ViewModel) runSearchPipeline(ctx context.Context) {
	var (
		pending  string
		fire     <-chan time.Time
		inFlight context.CancelFunc = func() {}
	)
	defer func() { inFlight() }()

	for {
		select {
		case <-ctx.Done():
			return
		case q := <-vm.queries:
			pending = q
			fire = time.After(vm.cfg.SearchDebounce)
		case <-fire:
			fire = nil

			vm.mu.Lock()
			if pending == vm.lastSearched {
				vm.mu.Unlock()
				continue
			}
			vm.lastSearched = pending
			vm.searchGen++
			gen := vm.searchGen
			vm.mu.Unlock()

			inFlight()
			searchCtx, cancel := context.WithCancel(ctx)
			inFlight = cancel

			query := pending
			vm.goTracked(func() { vm.search(searchCtx, query, gen) })
		}
	}
}

func (vm *ViewModel) search(ctx context.Context, raw string, gen uint64) {
	q := strings.TrimSpace(raw)
	if q == "" {
		vm.applySearch(gen, func(s *State) {
			s.SearchResults = []models.Achievement{}
			s.SearchLoading = false
		})
		return
	}

	vm.applySearch(gen, func(s *State) { s.SearchLoading = true })

	// the first search waits for a running page load
	if !vm.waitIdle(ctx) {
		return
	}

	results, _ := vm.repo.Search(ctx, q)
	if ctx.Err() != nil {
		return
	}
	if results == nil {
		results = []models.Achievement{}
	}

	vm.applySearch(gen, func(s *State) {
		s.SearchResults = results
		s.SearchLoading = false
	})
}

// applySearch updates the state only if no newer search fired and the query
// was not cleared since gen.
func (vm *ViewModel) applySearch(gen uint64, fn func(s *State)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if gen != vm.searchGen {
		return
	}
	fn(&vm.state)
	vm.states.Publish(vm.state)
}

// waitIdle blocks until no page load is running. It returns false when ctx
// ends first.
func (vm *ViewModel) waitIdle(ctx context.Context) bool {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for s := range vm.states.Subscribe(subCtx) {
		if !s.LoadingMore {
			return true
		}
	}
	return false
}
