// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/internal/crash"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
)

// DefaultPageSize is used when LoadPage gets a non-positive page size.
const DefaultPageSize = 20

const (
	opAdd      = "remote.add"
	opUpdate   = "remote.update"
	opDelete   = "remote.delete"
	opLoadPage = "remote.load_page"
	opSearch   = "remote.search"
)

// IDGenerator issues document and file ids.
type IDGenerator interface {
	Generate() string
}

// RemoteAchievements is the BaaS-backed achievement store. Like the local
// store it never lets a failure escape: failures are reported once and come
// back as a *models.DegradedError next to a placeholder or empty value.
//
// Recent achievements are served from an in-memory cache filled by one lazy
// load of the first page and kept current by Add, Update and Delete.
type RemoteAchievements struct {
	client   adapter.BaaSAdapter
	breaker  *OrderingBreaker
	search   *Search
	ids      IDGenerator
	reporter crash.Reporter
	logger   *logger.Logger
	now      func() time.Time

	mu         sync.Mutex
	cache      []models.Achievement
	loaded     bool
	generation uint64
	recent     *utils.Broadcaster[[]models.Achievement]
}

func NewRemoteAchievements(
	client adapter.BaaSAdapter,
	ids IDGenerator,
	reporter crash.Reporter,
	logger *logger.Logger,
) *RemoteAchievements {
	breaker := &OrderingBreaker{}

	r := &RemoteAchievements{
		client:   client,
		breaker:  breaker,
		search:   NewSearch(client, breaker),
		ids:      ids,
		reporter: reporter,
		logger:   logger,
		now:      time.Now,
		cache:    []models.Achievement{},
		recent:   utils.NewBroadcaster[[]models.Achievement](),
	}
	r.recent.Publish([]models.Achievement{})

	return r
}

// Breaker exposes the ordering breaker shared by paging and search.
func (r *RemoteAchievements) Breaker() *OrderingBreaker {
	return r.breaker
}

// Add uploads the optional photo, writes the document and prepends the
// result to the recent cache.
func (r *RemoteAchievements) Add(ctx context.Context, in models.AchievementInput) (models.Achievement, error) {
	achievement, err := r.write(ctx, models.Achievement{
		ID:         r.ids.Generate(),
		Title:      in.Title,
		Details:    in.Details,
		AchievedAt: in.AchievedAt,
		Categories: nonNil(in.Categories),
		Tags:       nonNil(in.Tags),
	}, in.Photo, false)
	if err != nil {
		r.report(ctx, opAdd, err)
		return models.NewPlaceholder(models.RemoteErrorTitle, in.Details), models.Degraded(opAdd, err)
	}

	r.mutateCache(func(list []models.Achievement) []models.Achievement {
		return append([]models.Achievement{achievement}, list...)
	})

	return achievement, nil
}

// Update patches the document; without a new photo the current URL is kept.
func (r *RemoteAchievements) Update(ctx context.Context, in models.AchievementUpdate) (models.Achievement, error) {
	requested := models.Achievement{
		ID:         in.ID,
		Title:      in.Title,
		Details:    in.Details,
		AchievedAt: in.AchievedAt,
		PhotoURL:   in.CurrentPhotoURL,
		Categories: nonNil(in.Categories),
		Tags:       nonNil(in.Tags),
	}

	achievement, err := r.write(ctx, requested, in.Photo, true)
	if err != nil {
		r.report(ctx, opUpdate, err)
		return requested, models.Degraded(opUpdate, err)
	}

	r.mutateCache(func(list []models.Achievement) []models.Achievement {
		for i := range list {
			if list[i].ID == achievement.ID {
				list[i] = achievement
			}
		}
		return list
	})

	return achievement, nil
}

func (r *RemoteAchievements) Delete(ctx context.Context, id string) error {
	if err := r.client.DeleteDocument(ctx, id); err != nil && !isNotFound(err) {
		r.report(ctx, opDelete, err)
		return models.Degraded(opDelete, err)
	}

	r.mutateCache(func(list []models.Achievement) []models.Achievement {
		return slices.DeleteFunc(list, func(a models.Achievement) bool { return a.ID == id })
	})

	return nil
}

func (r *RemoteAchievements) write(ctx context.Context, a models.Achievement, photo *models.Photo, update bool) (models.Achievement, error) {
	account, err := r.client.GetAccount(ctx)
	if err != nil {
		return a, fmt.Errorf("resolve account: %w", err)
	}
	permissions := adapter.Permissions(account.ID)

	if photo != nil && len(photo.Bytes) > 0 {
		file, err := r.client.CreateFile(ctx, r.ids.Generate(), *photo, permissions)
		if err != nil {
			return a, fmt.Errorf("upload photo: %w", err)
		}
		url := r.client.FileViewURL(file.ID)
		a.PhotoURL = &url
	}

	data := toDocumentData(a)
	if update {
		_, err = r.client.UpdateDocument(ctx, a.ID, data, permissions)
	} else {
		_, err = r.client.CreateDocument(ctx, a.ID, data, permissions)
	}
	if err != nil {
		return a, fmt.Errorf("write document: %w", err)
	}

	return a, nil
}

// Recent returns the cached recent list, truncated to limit. The first call
// starts one background load of the first page; later calls only subscribe.
// The channel is closed when ctx is done.
func (r *RemoteAchievements) Recent(ctx context.Context, limit int) <-chan []models.Achievement {
	r.mu.Lock()
	if !r.loaded {
		r.loaded = true
		go r.loadRecent(context.WithoutCancel(ctx), r.generation, limit)
	}
	r.mu.Unlock()

	out := make(chan []models.Achievement, 1)
	updates := r.recent.Subscribe(ctx)

	go func() {
		defer close(out)
		for list := range updates {
			if limit > 0 && len(list) > limit {
				list = list[:limit]
			}
			utils.SendLatest(out, list)
		}
	}()

	return out
}

func (r *RemoteAchievements) loadRecent(ctx context.Context, generation uint64, limit int) {
	page, err := r.LoadPage(ctx, nil, limit)
	if err != nil {
		// already reported by LoadPage
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if generation != r.generation {
		// the cache was reset while loading
		return
	}
	r.cache = page.Data
	r.recent.Publish(slices.Clone(r.cache))
}

// ResetCache drops the recent cache so that the next Recent call loads the
// first page again. Used when the signed-in account changes.
func (r *RemoteAchievements) ResetCache() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	r.loaded = false
	r.cache = []models.Achievement{}
	r.recent.Reset()
	r.recent.Publish([]models.Achievement{})
}

func (r *RemoteAchievements) mutateCache(fn func([]models.Achievement) []models.Achievement) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache = fn(slices.Clone(r.cache))
	r.recent.Publish(slices.Clone(r.cache))
}

// LoadPage lists one page ordered by achievedAt descending. The cursor is
// the id of the last document of the previous page. NextCursor is set only
// when a full page came back.
func (r *RemoteAchievements) LoadPage(ctx context.Context, cursor *string, pageSize int) (models.Page, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	queries := []adapter.Query{}
	if r.breaker.OrderingSupported() {
		queries = append(queries, adapter.OrderDesc(fieldAchievedAt))
	}
	queries = append(queries, adapter.Limit(pageSize))
	if cursor != nil && *cursor != "" {
		queries = append(queries, adapter.CursorAfter(*cursor))
	}

	list, err := listDocuments(ctx, r.client, r.breaker, queries)
	if err != nil {
		r.report(ctx, opLoadPage, err)
		return models.Page{Data: []models.Achievement{}}, models.Degraded(opLoadPage, err)
	}

	now := r.now()
	data := make([]models.Achievement, 0, len(list.Documents))
	for _, doc := range list.Documents {
		data = append(data, toAchievement(doc, now))
	}
	sortByAchievedAtDesc(data)

	page := models.Page{Data: data}
	if n := len(list.Documents); n == pageSize {
		next := list.Documents[n-1].ID
		page.NextCursor = &next
	}

	return page, nil
}

func (r *RemoteAchievements) Search(ctx context.Context, query string) ([]models.Achievement, error) {
	list, err := r.search.Search(ctx, query)
	if err != nil {
		r.report(ctx, opSearch, err)
		return []models.Achievement{}, models.Degraded(opSearch, err)
	}
	return list, nil
}

func (r *RemoteAchievements) report(ctx context.Context, op string, err error) {
	r.logger.Err(err).Str("func", "RemoteAchievements").Str("op", op).Msg("remote store operation degraded")
	r.reporter.Capture(ctx, op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, adapter.ErrNotFound)
}
