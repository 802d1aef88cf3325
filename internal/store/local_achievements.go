// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/arcent/internal/crash"
	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/utils"
	"github.com/MKhiriev/arcent/models"
)

const (
	// DefaultPageSize is used when LoadPage gets a non-positive page size.
	DefaultPageSize = 20
	// MaxSearchResults caps the number of local search hits.
	MaxSearchResults = 400
)

// Operation names passed to the crash reporter and DegradedError.
const (
	opAdd      = "local.add"
	opUpdate   = "local.update"
	opDelete   = "local.delete"
	opRecent   = "local.recent"
	opLoadPage = "local.load_page"
	opSearch   = "local.search"
	opWipe     = "local.wipe"
	opPhoto    = "local.save_photo"
)

// LocalAchievements is the on-device achievement store. Failures never
// escape: each one is reported once and the caller gets a placeholder or an
// empty result together with a *models.DegradedError.
type LocalAchievements struct {
	repo     AchievementRepository
	photos   PhotoStorage
	ids      IDGenerator
	reporter crash.Reporter
	logger   *logger.Logger

	changes *utils.Broadcaster[struct{}]
}

func NewLocalAchievements(
	repo AchievementRepository,
	photos PhotoStorage,
	ids IDGenerator,
	reporter crash.Reporter,
	logger *logger.Logger,
) *LocalAchievements {
	return &LocalAchievements{
		repo:     repo,
		photos:   photos,
		ids:      ids,
		reporter: reporter,
		logger:   logger,
		changes:  utils.NewBroadcaster[struct{}](),
	}
}

func (s *LocalAchievements) Add(ctx context.Context, in models.AchievementInput) (models.Achievement, error) {
	achievement := models.Achievement{
		ID:         s.ids.Generate(),
		Title:      in.Title,
		Details:    in.Details,
		AchievedAt: in.AchievedAt,
		PhotoURL:   s.savePhoto(ctx, in.Title, in.Photo),
		Categories: labels(in.Categories),
		Tags:       labels(in.Tags),
	}

	if err := s.repo.Insert(ctx, achievement); err != nil {
		s.report(ctx, opAdd, err)
		return models.NewPlaceholder(models.LocalErrorTitle, in.Details), models.Degraded(opAdd, err)
	}

	s.logger.Debug().Str("func", "LocalAchievements.Add").Str("id", achievement.ID).Msg("achievement saved")
	s.Notify()

	return achievement, nil
}

// Update rewrites the achievement. Without a new photo (or when saving it
// fails) the current photo URL is kept. The replaced photo file stays on
// disk.
func (s *LocalAchievements) Update(ctx context.Context, in models.AchievementUpdate) (models.Achievement, error) {
	photoURL := in.CurrentPhotoURL
	if saved := s.savePhoto(ctx, in.Title, in.Photo); saved != nil {
		photoURL = saved
	}

	achievement := models.Achievement{
		ID:         in.ID,
		Title:      in.Title,
		Details:    in.Details,
		AchievedAt: in.AchievedAt,
		PhotoURL:   photoURL,
		Categories: labels(in.Categories),
		Tags:       labels(in.Tags),
	}

	if err := s.repo.Insert(ctx, achievement); err != nil {
		s.report(ctx, opUpdate, err)
		return achievement, models.Degraded(opUpdate, err)
	}

	s.Notify()

	return achievement, nil
}

func (s *LocalAchievements) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.report(ctx, opDelete, err)
		return models.Degraded(opDelete, err)
	}

	s.Notify()

	return nil
}

// Recent returns a live feed of the limit most recent achievements. The
// current snapshot is sent right away and a new one after every change.
// The channel holds only the latest snapshot and is closed when ctx is done.
func (s *LocalAchievements) Recent(ctx context.Context, limit int) <-chan []models.Achievement {
	out := make(chan []models.Achievement, 1)
	changes := s.changes.Subscribe(ctx)

	go func() {
		defer close(out)

		utils.SendLatest(out, s.recentSnapshot(ctx, limit))
		for range changes {
			if ctx.Err() != nil {
				return
			}
			utils.SendLatest(out, s.recentSnapshot(ctx, limit))
		}
	}()

	return out
}

func (s *LocalAchievements) recentSnapshot(ctx context.Context, limit int) []models.Achievement {
	if limit <= 0 {
		return []models.Achievement{}
	}

	list, err := s.repo.Recent(ctx, uint64(limit))
	if err != nil {
		if ctx.Err() == nil {
			s.report(ctx, opRecent, err)
		}
		return []models.Achievement{}
	}

	return list
}

// LoadPage reads one page ordered by achievedAt descending. The cursor is
// the row offset to start from; nil or empty means the first page.
// NextCursor is nil once the page is empty or the offset reaches the total
// row count.
func (s *LocalAchievements) LoadPage(ctx context.Context, cursor *string, pageSize int) (models.Page, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	offset, err := parseCursor(cursor)
	if err != nil {
		s.report(ctx, opLoadPage, err)
		return emptyPage(), models.Degraded(opLoadPage, err)
	}

	data, err := s.repo.Page(ctx, uint64(pageSize), offset)
	if err != nil {
		s.report(ctx, opLoadPage, err)
		return emptyPage(), models.Degraded(opLoadPage, err)
	}

	if len(data) == 0 {
		return models.Page{Data: data}, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.report(ctx, opLoadPage, err)
		return models.Page{Data: data}, models.Degraded(opLoadPage, err)
	}

	page := models.Page{Data: data}
	next := offset + uint64(len(data))
	if next < total {
		cursor := strconv.FormatUint(next, 10)
		page.NextCursor = &cursor
	}

	return page, nil
}

// Search matches query against title and details, most recent first,
// returning at most MaxSearchResults hits. A blank query matches nothing.
func (s *LocalAchievements) Search(ctx context.Context, query string) ([]models.Achievement, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Achievement{}, nil
	}

	list, err := s.repo.Search(ctx, query, MaxSearchResults)
	if err != nil {
		s.report(ctx, opSearch, err)
		return []models.Achievement{}, models.Degraded(opSearch, err)
	}

	return list, nil
}

// Wipe deletes every achievement and the photo directory. Both steps run
// even when the first one fails.
func (s *LocalAchievements) Wipe(ctx context.Context) error {
	var errs []error

	if err := s.repo.ClearAll(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.photos.RemoveAll(ctx); err != nil {
		errs = append(errs, err)
	}

	s.Notify()

	if err := errors.Join(errs...); err != nil {
		s.report(ctx, opWipe, err)
		return models.Degraded(opWipe, err)
	}

	s.logger.Info().Str("func", "LocalAchievements.Wipe").Msg("local data wiped")
	return nil
}

// Notify tells recent feeds that the table changed. The database watcher
// calls it for writes made outside this store.
func (s *LocalAchievements) Notify() {
	s.changes.Publish(struct{}{})
}

func (s *LocalAchievements) savePhoto(ctx context.Context, title string, photo *models.Photo) *string {
	if photo == nil || len(photo.Bytes) == 0 {
		return nil
	}

	uri, err := s.photos.Save(ctx, title, *photo)
	if err != nil {
		s.report(ctx, opPhoto, err)
		return nil
	}

	return &uri
}

func (s *LocalAchievements) report(ctx context.Context, op string, err error) {
	s.logger.Err(err).Str("func", "LocalAchievements").Str("op", op).Msg("local store operation degraded")
	s.reporter.Capture(ctx, op, err)
}

func parseCursor(cursor *string) (uint64, error) {
	if cursor == nil || *cursor == "" {
		return 0, nil
	}

	offset, err := strconv.ParseUint(*cursor, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, *cursor)
	}

	return offset, nil
}

func emptyPage() models.Page {
	return models.Page{Data: []models.Achievement{}}
}

func labels(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
