// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/models"
)

type achievementRepository struct {
	*DB
	logger *logger.Logger
}

func NewAchievementRepository(db *DB, logger *logger.Logger) AchievementRepository {
	return &achievementRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *achievementRepository) Insert(ctx context.Context, achievement models.Achievement) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertQuery(toRow(achievement))
	if err != nil {
		return wrapBuildErr("insert", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "achievementRepository.Insert").
			Str("id", achievement.ID).
			Msg("failed to execute upsert for achievement")
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, achievement.ID, err)
	}

	return nil
}

func (r *achievementRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(id)
	if err != nil {
		return wrapBuildErr("delete", err)
	}

	// deleting a missing row affects nothing and is not an error
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "achievementRepository.Delete").
			Str("id", id).
			Msg("failed to delete achievement")
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, id, err)
	}

	return nil
}

func (r *achievementRepository) Page(ctx context.Context, limit, offset uint64) ([]models.Achievement, error) {
	query, args, err := buildPageQuery(limit, offset)
	if err != nil {
		return nil, wrapBuildErr("page", err)
	}

	return r.queryAchievements(ctx, "achievementRepository.Page", query, args)
}

func (r *achievementRepository) Recent(ctx context.Context, limit uint64) ([]models.Achievement, error) {
	query, args, err := buildPageQuery(limit, 0)
	if err != nil {
		return nil, wrapBuildErr("recent", err)
	}

	return r.queryAchievements(ctx, "achievementRepository.Recent", query, args)
}

func (r *achievementRepository) Search(ctx context.Context, q string, limit uint64) ([]models.Achievement, error) {
	query, args, err := buildSearchQuery(q, limit)
	if err != nil {
		return nil, wrapBuildErr("search", err)
	}

	return r.queryAchievements(ctx, "achievementRepository.Search", query, args)
}

func (r *achievementRepository) Count(ctx context.Context) (uint64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountQuery()
	if err != nil {
		return 0, wrapBuildErr("count", err)
	}

	var count uint64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "achievementRepository.Count").
			Msg("failed to count achievements")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func (r *achievementRepository) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearQuery()
	if err != nil {
		return wrapBuildErr("clear", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "achievementRepository.ClearAll").
			Msg("failed to clear achievements")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *achievementRepository) queryAchievements(ctx context.Context, funcName, query string, args []any) ([]models.Achievement, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for achievements")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Achievement, 0)
	for rows.Next() {
		var row achievementRow
		if scanErr := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Details,
			&row.AchievedAt,
			&row.PhotoURL,
			&row.CategoriesCSV,
			&row.TagsCSV,
		); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan achievement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, row.toDomain())
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error iterating achievement rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func toRow(a models.Achievement) achievementRow {
	return achievementRow{
		ID:            a.ID,
		Title:         a.Title,
		Details:       a.Details,
		AchievedAt:    a.AchievedAt,
		PhotoURL:      a.PhotoURL,
		CategoriesCSV: EncodeCSV(a.Categories),
		TagsCSV:       EncodeCSV(a.Tags),
	}
}

func (row achievementRow) toDomain() models.Achievement {
	return models.Achievement{
		ID:         row.ID,
		Title:      row.Title,
		Details:    nullable(row.Details),
		AchievedAt: row.AchievedAt,
		PhotoURL:   nullable(row.PhotoURL),
		Categories: DecodeCSV(row.CategoriesCSV),
		Tags:       DecodeCSV(row.TagsCSV),
	}
}

func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
