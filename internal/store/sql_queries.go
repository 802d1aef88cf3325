// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const achievementsTable = "achievements"

var achievementColumns = []string{
	"id",
	"title",
	"details",
	"achieved_at",
	"photo_url",
	"categories_csv",
	"tags_csv",
}

// psql builds statements with SQLite "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// achievementRow is the storage shape of an achievement.
type achievementRow struct {
	ID            string
	Title         string
	Details       *string
	AchievedAt    int64
	PhotoURL      *string
	CategoriesCSV *string
	TagsCSV       *string
}

func buildUpsertQuery(row achievementRow) (string, []any, error) {
	return psql.Replace(achievementsTable).
		Columns(achievementColumns...).
		Values(row.ID, row.Title, row.Details, row.AchievedAt, row.PhotoURL, row.CategoriesCSV, row.TagsCSV).
		ToSql()
}

func buildDeleteQuery(id string) (string, []any, error) {
	return psql.Delete(achievementsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildClearQuery() (string, []any, error) {
	return psql.Delete(achievementsTable).ToSql()
}

func buildPageQuery(limit, offset uint64) (string, []any, error) {
	return psql.Select(achievementColumns...).
		From(achievementsTable).
		OrderBy("achieved_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildCountQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(achievementsTable).
		ToSql()
}

// buildSearchQuery matches query as a substring of title or details.
// LIKE wildcards inside query are escaped so they match literally.
func buildSearchQuery(query string, limit uint64) (string, []any, error) {
	pattern := "%" + escapeLike(query) + "%"

	return psql.Select(achievementColumns...).
		From(achievementsTable).
		Where(sq.Or{
			sq.Expr(`title LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`details LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("achieved_at DESC").
		Limit(limit).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func wrapBuildErr(op string, err error) error {
	return fmt.Errorf("%w (%s): %w", ErrBuildingSQLQuery, op, err)
}
