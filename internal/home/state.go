// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package home

import (
	"slices"
	"time"

	"github.com/MKhiriev/arcent/models"
)

// State is an immutable snapshot of the home screen. Mutations always build
// new slices, so a published State can be read without locking.
type State struct {
	Recent    []models.Achievement
	TotalWins int

	All         []models.Achievement
	AllItems    []ListItem
	NextCursor  *string
	LoadingMore bool
	ShowingAll  bool

	Searching     bool
	SearchQuery   string
	SearchResults []models.Achievement
	SearchLoading bool
}

// ListItem is one row of the grouped "all" list: either a day header or an
// achievement.
type ListItem struct {
	Header      bool
	Day         time.Time
	Achievement models.Achievement
}

func emptyState() State {
	return State{
		Recent:        []models.Achievement{},
		All:           []models.Achievement{},
		AllItems:      []ListItem{},
		SearchResults: []models.Achievement{},
	}
}

// GroupByDay orders list newest first and inserts a header before each
// calendar day in loc.
func GroupByDay(list []models.Achievement, loc *time.Location) []ListItem {
	if len(list) == 0 {
		return []ListItem{}
	}

	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b models.Achievement) int {
		return compareDesc(a.AchievedAt, b.AchievedAt)
	})

	items := make([]ListItem, 0, len(sorted)+1)
	var current time.Time
	for i, a := range sorted {
		day := dayStart(a.AchievedAt, loc)
		if i == 0 || !day.Equal(current) {
			current = day
			items = append(items, ListItem{Header: true, Day: day})
		}
		items = append(items, ListItem{Day: day, Achievement: a})
	}

	return items
}

func dayStart(millis int64, loc *time.Location) time.Time {
	t := time.UnixMilli(millis).In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// splice inserts a into list or replaces the entry with the same id.
func splice(list []models.Achievement, a models.Achievement) []models.Achievement {
	out := slices.Clone(list)
	if i := slices.IndexFunc(out, func(x models.Achievement) bool { return x.ID == a.ID }); i >= 0 {
		out[i] = a
		return out
	}
	return append([]models.Achievement{a}, out...)
}

func without(list []models.Achievement, id string) []models.Achievement {
	return slices.DeleteFunc(slices.Clone(list), func(a models.Achievement) bool { return a.ID == id })
}

func replaceIn(list []models.Achievement, a models.Achievement) []models.Achievement {
	out := slices.Clone(list)
	for i := range out {
		if out[i].ID == a.ID {
			out[i] = a
		}
	}
	return out
}
