// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/arcent/internal/adapter"
	"github.com/MKhiriev/arcent/models"
)

// ISOLayout is the achievedAt wire format.
const ISOLayout = "2006-01-02T15:04:05Z"

// Document attribute names.
const (
	fieldTitle      = "title"
	fieldDetails    = "details"
	fieldAchievedAt = "achievedAt"
	fieldPhotoURL   = "photoUrl"
	fieldCategories = "categories"
	fieldTags       = "tags"
)

// FormatISO renders epoch milliseconds as a UTC timestamp with second
// precision.
func FormatISO(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format(ISOLayout)
}

// ParseEpoch converts a stored achievedAt value into epoch milliseconds.
// Numbers are taken as milliseconds. Strings may use ISOLayout or RFC 3339
// with fractional seconds and an offset.
func ParseEpoch(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		if t, err := time.Parse(ISOLayout, v); err == nil {
			return t.UnixMilli(), true
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UnixMilli(), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// toAchievement maps a document. A missing or unreadable achievedAt falls
// back to now.
func toAchievement(doc adapter.Document, now time.Time) models.Achievement {
	achievedAt, ok := ParseEpoch(doc.Data[fieldAchievedAt])
	if !ok {
		achievedAt = now.UnixMilli()
	}

	title, _ := doc.Data[fieldTitle].(string)

	return models.Achievement{
		ID:         doc.ID,
		Title:      title,
		Details:    optionalString(doc.Data[fieldDetails]),
		AchievedAt: achievedAt,
		PhotoURL:   optionalString(doc.Data[fieldPhotoURL]),
		Categories: stringList(doc.Data[fieldCategories]),
		Tags:       stringList(doc.Data[fieldTags]),
	}
}

func toDocumentData(a models.Achievement) map[string]any {
	return map[string]any{
		fieldTitle:      a.Title,
		fieldDetails:    models.StringValue(a.Details),
		fieldAchievedAt: FormatISO(a.AchievedAt),
		fieldPhotoURL:   models.StringValue(a.PhotoURL),
		fieldCategories: nonNil(a.Categories),
		fieldTags:       nonNil(a.Tags),
	}
}

func optionalString(value any) *string {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// stringList keeps the string members of a JSON array.
func stringList(value any) []string {
	out := []string{}
	switch list := value.(type) {
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, list...)
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// sortByAchievedAtDesc sorts newest first, keeping server order for ties.
func sortByAchievedAtDesc(list []models.Achievement) {
	slices.SortStableFunc(list, func(a, b models.Achievement) int {
		return cmp.Compare(b.AchievedAt, a.AchievedAt)
	})
}
