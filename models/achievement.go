// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Field limits enforced before any backend call.
const (
	MaxTitleLength   = 175
	MaxDetailsLength = 4750
)

// Placeholder titles returned when a backend could not persist a record.
const (
	LocalErrorTitle  = "local_error"
	RemoteErrorTitle = "remote_error"
)

// Achievement is a single recorded accomplishment.
//
// AchievedAt is the semantic moment the achievement happened, in epoch
// milliseconds, and is the sort key of every listing (descending).
// PhotoURL is either a "file://" URI owned by the local store or a
// fully-qualified remote view URL.
type Achievement struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Details    *string  `json:"details,omitempty"`
	AchievedAt int64    `json:"achievedAt"`
	PhotoURL   *string  `json:"photoUrl,omitempty"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// AchievedTime returns AchievedAt as a time.Time in the local zone.
func (a Achievement) AchievedTime() time.Time {
	return time.UnixMilli(a.AchievedAt)
}

// Photo is a raw image attached to a create or update request.
type Photo struct {
	Bytes    []byte
	MIME     string
	FileName string
}

// AchievementInput carries the user-editable fields of a save action.
type AchievementInput struct {
	Title      string
	Details    *string
	AchievedAt int64
	Photo      *Photo
	Categories []string
	Tags       []string
}

// AchievementUpdate targets an existing achievement. CurrentPhotoURL is kept
// when Photo is nil.
type AchievementUpdate struct {
	ID string
	AchievementInput
	CurrentPhotoURL *string
}

// Page is one batch of a paged listing. A nil NextCursor means there is no
// more data. Cursors are only meaningful to the backend that produced them.
type Page struct {
	Data       []Achievement
	NextCursor *string
}

// NewPlaceholder builds the best-effort record handed back when a save
// could not be persisted. Each placeholder gets its own id.
func NewPlaceholder(title string, details *string) Achievement {
	return Achievement{
		ID:         uuid.NewString(),
		Title:      title,
		Details:    details,
		AchievedAt: time.Now().UnixMilli(),
		Categories: []string{},
		Tags:       []string{},
	}
}

// StringPtr returns nil for a blank string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, treating nil as "".
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
