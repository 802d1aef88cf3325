// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/arcent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AchievementRepository is the low-level SQLite achievements table.
type AchievementRepository interface {
	Insert(ctx context.Context, achievement models.Achievement) error
	Delete(ctx context.Context, id string) error
	Page(ctx context.Context, limit, offset uint64) ([]models.Achievement, error)
	Count(ctx context.Context) (uint64, error)
	Search(ctx context.Context, query string, limit uint64) ([]models.Achievement, error)
	Recent(ctx context.Context, limit uint64) ([]models.Achievement, error)
	ClearAll(ctx context.Context) error
}

// PhotoStorage keeps achievement photos in an app-private directory.
type PhotoStorage interface {
	// Save writes photo and returns its file:// URI.
	Save(ctx context.Context, title string, photo models.Photo) (string, error)
	// RemoveAll deletes the whole photo directory.
	RemoveAll(ctx context.Context) error
}

// IDGenerator issues identifiers for new local achievements.
type IDGenerator interface {
	Generate() string
}
