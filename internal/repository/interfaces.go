// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package repository routes achievement operations to the storage backend
// selected by the user's current provider preference.
package repository

import (
	"context"

	"github.com/MKhiriev/arcent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock -mock_names=AchievementRepository=MockAchievements

// AchievementRepository is implemented by both the local and the remote
// store. A non-nil error is always a *models.DegradedError that has already
// been reported; the returned value is usable either way.
type AchievementRepository interface {
	Add(ctx context.Context, in models.AchievementInput) (models.Achievement, error)
	Update(ctx context.Context, in models.AchievementUpdate) (models.Achievement, error)
	Delete(ctx context.Context, id string) error
	// Recent streams the newest achievements until ctx is done.
	Recent(ctx context.Context, limit int) <-chan []models.Achievement
	LoadPage(ctx context.Context, cursor *string, pageSize int) (models.Page, error)
	Search(ctx context.Context, query string) ([]models.Achievement, error)
}

// Wiper deletes every achievement and photo a backend owns.
type Wiper interface {
	Wipe(ctx context.Context) error
}

// CacheResetter drops in-memory state tied to the signed-in account.
type CacheResetter interface {
	ResetCache()
}

// ProfileSource returns the persisted user profile, nil when there is none.
type ProfileSource interface {
	Load(ctx context.Context) (*models.UserProfile, error)
}
