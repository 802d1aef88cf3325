// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/arcent/internal/home"
	"github.com/MKhiriev/arcent/models"
)

// Auth is the part of the auth service the screens drive.
type Auth interface {
	LoginWithGoogle(ctx context.Context, idToken string) error
	UseLocal(ctx context.Context, name string) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	DeleteLocalData(ctx context.Context) error
}

// Writer saves achievements through the active backend.
type Writer interface {
	Add(ctx context.Context, in models.AchievementInput) (models.Achievement, error)
	Update(ctx context.Context, in models.AchievementUpdate) (models.Achievement, error)
}

// Home is the home screen view-model.
type Home interface {
	State() home.State
	Subscribe(ctx context.Context) <-chan home.State
	ToggleAll()
	LoadMore(ctx context.Context)
	OnSaved(a models.Achievement)
	Delete(ctx context.Context, id string)
	OpenSearch()
	CloseSearch()
	OnSearchQueryChange(q string)
}
