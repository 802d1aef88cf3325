// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/arcent/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validInput() models.AchievementInput {
	return models.AchievementInput{
		Title:      "Run 5K",
		Details:    models.StringPtr("Felt great"),
		AchievedAt: 1_700_000_000_000,
		Categories: []string{},
		Tags:       []string{"fitness"},
	}
}

// ---------------------------------------------------------------------------
// AchievementInput
// ---------------------------------------------------------------------------

func TestAchievementValidator_Input(t *testing.T) {
	v := NewAchievementValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.AchievementInput)
		wantErr error
	}{
		{"valid", func(*models.AchievementInput) {}, nil},
		{"blank title", func(in *models.AchievementInput) { in.Title = "   " }, ErrEmptyTitle},
		{"title at limit", func(in *models.AchievementInput) { in.Title = strings.Repeat("я", models.MaxTitleLength) }, nil},
		{"title over limit", func(in *models.AchievementInput) { in.Title = strings.Repeat("a", models.MaxTitleLength+1) }, ErrTitleTooLong},
		{"nil details", func(in *models.AchievementInput) { in.Details = nil }, nil},
		{"details over limit", func(in *models.AchievementInput) {
			in.Details = models.StringPtr(strings.Repeat("d", models.MaxDetailsLength+1))
		}, ErrDetailsTooLong},
		{"negative date", func(in *models.AchievementInput) { in.AchievedAt = -1 }, ErrInvalidAchievedAt},
		{"image photo", func(in *models.AchievementInput) {
			in.Photo = &models.Photo{Bytes: []byte{1}, MIME: "image/jpeg"}
		}, nil},
		{"non-image photo", func(in *models.AchievementInput) {
			in.Photo = &models.Photo{Bytes: []byte{1}, MIME: "application/pdf"}
		}, ErrInvalidPhoto},
		{"blank tag", func(in *models.AchievementInput) { in.Tags = []string{"ok", " "} }, ErrEmptyLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(ctx, in)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(ctx, &in), tt.wantErr)
		})
	}
}

func TestAchievementValidator_FieldScoping(t *testing.T) {
	v := NewAchievementValidator()
	ctx := context.Background()

	in := validInput()
	in.Title = ""

	assert.NoError(t, v.Validate(ctx, in, FieldDetails), "title is not checked when not requested")
	assert.ErrorIs(t, v.Validate(ctx, in, FieldTitle), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, in, "color"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// AchievementUpdate
// ---------------------------------------------------------------------------

func TestAchievementValidator_Update(t *testing.T) {
	v := NewAchievementValidator()
	ctx := context.Background()

	ok := models.AchievementUpdate{ID: "a-1", AchievementInput: validInput()}
	require.NoError(t, v.Validate(ctx, ok))
	require.NoError(t, v.Validate(ctx, &ok))

	noID := ok
	noID.ID = " "
	assert.ErrorIs(t, v.Validate(ctx, noID), ErrInvalidID)

	badTitle := ok
	badTitle.Title = ""
	assert.ErrorIs(t, v.Validate(ctx, badTitle), ErrEmptyTitle)
	assert.NoError(t, v.Validate(ctx, badTitle, FieldID))
}

func TestAchievementValidator_UnsupportedType(t *testing.T) {
	v := NewAchievementValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.Achievement{}), ErrUnsupportedType)
}
