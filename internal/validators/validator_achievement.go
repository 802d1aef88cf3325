// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/arcent/models"
)

// Field names accepted by AchievementValidator for field-level scoping.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldDetails    = "details"
	FieldAchievedAt = "achieved_at"
	FieldPhoto      = "photo"
	FieldLabels     = "labels"
)

var inputFields = []string{FieldTitle, FieldDetails, FieldAchievedAt, FieldPhoto, FieldLabels}

// AchievementValidator checks save requests before they reach a backend.
type AchievementValidator struct {
}

func NewAchievementValidator() Validator {
	return &AchievementValidator{}
}

func (v *AchievementValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AchievementInput:
		return v.validateInput(ctx, value, fields...)
	case *models.AchievementInput:
		return v.validateInput(ctx, *value, fields...)

	case models.AchievementUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.AchievementUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AchievementValidator) validateInput(_ context.Context, in models.AchievementInput, fields ...string) error {
	if len(fields) == 0 {
		fields = inputFields
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(in.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > models.MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldDetails:
			if in.Details != nil && utf8.RuneCountInString(*in.Details) > models.MaxDetailsLength {
				return ErrDetailsTooLong
			}
		case FieldAchievedAt:
			if in.AchievedAt < 0 {
				return ErrInvalidAchievedAt
			}
		case FieldPhoto:
			if in.Photo != nil && len(in.Photo.Bytes) > 0 && !strings.HasPrefix(in.Photo.MIME, "image/") {
				return ErrInvalidPhoto
			}
		case FieldLabels:
			for _, label := range append(append([]string{}, in.Categories...), in.Tags...) {
				if strings.TrimSpace(label) == "" {
					return ErrEmptyLabel
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AchievementValidator) validateUpdate(ctx context.Context, in models.AchievementUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldID}, inputFields...)
	}

	rest := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != FieldID {
			rest = append(rest, f)
			continue
		}
		if strings.TrimSpace(in.ID) == "" {
			return ErrInvalidID
		}
	}

	if len(rest) == 0 {
		return nil
	}
	return v.validateInput(ctx, in.AchievementInput, rest...)
}
