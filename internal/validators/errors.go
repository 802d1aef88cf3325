// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid achievement id")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrDetailsTooLong    = errors.New("details are too long")
	ErrInvalidAchievedAt = errors.New("invalid achievement date")
	ErrInvalidPhoto      = errors.New("photo must be an image")
	ErrEmptyLabel        = errors.New("categories and tags cannot be blank")
)
