// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidCursor is returned when a paging cursor is not a
	// non-negative row offset.
	ErrInvalidCursor = errors.New("invalid local paging cursor")

	// ErrSavingPhoto is returned when a photo could not be written to the
	// photos directory.
	ErrSavingPhoto = errors.New("error saving photo")

	// ErrRemovingPhotos is returned when the photos directory could not be
	// removed during a wipe.
	ErrRemovingPhotos = errors.New("error removing photos directory")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (REPLACE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan achievement row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan achievement rows")
)
