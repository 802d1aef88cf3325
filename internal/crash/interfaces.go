// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crash records failures that the storage layer absorbs instead of
// propagating. Every degraded result produced by a store is reported here
// exactly once.
package crash

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crash_reporter_mock.go -package=mock

// Reporter receives absorbed failures and breadcrumbs.
type Reporter interface {
	// Capture records err as a non-fatal failure of op.
	Capture(ctx context.Context, op string, err error)
	// Breadcrumb records a short trail message attached to later captures.
	Breadcrumb(ctx context.Context, message string)
	// SetEnabled toggles reporting (user opt-out).
	SetEnabled(enabled bool)
	// Enabled reports whether captures are currently recorded.
	Enabled() bool
}
