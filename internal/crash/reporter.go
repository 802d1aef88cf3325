// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crash

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

const maxBreadcrumbs = 20

type logReporter struct {
	logger  *logger.Logger
	enabled atomic.Bool

	captured *prometheus.CounterVec

	mu          sync.Mutex
	breadcrumbs []string
}

// NewReporter returns a [Reporter] that writes captures to log and counts
// them in the arcent_errors_captured_total counter registered on reg. A nil
// reg skips registration.
func NewReporter(log *logger.Logger, reg prometheus.Registerer, enabled bool) Reporter {
	r := &logReporter{
		logger: log,
		captured: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcent_errors_captured_total",
				Help: "Total number of absorbed failures reported by the storage layer",
			},
			[]string{"op"},
		),
		breadcrumbs: make([]string, 0, maxBreadcrumbs),
	}
	r.enabled.Store(enabled)

	if reg != nil {
		reg.MustRegister(r.captured)
	}

	return r
}

func (r *logReporter) Capture(ctx context.Context, op string, err error) {
	if err == nil || !r.enabled.Load() {
		return
	}

	r.captured.WithLabelValues(op).Inc()

	r.mu.Lock()
	trail := make([]string, len(r.breadcrumbs))
	copy(trail, r.breadcrumbs)
	r.mu.Unlock()

	r.logger.Err(err).
		Str("func", "crash.Capture").
		Str("op", op).
		Strs("breadcrumbs", trail).
		Msg("non-fatal failure captured")
}

func (r *logReporter) Breadcrumb(ctx context.Context, message string) {
	if !r.enabled.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.breadcrumbs) == maxBreadcrumbs {
		r.breadcrumbs = append(r.breadcrumbs[:0], r.breadcrumbs[1:]...)
	}
	r.breadcrumbs = append(r.breadcrumbs, message)
}

func (r *logReporter) SetEnabled(enabled bool) {
	r.enabled.Store(enabled)
	r.logger.Info().Str("func", "crash.SetEnabled").Bool("enabled", enabled).Msg("crash reporting preference changed")
}

func (r *logReporter) Enabled() bool {
	return r.enabled.Load()
}
