// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/arcent/internal/logger"
)

type Workers struct {
	workers []namedWorker
	logger  *logger.Logger
}

type namedWorker struct {
	name string
	Worker
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers w under name. Nil workers are skipped.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers = append(w.workers, namedWorker{name: name, Worker: worker})
	}
	return w
}

// Len is the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. A failing worker does not stop the others; failures are joined.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Go(func() {
			w.logger.Debug().Str("worker", worker.name).Msg("worker started")

			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("func", "Workers.Run").Str("worker", worker.name).Msg("worker stopped with error")
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", worker.name, err))
				mu.Unlock()
				return
			}

			w.logger.Debug().Str("worker", worker.name).Msg("worker stopped")
		})
	}

	wg.Wait()
	return errors.Join(errs...)
}
