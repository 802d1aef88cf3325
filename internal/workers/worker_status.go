// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/arcent/internal/logger"
)

type statusServerWorker struct {
	server StatusServer
	logger *logger.Logger
}

// NewStatusServerWorker serves /metrics, /healthz and /version until the
// context is done.
func NewStatusServerWorker(server StatusServer, logger *logger.Logger) Worker {
	return &statusServerWorker{server: server, logger: logger}
}

func (w *statusServerWorker) Run(ctx context.Context) error {
	w.logger.Info().Str("address", w.server.Addr()).Msg("status server listening")
	return w.server.RunServer(ctx)
}
