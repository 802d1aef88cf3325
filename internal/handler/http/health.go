// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/utils"
)

const pingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Backend  string `json:"backend"`
}

// health answers 200 while the database responds and 503 otherwise. The
// active backend is informational only.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	resp := healthResponse{
		Status:   "ok",
		Database: "ok",
		Backend:  h.backends.ActiveBackend(r.Context()).String(),
	}
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "Handler.health").Msg("database ping failed")
		resp.Status = "degraded"
		resp.Database = err.Error()
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Str("func", "Handler.health").Msg("error writing health response")
	}
}
