// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/models"
)

// Pinger checks that the on-device database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// BackendResolver reports the backend achievement operations currently go to.
type BackendResolver interface {
	ActiveBackend(ctx context.Context) models.Backend
}

type Handler struct {
	db        Pinger
	backends  BackendResolver
	gatherer  prometheus.Gatherer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(db Pinger, backends BackendResolver, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		db:        db,
		backends:  backends,
		gatherer:  gatherer,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
