// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/arcent/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
	logger   *logger.Logger
}

// NewServer binds address right away so a taken port fails at startup.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if address == "" {
		return nil, ErrNoAddress
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, address, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) Addr() string {
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", h.Addr()).Msg("Launching HTTP server")
		serveErr <- h.server.Serve(h.listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server Serve: %w", err)

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Str("func", "httpServer.RunServer").Msg("HTTP server Shutdown")
		return err
	}
	<-serveErr

	h.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
