// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of arcent: welcome and sign-in, the
// home list with recent strip and search, achievement detail with sharing,
// and the create/edit form.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/internal/validators"
	"github.com/MKhiriev/arcent/models"
)

// Deps are the collaborators the screens drive.
type Deps struct {
	Auth      Auth
	Writer    Writer
	Home      Home
	Validator validators.Validator
	// CacheDir receives photo copies prepared for sharing.
	CacheDir  string
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, logger *logger.Logger) (*TUI, error) {
	if deps.Auth == nil || deps.Writer == nil || deps.Home == nil || deps.Validator == nil {
		return nil, ErrMissingDependency
	}
	return &TUI{deps: deps, logger: logger}, nil
}

// Run shows the UI until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.deps, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
