// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/internal/home"
	"github.com/MKhiriev/arcent/models"
)

type profileLoadedMsg struct {
	profile *models.UserProfile
	err     error
}

type authDoneMsg struct {
	err error
}

// homeStateMsg carries a view-model snapshot and the command waiting for
// the next one.
type homeStateMsg struct {
	state home.State
	next  tea.Cmd
}

type itemSavedMsg struct {
	item models.Achievement
	err  error
}

type itemDeletedMsg struct{}

type signedOutMsg struct {
	err error
}

type copiedMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
