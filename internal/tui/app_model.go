// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/internal/logger"
	"github.com/MKhiriev/arcent/models"
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenGoogleLogin
	screenLocalName
	screenHome
	screenDetail
	screenForm
)

// confirmAction is what a "y" in the confirm overlay does.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmWipe
)

type appModel struct {
	ctx    context.Context
	deps   Deps
	logger *logger.Logger

	currentScreen screen
	profile       *models.UserProfile

	welcome welcomeModel
	signIn  signInModel
	home    homeModel
	detail  detailModel
	form    formModel
	spinner spinner.Model

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pending       confirmAction
	showBuildInfo bool
}

func newAppModel(ctx context.Context, deps Deps, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		deps:          deps,
		logger:        logger,
		currentScreen: screenLoading,
		welcome:       newWelcomeModel(),
		home:          newHomeModel(deps.Home.State()),
		spinner:       s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadProfile(),
		waitForHomeState(m.deps.Home.Subscribe(m.ctx)),
		m.spinner.Tick,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case homeStateMsg:
		m.home = m.home.withState(msg.state)
		return m, msg.next

	case profileLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("error loading profile")
		}
		m.profile = msg.profile
		if m.profile == nil {
			m.currentScreen = screenWelcome
			return m, nil
		}
		if m.currentScreen == screenLoading || m.currentScreen == screenWelcome ||
			m.currentScreen == screenGoogleLogin || m.currentScreen == screenLocalName {
			m.currentScreen = screenHome
		}
		return m, nil

	case authDoneMsg:
		m.signIn.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.cmdLoadProfile()

	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.deps.Home.OnSaved(msg.item)
		if m.form.editing {
			m.detail = detailModel{item: msg.item}
			m.currentScreen = screenDetail
		} else {
			m.currentScreen = screenHome
		}
		m.home.status = "Saved"
		return m, cmdClearStatus()

	case itemDeletedMsg:
		m.currentScreen = screenHome
		m.home.status = "Deleted"
		return m, cmdClearStatus()

	case signedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, m.cmdLoadProfile()

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail.status = msg.status
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.home.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenGoogleLogin, screenLocalName:
		return m.updateSignIn(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		action := m.pending
		m.showConfirm = false
		m.pending = confirmNone
		switch action {
		case confirmDelete:
			return m, m.cmdDelete(m.detail.item.ID)
		case confirmWipe:
			return m, m.cmdDeleteLocalData()
		}
	case key.Matches(msg, keys.no) || key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pending = confirmNone
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.deps.BuildInfo)
	}
	if m.showError {
		return m.errorOverlay.View()
	}
	if m.showConfirm {
		return m.confirm.View()
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.welcome.View()
	case screenGoogleLogin, screenLocalName:
		return m.signIn.View(m.spinner.View())
	case screenHome:
		return m.home.View(m.profile)
	case screenDetail:
		return m.detail.View()
	case screenForm:
		return m.form.View(m.spinner.View())
	default:
		return renderPage("ARCENT", m.spinner.View()+" Loading...", "")
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(action confirmAction, message string) {
	m.showConfirm = true
	m.pending = action
	m.confirm.message = message
}
