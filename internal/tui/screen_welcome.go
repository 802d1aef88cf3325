// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in with Google", "Use on this device only"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Keep track of your wins.\n\nChoose how to start:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
			item = selectedStyle.Render(item)
		}
		b.WriteString(cursor + item + "\n")
	}
	return renderPage("ARCENT", b.String(), "enter: choose  v: about  q: quit")
}

// signInModel is the single-input form behind both welcome choices: a Google
// ID token or a local display name.
type signInModel struct {
	input      textinput.Model
	google     bool
	submitting bool
}

func newSignInModel(google bool) signInModel {
	in := textinput.New()
	in.Width = 50
	in.CharLimit = 4096
	if google {
		in.Placeholder = "paste a Google ID token"
		in.EchoMode = textinput.EchoPassword
	} else {
		in.Placeholder = "your name"
		in.CharLimit = 64
	}
	in.Focus()
	return signInModel{input: in, google: google}
}

func (m signInModel) View(spin string) string {
	title := "USE LOCALLY"
	label := "Name: "
	if m.google {
		title = "SIGN IN WITH GOOGLE"
		label = "ID token: "
	}

	data := label + "[" + m.input.View() + "]"
	if m.submitting {
		data += "\n\n" + spin + " Signing in..."
	}
	return renderPage(title, data, "enter: continue  esc: back")
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		google := m.welcome.idx == 0
		m.signIn = newSignInModel(google)
		m.currentScreen = screenLocalName
		if google {
			m.currentScreen = screenGoogleLogin
		}
		return m, textinput.Blink
	}

	return m, nil
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.signIn.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			value := strings.TrimSpace(m.signIn.input.Value())
			if value == "" {
				if m.signIn.google {
					m.showErrorf("ID token is required")
				} else {
					m.showErrorf("Name is required")
				}
				return m, nil
			}
			m.signIn.submitting = true
			if m.signIn.google {
				return m, m.cmdLoginWithGoogle(value)
			}
			return m, m.cmdUseLocal(value)
		}
	}

	var cmd tea.Cmd
	m.signIn.input, cmd = m.signIn.input.Update(msg)
	return m, cmd
}
