// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/models"
)

type detailModel struct {
	item   models.Achievement
	status string
}

func (m detailModel) View() string {
	a := m.item

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(a.Title))
	fmt.Fprintf(&b, "Achieved:   %s\n", a.AchievedTime().Format("Mon, 02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "Categories: %s\n", labelsOrDash(a.Categories))
	fmt.Fprintf(&b, "Tags:       %s\n", labelsOrDash(a.Tags))
	fmt.Fprintf(&b, "Photo:      %s\n", valueOrDash(a.PhotoURL))
	fmt.Fprintf(&b, "\n%s\n", valueOrDash(a.Details))

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ACHIEVEMENT", b.String(), "e: edit  d: delete  c: copy share text  p: share photo  esc: back")
}

func labelsOrDash(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ", ")
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail.status = ""
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newFormModel(&item)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		m.askConfirm(confirmDelete, fmt.Sprintf("Delete %q?", m.detail.item.Title))
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyShareText(m.detail.item)
	case key.Matches(keyMsg, keys.photo):
		if m.detail.item.PhotoURL == nil {
			m.detail.status = "No photo attached"
			return m, cmdClearStatus()
		}
		return m, cmdSharePhoto(m.detail.item, m.deps.CacheDir)
	}

	return m, nil
}
