// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/internal/home"
	"github.com/MKhiriev/arcent/models"
)

const listTitleWidth = 48

type homeModel struct {
	state  home.State
	cursor int
	search textinput.Model
	status string
}

func newHomeModel(state home.State) homeModel {
	in := textinput.New()
	in.Placeholder = "search titles"
	in.Width = 40
	in.CharLimit = models.MaxTitleLength
	return homeModel{state: state, search: in}
}

func (m homeModel) withState(s home.State) homeModel {
	m.state = s
	m.cursor = min(m.cursor, max(len(m.items())-1, 0))
	return m
}

// items are the selectable rows of the visible list.
func (m homeModel) items() []models.Achievement {
	switch {
	case m.state.Searching:
		return m.state.SearchResults
	case m.state.ShowingAll:
		list := make([]models.Achievement, 0, len(m.state.AllItems))
		for _, item := range m.state.AllItems {
			if !item.Header {
				list = append(list, item.Achievement)
			}
		}
		return list
	default:
		return m.state.Recent
	}
}

func (m homeModel) current() (models.Achievement, bool) {
	list := m.items()
	if m.cursor < 0 || m.cursor >= len(list) {
		return models.Achievement{}, false
	}
	return list[m.cursor], true
}

func (m homeModel) View(profile *models.UserProfile) string {
	var b strings.Builder

	name := "there"
	mode := ""
	if profile != nil {
		name = profile.Name
		mode = string(profile.Provider)
	}
	fmt.Fprintf(&b, "Hi, %s!  %d wins", name, m.state.TotalWins)
	if mode != "" {
		fmt.Fprintf(&b, "  [%s]", mode)
	}
	b.WriteString("\n\n")

	hotKeys := "enter: open  n: new  a: all/recent  /: search  l: sign out  W: delete local data  q: quit"

	switch {
	case m.state.Searching:
		b.WriteString("Search: [" + m.search.View() + "]\n\n")
		switch {
		case m.state.SearchLoading:
			b.WriteString("Searching...\n")
		case strings.TrimSpace(m.state.SearchQuery) == "":
			b.WriteString("Type to search\n")
		case len(m.state.SearchResults) == 0:
			b.WriteString("No matches\n")
		default:
			m.writeRows(&b, m.state.SearchResults)
		}
		hotKeys = "↑/↓: move  enter: open  esc: close search"

	case m.state.ShowingAll:
		b.WriteString(titleStyle.Render("All achievements") + "\n")
		if len(m.state.AllItems) == 0 && !m.state.LoadingMore {
			b.WriteString("Nothing here yet\n")
		}
		idx := 0
		for _, item := range m.state.AllItems {
			if item.Header {
				b.WriteString("\n" + dayHeaderStyle.Render(item.Day.Format("Mon, 02 Jan 2006")) + "\n")
				continue
			}
			b.WriteString(m.row(idx, item.Achievement))
			idx++
		}
		if m.state.LoadingMore {
			b.WriteString("\nLoading more...\n")
		} else if m.state.NextCursor != nil {
			b.WriteString(helpStyle.Render("\n↓ for more") + "\n")
		}

	default:
		b.WriteString(titleStyle.Render("Recent") + "\n")
		if len(m.state.Recent) == 0 {
			b.WriteString("No achievements yet. Press n to add your first win.\n")
		}
		m.writeRows(&b, m.state.Recent)
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ARCENT", b.String(), hotKeys)
}

func (m homeModel) writeRows(b *strings.Builder, list []models.Achievement) {
	for i, a := range list {
		b.WriteString(m.row(i, a))
	}
}

func (m homeModel) row(idx int, a models.Achievement) string {
	cursor := "  "
	title := fitText(a.Title, listTitleWidth)
	if idx == m.cursor {
		cursor = "> "
		title = selectedStyle.Render(title)
	}
	photo := ""
	if a.PhotoURL != nil {
		photo = " [photo]"
	}
	return fmt.Sprintf("%s%s  %s%s\n", cursor, formatDay(a.AchievedAt), title, photo)
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.home.state.Searching {
		return m.updateSearch(msg)
	}

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
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		return m.moveDown()
	case key.Matches(keyMsg, keys.enter):
		return m.openSelected()
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.toggleAll):
		m.home.cursor = 0
		m.deps.Home.ToggleAll()
	case key.Matches(keyMsg, keys.search):
		m.home.cursor = 0
		m.home.search.SetValue("")
		m.home.search.Focus()
		m.deps.Home.OpenSearch()
		// the snapshot arrives asynchronously; switch right away so typing
		// goes to the search field
		m.home.state.Searching = true
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.wipe):
		m.askConfirm(confirmWipe, "Delete every achievement and photo stored on this device and sign out?")
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.home.search.Blur()
			m.home.search.SetValue("")
			m.home.cursor = 0
			m.deps.Home.CloseSearch()
			m.home.state.Searching = false
			return m, nil
		case key.Matches(keyMsg, arrowUp):
			if m.home.cursor > 0 {
				m.home.cursor--
			}
			return m, nil
		case key.Matches(keyMsg, arrowDown):
			if m.home.cursor < len(m.home.items())-1 {
				m.home.cursor++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.openSelected()
		}
	}

	before := m.home.search.Value()
	var cmd tea.Cmd
	m.home.search, cmd = m.home.search.Update(msg)
	if after := m.home.search.Value(); after != before {
		m.home.cursor = 0
		m.deps.Home.OnSearchQueryChange(after)
	}
	return m, cmd
}

// moveDown advances the cursor and asks for the next page when the last
// loaded row of the full list is reached.
func (m appModel) moveDown() (tea.Model, tea.Cmd) {
	last := len(m.home.items()) - 1
	if m.home.cursor < last {
		m.home.cursor++
	}

	s := m.home.state
	if s.ShowingAll && m.home.cursor >= last && s.NextCursor != nil && !s.LoadingMore {
		return m, m.cmdLoadMore()
	}
	return m, nil
}

func (m appModel) openSelected() (tea.Model, tea.Cmd) {
	item, ok := m.home.current()
	if !ok {
		return m, nil
	}
	m.detail = detailModel{item: item}
	m.currentScreen = screenDetail
	return m, nil
}
