// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/internal/home"
	"github.com/MKhiriev/arcent/internal/share"
	"github.com/MKhiriev/arcent/models"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

func waitForHomeState(states <-chan home.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return homeStateMsg{state: s, next: waitForHomeState(states)}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.deps.Auth
	return func() tea.Msg {
		profile, err := auth.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdLoginWithGoogle(idToken string) tea.Cmd {
	ctx := m.ctx
	auth := m.deps.Auth
	return func() tea.Msg {
		return authDoneMsg{err: auth.LoginWithGoogle(ctx, idToken)}
	}
}

func (m appModel) cmdUseLocal(name string) tea.Cmd {
	ctx := m.ctx
	auth := m.deps.Auth
	return func() tea.Msg {
		return authDoneMsg{err: auth.UseLocal(ctx, name)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.deps.Auth
	return func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			return signedOutMsg{err: err}
		}
		return profileLoadedMsg{}
	}
}

func (m appModel) cmdDeleteLocalData() tea.Cmd {
	ctx := m.ctx
	auth := m.deps.Auth
	return func() tea.Msg {
		return signedOutMsg{err: auth.DeleteLocalData(ctx)}
	}
}

func (m appModel) cmdLoadMore() tea.Cmd {
	ctx := m.ctx
	h := m.deps.Home
	return func() tea.Msg {
		h.LoadMore(ctx)
		return nil
	}
}

func (m appModel) cmdAdd(in models.AchievementInput) tea.Cmd {
	ctx := m.ctx
	writer := m.deps.Writer
	return func() tea.Msg {
		item, err := writer.Add(ctx, in)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m appModel) cmdUpdate(in models.AchievementUpdate) tea.Cmd {
	ctx := m.ctx
	writer := m.deps.Writer
	return func() tea.Msg {
		item, err := writer.Update(ctx, in)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	h := m.deps.Home
	return func() tea.Msg {
		h.Delete(ctx, id)
		return itemDeletedMsg{}
	}
}

func cmdCopyShareText(item models.Achievement) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(share.FormatText(item)); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{status: "Copied to clipboard"}
	}
}

func cmdSharePhoto(item models.Achievement, cacheDir string) tea.Cmd {
	return func() tea.Msg {
		path := share.PrepareImageFile(models.StringValue(item.PhotoURL), cacheDir)
		if path == "" {
			return copiedMsg{status: "Only local photos can be shared"}
		}
		if err := writeClipboard(path); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{status: "Photo copied to " + path + " (path in clipboard)"}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
