// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/arcent/models"
)

const (
	fieldTitle = iota
	fieldDetails
	fieldDate
	fieldCategories
	fieldTags
	fieldPhoto
	fieldCount
)

var formLabels = [fieldCount]string{
	"Title:      ",
	"Details:    ",
	"Date:       ",
	"Categories: ",
	"Tags:       ",
	"Photo file: ",
}

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	original   models.Achievement
	submitting bool
}

func newFormModel(item *models.Achievement) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldTitle].CharLimit = models.MaxTitleLength
	inputs[fieldDetails].CharLimit = models.MaxDetailsLength
	inputs[fieldDate].Placeholder = dateLayout
	inputs[fieldCategories].Placeholder = "comma separated"
	inputs[fieldTags].Placeholder = "comma separated"
	inputs[fieldPhoto].Placeholder = "path to an image, empty to keep"
	inputs[fieldTitle].Focus()

	m := formModel{inputs: inputs}
	if item == nil {
		inputs[fieldDate].SetValue(time.Now().Format(dateLayout))
		return m
	}

	m.editing = true
	m.original = *item
	inputs[fieldTitle].SetValue(item.Title)
	inputs[fieldDetails].SetValue(models.StringValue(item.Details))
	inputs[fieldDate].SetValue(formatDay(item.AchievedAt))
	inputs[fieldCategories].SetValue(strings.Join(item.Categories, ", "))
	inputs[fieldTags].SetValue(strings.Join(item.Tags, ", "))
	return m
}

func (m formModel) value(field int) string {
	return m.inputs[field].Value()
}

// toInput reads the form. An untouched date keeps the original time of day.
func (m formModel) toInput(now time.Time) (models.AchievementInput, error) {
	in := models.AchievementInput{
		Title:      strings.TrimSpace(m.value(fieldTitle)),
		Details:    models.StringPtr(strings.TrimSpace(m.value(fieldDetails))),
		Categories: splitLabels(m.value(fieldCategories)),
		Tags:       splitLabels(m.value(fieldTags)),
	}

	date := strings.TrimSpace(m.value(fieldDate))
	switch {
	case m.editing && date == formatDay(m.original.AchievedAt):
		in.AchievedAt = m.original.AchievedAt
	case date == "":
		in.AchievedAt = now.UnixMilli()
	default:
		day, err := time.ParseInLocation(dateLayout, date, time.Local)
		if err != nil {
			return models.AchievementInput{}, ErrInvalidDate
		}
		in.AchievedAt = day.UnixMilli()
	}

	if path := strings.TrimSpace(m.value(fieldPhoto)); path != "" {
		photo, err := readPhoto(path)
		if err != nil {
			return models.AchievementInput{}, err
		}
		in.Photo = photo
	}

	return in, nil
}

func readPhoto(path string) (*models.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingPhoto, path, err)
	}
	return &models.Photo{
		Bytes:    data,
		MIME:     http.DetectContentType(data),
		FileName: filepath.Base(path),
	}, nil
}

func (m formModel) View(spin string) string {
	title := "NEW ACHIEVEMENT"
	if m.editing {
		title = "EDIT: " + fitText(m.original.Title, listTitleWidth)
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(formLabels[i] + "[" + in.View() + "]\n")
	}
	if m.submitting {
		b.WriteString("\n" + spin + " Saving...\n")
	}

	return renderPage(title, b.String(), "tab/shift+tab: next/prev field  enter: save  esc: cancel")
}

func (m formModel) focusNext(step int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.form.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			if m.form.editing {
				m.currentScreen = screenDetail
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusNext(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	in, err := m.form.toInput(time.Now())
	if err != nil {
		m.showErrorf(humanizeError(err))
		return m, nil
	}

	if !m.form.editing {
		if err = m.deps.Validator.Validate(m.ctx, in); err != nil {
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		m.form.submitting = true
		return m, m.cmdAdd(in)
	}

	update := models.AchievementUpdate{
		ID:               m.form.original.ID,
		AchievementInput: in,
		CurrentPhotoURL:  m.form.original.PhotoURL,
	}
	if err = m.deps.Validator.Validate(m.ctx, update); err != nil {
		m.showErrorf(humanizeError(err))
		return m, nil
	}
	m.form.submitting = true
	return m, m.cmdUpdate(update)
}
