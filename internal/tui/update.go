package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = msg.Width
		m.rows = msg.Height
		m.help.Width = msg.Width
		if !m.pinned {
			m.viewport = float64(msg.Width) * m.pixelsPerColumn
		}
		return m, nil
	case ThemeReloadedMsg:
		m.reloads++
		if msg.Err != nil {
			m.reloadErr = msg.Err
			return m, nil
		}
		m.reloadErr = nil
		if msg.Sheet != nil {
			m.sheet = msg.Sheet
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Narrower):
		m.pinned = true
		m.viewport -= ViewportStep
		if m.viewport < 0 {
			m.viewport = 0
		}
	case key.Matches(msg, m.keys.Wider):
		m.pinned = true
		m.viewport += ViewportStep
	case key.Matches(msg, m.keys.Reset):
		m.pinned = false
		m.viewport = float64(m.columns) * m.pixelsPerColumn
	}
	return m, nil
}
