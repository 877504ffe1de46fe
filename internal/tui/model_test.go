package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cascade/internal/config"
	"github.com/alexisbeaulieu97/cascade/internal/responsive"
	"github.com/alexisbeaulieu97/cascade/internal/stylesheet"
)

func newSheet(t *testing.T) *stylesheet.Sheet {
	t.Helper()
	sheet, err := stylesheet.Build(config.Default("preview"))
	require.NoError(t, err)
	return sheet
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func buttonVariant() responsive.Variant {
	return responsive.VariantMap(map[string]string{"small": "shrink", "large": "grow"})
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button"})
	require.Nil(t, m.Init())
	require.Zero(t, m.Viewport())
	require.False(t, m.pinned)

	pinned := NewModel(newSheet(t), Options{Component: "button", Width: 900, FixedWidth: true})
	require.Equal(t, 900.0, pinned.Viewport())
	require.True(t, pinned.pinned)
}

func TestWindowSizeDrivesViewport(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button", Variant: buttonVariant()})

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	require.Equal(t, 600.0, m.Viewport())
	res := m.Resolution()
	require.Equal(t, []string{"small", "medium"}, res.Matched)
	require.Equal(t, []string{"button--shrink__small", "button--shrink__medium"}, res.ActiveKeys)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	res = m.Resolution()
	require.Equal(t, "ui-button-shrink-small ui-button-shrink-medium ui-button-grow-large", res.IDs)
	require.Equal(t, "1", res.Declaration["flex-grow"])
	require.Equal(t, "12px 24px", res.Declaration["padding"])
}

func TestPinnedWidthIgnoresResize(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button", Width: 300, FixedWidth: true})
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	require.Equal(t, 300.0, m.Viewport())
}

func TestFixedZeroWidthMatchesSmallestOnly(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button", Variant: buttonVariant(), FixedWidth: true})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	require.Zero(t, m.Viewport())
	res := m.Resolution()
	require.Equal(t, []string{"small"}, res.Matched)
	require.Equal(t, []string{"button--shrink__small"}, res.ActiveKeys)
}

func TestWidthWithoutFixedWidthFollowsTerminal(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button", Width: 300})
	require.False(t, m.pinned)
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 40})
	require.Equal(t, 500.0, m.Viewport())
}

func TestKeysAdjustViewport(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "card"})
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	require.Equal(t, 500.0, m.Viewport())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 540.0, m.Viewport())
	require.True(t, m.pinned)

	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 20})
	require.Equal(t, 540.0, m.Viewport())

	for i := 0; i < 20; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	require.Zero(t, m.Viewport())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.False(t, m.pinned)
	require.Equal(t, 100.0, m.Viewport())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "card"})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).Quitting())
	require.Empty(t, updated.(Model).View())
}

func TestThemeReload(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button"})

	m = update(t, m, ThemeReloadedMsg{Err: errors.New("bad yaml")})
	require.EqualError(t, m.reloadErr, "bad yaml")
	require.Contains(t, m.View(), "reload failed: bad yaml")

	theme := config.Default("renamed")
	delete(theme.Components, "button")
	sheet, err := stylesheet.Build(theme)
	require.NoError(t, err)

	m = update(t, m, ThemeReloadedMsg{Sheet: sheet})
	require.NoError(t, m.reloadErr)
	require.Equal(t, 2, m.reloads)
	require.Contains(t, m.View(), `component "button" is not defined`)
}

func TestViewShowsResolution(t *testing.T) {
	t.Parallel()

	m := NewModel(newSheet(t), Options{Component: "button", Variant: buttonVariant(), Width: 900, FixedWidth: true})
	view := m.View()

	require.Contains(t, view, "button [large=grow,small=shrink]")
	require.Contains(t, view, "button--grow__large")
	require.Contains(t, view, "ui-button-grow-large")
	require.Contains(t, view, "flex-grow: 1;")
	require.Contains(t, view, "Keys (3 active)")
	require.Contains(t, view, "Effective variant: grow")
	require.Contains(t, view, "large ≥840px")
}
