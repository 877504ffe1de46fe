package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cascade/internal/responsive"
	"github.com/alexisbeaulieu97/cascade/internal/stylesheet"
)

const (
	// DefaultPixelsPerColumn maps terminal columns to viewport pixels.
	DefaultPixelsPerColumn = 10.0
	// ViewportStep is the simulated width change per key press.
	ViewportStep = 40.0
)

// ThemeReloadedMsg carries a rebuilt sheet, or the error that prevented it.
type ThemeReloadedMsg struct {
	Sheet *stylesheet.Sheet
	Err   error
}

// Options configure a preview Model.
type Options struct {
	Component       string
	Variant         responsive.Variant
	PixelsPerColumn float64
	// Width is the simulated viewport used when FixedWidth is set; the
	// viewport otherwise follows the terminal.
	Width      float64
	FixedWidth bool
}

// Model is the Bubbletea state of the responsive preview.
type Model struct {
	sheet           *stylesheet.Sheet
	component       string
	variant         responsive.Variant
	pixelsPerColumn float64

	columns  int
	rows     int
	viewport float64
	pinned   bool

	reloads   int
	reloadErr error

	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel constructs a preview for one component of sheet.
func NewModel(sheet *stylesheet.Sheet, opts Options) Model {
	ppc := opts.PixelsPerColumn
	if ppc <= 0 {
		ppc = DefaultPixelsPerColumn
	}
	m := Model{
		sheet:           sheet,
		component:       opts.Component,
		variant:         opts.Variant,
		pixelsPerColumn: ppc,
		keys:            defaultKeyMap(),
		help:            help.New(),
	}
	if opts.FixedWidth {
		m.viewport = opts.Width
		m.pinned = true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Viewport returns the simulated viewport width in pixels.
func (m Model) Viewport() float64 {
	return m.viewport
}

// Resolution resolves the previewed component at the current viewport width.
func (m Model) Resolution() stylesheet.Resolution {
	return m.sheet.ResolveWidth(m.component, m.variant, m.viewport)
}

// Quitting reports whether the user asked to leave the preview.
func (m Model) Quitting() bool {
	return m.quitting
}
