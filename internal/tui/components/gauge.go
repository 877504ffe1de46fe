package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ViewportGauge renders the simulated viewport width against the widest breakpoint.
type ViewportGauge struct {
	bar   progress.Model
	limit float64
}

// NewViewportGauge creates a gauge; limit is the width shown as a full bar.
func NewViewportGauge(limit float64) ViewportGauge {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return ViewportGauge{bar: bar, limit: limit}
}

// Ratio returns how full the gauge is for width, clamped to [0, 1].
func (g ViewportGauge) Ratio(width float64) float64 {
	if g.limit <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1.0, width/g.limit))
}

// View renders the gauge for the provided width.
func (g ViewportGauge) View(width float64) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%4.0fpx", width))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", g.bar.ViewAs(g.Ratio(width)))
}
