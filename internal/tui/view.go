package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cascade/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := titleStyle.Render(fmt.Sprintf("cascade • %s • %s", m.sheet.Name(), m.title()))
	sections = append(sections, title)

	if m.reloadErr != nil {
		sections = append(sections, failureStyle.Render("✗ reload failed: "+m.reloadErr.Error()))
	}

	if !m.sheet.HasComponent(m.component) {
		sections = append(sections, failureStyle.Render(fmt.Sprintf("component %q is not defined by this theme", m.component)))
		sections = append(sections, m.help.View(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	res := m.Resolution()
	bps := m.sheet.Breakpoints()

	limit := 0.0
	if largest, ok := bps.Largest(); ok {
		limit = largest.MinWidth * 1.25
	}
	mode := "following terminal"
	if m.pinned {
		mode = "pinned"
	}
	sections = append(sections, sectionStyle.Render("Viewport"), components.NewViewportGauge(limit).View(m.viewport)+"  "+inactiveStyle.Render(mode))

	sections = append(sections, sectionStyle.Render("Breakpoints"), m.renderBreakpoints(res.Matched))
	if res.Effective != "" {
		sections = append(sections, "Effective variant: "+activeStyle.Render(res.Effective))
	}

	keys := components.NewKeyList(res.Keys, bps.Match(m.viewport))
	sections = append(sections, sectionStyle.Render(fmt.Sprintf("Keys (%d active)", keys.ActiveCount())), renderKeys(keys.Entries()))

	sections = append(sections, sectionStyle.Render("Active ids"), idStyle.Render(res.IDs))
	sections = append(sections, sectionStyle.Render("Declaration"), declStyle.Render(components.NewDeclarationSummary(res.Declaration).View()))
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBreakpoints(matched []string) string {
	widest := ""
	if bp, ok := m.sheet.Breakpoints().Active(m.viewport); ok {
		widest = bp.Name
	}
	active := make(map[string]bool, len(matched))
	for _, name := range matched {
		active[name] = true
	}

	parts := make([]string, 0)
	for _, bp := range m.sheet.Breakpoints().List() {
		label := fmt.Sprintf("%s ≥%gpx", bp.Name, bp.MinWidth)
		switch {
		case bp.Name == widest:
			parts = append(parts, widestStyle.Render(label))
		case active[bp.Name]:
			parts = append(parts, activeStyle.Render(label))
		default:
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func renderKeys(entries []components.KeyEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Active {
			lines = append(lines, activeStyle.Render(" ✓ "+entry.Key))
		} else {
			lines = append(lines, inactiveStyle.Render(" · "+entry.Key))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) title() string {
	variant := m.variant.String()
	if variant == "" {
		return m.component
	}
	return fmt.Sprintf("%s [%s]", m.component, variant)
}
