package components

import (
	"fmt"
	"sort"
	"strings"
)

// DeclarationSummary renders a merged declaration as CSS-like lines.
type DeclarationSummary struct {
	properties map[string]string
}

// NewDeclarationSummary creates a summary for the given properties.
func NewDeclarationSummary(properties map[string]string) DeclarationSummary {
	return DeclarationSummary{properties: properties}
}

// View renders one "property: value;" line per property in sorted order.
func (d DeclarationSummary) View() string {
	if len(d.properties) == 0 {
		return "(no styles)"
	}
	names := make([]string, 0, len(d.properties))
	for name := range d.properties {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %s;", name, d.properties[name])
	}
	return strings.Join(lines, "\n")
}
