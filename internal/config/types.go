package config

import (
	"sort"

	"github.com/alexisbeaulieu97/cascade/internal/responsive"
)

// Declaration maps CSS-like property names to values.
type Declaration map[string]string

// Theme is the full cascade theme document.
type Theme struct {
	Version     string               `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string               `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string               `yaml:"description,omitempty" toml:"description,omitempty"`
	Prefix      string               `yaml:"prefix,omitempty" toml:"prefix,omitempty" validate:"omitempty,identifier"`
	Breakpoints []Breakpoint         `yaml:"breakpoints" toml:"breakpoints" validate:"required,min=1,dive"`
	Components  map[string]Component `yaml:"components" toml:"components" validate:"required,min=1,dive,keys,identifier,endkeys"`
}

// Breakpoint defines a named min-width threshold in pixels.
type Breakpoint struct {
	Name     string `yaml:"name" toml:"name" validate:"required,identifier"`
	MinWidth int    `yaml:"min_width" toml:"min_width" validate:"gte=0"`
}

// Component describes the styles of one design-system component.
//
// Base applies everywhere, Variants are selected per breakpoint by the
// caller, and Responsive adds overrides from a breakpoint upwards.
type Component struct {
	Base       Declaration            `yaml:"base,omitempty" toml:"base,omitempty"`
	Variants   map[string]Declaration `yaml:"variants,omitempty" toml:"variants,omitempty" validate:"omitempty,dive,keys,identifier,endkeys"`
	Responsive map[string]Declaration `yaml:"responsive,omitempty" toml:"responsive,omitempty"`
}

// ResponsiveBreakpoints converts the theme breakpoints into a resolver breakpoint set.
func (t *Theme) ResponsiveBreakpoints() (responsive.Breakpoints, error) {
	defs := make([]responsive.Breakpoint, len(t.Breakpoints))
	for i, bp := range t.Breakpoints {
		defs[i] = responsive.Breakpoint{Name: bp.Name, MinWidth: float64(bp.MinWidth)}
	}
	return responsive.NewBreakpoints(defs...)
}

// ComponentNames returns component names in sorted order.
func (t *Theme) ComponentNames() []string {
	names := make([]string, 0, len(t.Components))
	for name := range t.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariantNames returns the component's variant names in sorted order.
func (c Component) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for name := range c.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
