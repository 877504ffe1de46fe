package stylesheet

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/cascade/internal/config"
	"github.com/alexisbeaulieu97/cascade/internal/responsive"
)

// Rule is one generated style entry: a component variant at a breakpoint.
type Rule struct {
	Key         string
	ID          string
	Component   string
	Variant     string
	Breakpoint  responsive.Breakpoint
	Declaration Declaration
}

// Sheet holds the style and id registries built from a theme.
// A Sheet is immutable after Build and safe for concurrent readers.
type Sheet struct {
	name        string
	breakpoints responsive.Breakpoints
	components  []string
	variants    map[string][]string
	rules       []Rule
	styles      map[string]Declaration
	ids         map[string]string
}

// BaseKey returns the style key prefix of a component: "button" -> "button--".
func BaseKey(component string) string {
	return component + "--"
}

// Build generates a rule for every component, variant (plus the unnamed base
// variant) and breakpoint of the theme.
//
// Each rule's declaration is the component base, then the variant, then every
// responsive override from the smallest breakpoint up to the rule's own.
func Build(theme *config.Theme) (*Sheet, error) {
	if theme == nil {
		return nil, fmt.Errorf("build stylesheet: theme is nil")
	}

	bps, err := theme.ResponsiveBreakpoints()
	if err != nil {
		return nil, fmt.Errorf("build stylesheet: %w", err)
	}

	sheet := &Sheet{
		name:        theme.Name,
		breakpoints: bps,
		components:  theme.ComponentNames(),
		variants:    make(map[string][]string, len(theme.Components)),
		styles:      make(map[string]Declaration),
		ids:         make(map[string]string),
	}

	// class name -> key that claimed it
	issued := make(map[string]string)

	for _, name := range sheet.components {
		component := theme.Components[name]
		variants := append([]string{""}, component.VariantNames()...)
		sheet.variants[name] = variants[1:]

		for _, variant := range variants {
			cascade := []Declaration{fromConfig(component.Base), fromConfig(component.Variants[variant])}
			for _, bp := range bps.List() {
				cascade = append(cascade, fromConfig(component.Responsive[bp.Name]))

				rule := Rule{
					Key:         responsive.StyleKey(BaseKey(name), variant, bp.Name),
					ID:          ruleID(theme.Prefix, name, variant, bp.Name),
					Component:   name,
					Variant:     variant,
					Breakpoint:  bp,
					Declaration: Merge(cascade...),
				}
				if _, exists := sheet.styles[rule.Key]; exists {
					return nil, fmt.Errorf("build stylesheet: style key %q generated twice", rule.Key)
				}
				if owner, exists := issued[rule.ID]; exists {
					return nil, fmt.Errorf("build stylesheet: class %q generated for both %q and %q; rename a component or variant", rule.ID, owner, rule.Key)
				}
				issued[rule.ID] = rule.Key
				sheet.rules = append(sheet.rules, rule)
				sheet.styles[rule.Key] = rule.Declaration
				sheet.ids[rule.Key] = rule.ID
			}
		}
	}

	return sheet, nil
}

func ruleID(prefix, component, variant, breakpoint string) string {
	parts := make([]string, 0, 4)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, component)
	if variant != "" {
		parts = append(parts, variant)
	}
	parts = append(parts, breakpoint)
	return strings.Join(parts, "-")
}

// Name returns the theme name the sheet was built from.
func (s *Sheet) Name() string {
	return s.name
}

// Breakpoints returns the breakpoint set of the sheet.
func (s *Sheet) Breakpoints() responsive.Breakpoints {
	return s.breakpoints
}

// Components returns component names in sorted order.
func (s *Sheet) Components() []string {
	return append([]string(nil), s.components...)
}

// HasComponent reports whether the theme defines component.
func (s *Sheet) HasComponent(component string) bool {
	_, ok := s.variants[component]
	return ok
}

// Variants returns the named variants of a component in sorted order.
func (s *Sheet) Variants(component string) []string {
	return append([]string(nil), s.variants[component]...)
}

// Styles returns a copy of the style registry.
func (s *Sheet) Styles() map[string]Declaration {
	out := make(map[string]Declaration, len(s.styles))
	for key, decl := range s.styles {
		out[key] = decl
	}
	return out
}

// IDs returns a copy of the id registry.
func (s *Sheet) IDs() map[string]string {
	out := make(map[string]string, len(s.ids))
	for key, id := range s.ids {
		out[key] = id
	}
	return out
}

// Len returns the number of generated rules.
func (s *Sheet) Len() int {
	return len(s.rules)
}
