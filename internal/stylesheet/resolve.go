package stylesheet

import (
	"github.com/alexisbeaulieu97/cascade/internal/responsive"
)

// Resolution describes the styles of a component for one set of active media.
type Resolution struct {
	Component string
	Variant   responsive.Variant
	// Effective is the variant value behind the widest active key.
	Effective string
	Matched   []string
	// Keys holds the expanded key of every breakpoint, smallest first.
	Keys []string
	// ActiveKeys holds the keys of matched breakpoints only.
	ActiveKeys []string
	Styles     []Declaration
	IDs        string
	// Declaration is Styles merged as a cascade.
	Declaration Declaration
}

// Resolve expands the variant for component, keeps the keys of active
// breakpoints and looks them up in the sheet's registries.
func (s *Sheet) Resolve(component string, variant responsive.Variant, active responsive.ActiveMedia) Resolution {
	base := BaseKey(component)
	activeKeys := responsive.ActiveStyleKeys(s.breakpoints, base, variant, active)
	resolved := responsive.ResolveActiveStyles(activeKeys, s.styles, s.ids)

	return Resolution{
		Component:   component,
		Variant:     variant,
		Effective:   responsive.FindWidestActiveValue(s.breakpoints, variant.AsValue(s.breakpoints), active),
		Matched:     s.breakpoints.Matched(active),
		Keys:        responsive.ExpandVariantAcrossBreakpoints(s.breakpoints, base, variant),
		ActiveKeys:  activeKeys,
		Styles:      resolved.Styles,
		IDs:         resolved.IDs,
		Declaration: Merge(resolved.Styles...),
	}
}

// ResolveWidth is Resolve for a viewport width.
func (s *Sheet) ResolveWidth(component string, variant responsive.Variant, width float64) Resolution {
	return s.Resolve(component, variant, s.breakpoints.Match(width))
}
