package responsive

import (
	"fmt"
	"strings"
)

// Breakpoint is a named minimum-width threshold.
// Styles attached to a breakpoint apply at that width and above (mobile-first).
type Breakpoint struct {
	Name     string
	MinWidth float64
}

// Breakpoints is an ordered breakpoint set, smallest threshold first.
// The zero value is an empty set. Values are immutable once constructed.
type Breakpoints struct {
	list  []Breakpoint
	index map[string]int
}

// ActiveMedia records which breakpoint media queries are currently satisfied.
// Several entries can be true at the same time because queries are min-width.
type ActiveMedia map[string]bool

// NewBreakpoints builds a breakpoint set from definitions ordered by ascending threshold.
func NewBreakpoints(defs ...Breakpoint) (Breakpoints, error) {
	bps := Breakpoints{
		list:  make([]Breakpoint, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return Breakpoints{}, fmt.Errorf("breakpoint %d: name is required", i)
		}
		if _, exists := bps.index[name]; exists {
			return Breakpoints{}, fmt.Errorf("breakpoint %q defined more than once", name)
		}
		if def.MinWidth < 0 {
			return Breakpoints{}, fmt.Errorf("breakpoint %q: min width must not be negative", name)
		}
		if i > 0 && def.MinWidth <= defs[i-1].MinWidth {
			return Breakpoints{}, fmt.Errorf("breakpoint %q: min width %v must be greater than %q (%v)", name, def.MinWidth, defs[i-1].Name, defs[i-1].MinWidth)
		}

		bps.index[name] = len(bps.list)
		bps.list = append(bps.list, Breakpoint{Name: name, MinWidth: def.MinWidth})
	}

	return bps, nil
}

// MustBreakpoints is like NewBreakpoints but panics on invalid definitions.
// Intended for package-level defaults and tests.
func MustBreakpoints(defs ...Breakpoint) Breakpoints {
	bps, err := NewBreakpoints(defs...)
	if err != nil {
		panic(err)
	}
	return bps
}

// DefaultBreakpoints returns the small/medium/large/xlarge set used by starter themes.
func DefaultBreakpoints() Breakpoints {
	return MustBreakpoints(
		Breakpoint{Name: "small", MinWidth: 0},
		Breakpoint{Name: "medium", MinWidth: 480},
		Breakpoint{Name: "large", MinWidth: 840},
		Breakpoint{Name: "xlarge", MinWidth: 1280},
	)
}

// Len returns the number of breakpoints.
func (b Breakpoints) Len() int {
	return len(b.list)
}

// List returns a copy of the breakpoints in order.
func (b Breakpoints) List() []Breakpoint {
	out := make([]Breakpoint, len(b.list))
	copy(out, b.list)
	return out
}

// Names returns breakpoint names smallest first.
func (b Breakpoints) Names() []string {
	names := make([]string, len(b.list))
	for i, bp := range b.list {
		names[i] = bp.Name
	}
	return names
}

// Smallest returns the first breakpoint. ok is false for an empty set.
func (b Breakpoints) Smallest() (Breakpoint, bool) {
	if len(b.list) == 0 {
		return Breakpoint{}, false
	}
	return b.list[0], true
}

// Largest returns the last breakpoint. ok is false for an empty set.
func (b Breakpoints) Largest() (Breakpoint, bool) {
	if len(b.list) == 0 {
		return Breakpoint{}, false
	}
	return b.list[len(b.list)-1], true
}

// Has reports whether name is a defined breakpoint.
func (b Breakpoints) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Match evaluates every breakpoint media query against a viewport width.
// A breakpoint matches when width >= MinWidth.
func (b Breakpoints) Match(width float64) ActiveMedia {
	active := make(ActiveMedia, len(b.list))
	for _, bp := range b.list {
		active[bp.Name] = width >= bp.MinWidth
	}
	return active
}

// Active returns the widest breakpoint whose threshold width satisfies.
func (b Breakpoints) Active(width float64) (Breakpoint, bool) {
	for i := len(b.list) - 1; i >= 0; i-- {
		if width >= b.list[i].MinWidth {
			return b.list[i], true
		}
	}
	return Breakpoint{}, false
}

// Matched returns the names of breakpoints marked active, in breakpoint order.
func (b Breakpoints) Matched(active ActiveMedia) []string {
	names := make([]string, 0, len(b.list))
	for _, bp := range b.list {
		if active[bp.Name] {
			names = append(names, bp.Name)
		}
	}
	return names
}
