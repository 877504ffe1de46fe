package responsive

// Value is a prop that is either a single scalar or a per-breakpoint mapping.
// Breakpoints missing from the mapping inherit the nearest smaller entry.
type Value[T any] struct {
	scalar       T
	byBreakpoint map[string]T
	responsive   bool
}

// Scalar returns a value that applies at every breakpoint.
func Scalar[T any](v T) Value[T] {
	return Value[T]{scalar: v}
}

// PerBreakpoint returns a value keyed by breakpoint name. The map is copied.
func PerBreakpoint[T any](entries map[string]T) Value[T] {
	copied := make(map[string]T, len(entries))
	for name, v := range entries {
		copied[name] = v
	}
	return Value[T]{byBreakpoint: copied, responsive: true}
}

// FindWidestActiveValue picks the value to use for the current active media.
//
// The result starts as the smallest breakpoint's entry (or the scalar). Every
// breakpoint that both defines an entry and is active overrides it, walking
// smallest to largest, so the widest matching breakpoint wins.
func FindWidestActiveValue[T any](bps Breakpoints, value Value[T], active ActiveMedia) T {
	if !value.responsive {
		return value.scalar
	}

	var result T
	if first, ok := bps.Smallest(); ok {
		result = value.byBreakpoint[first.Name]
	}

	for _, bp := range bps.list {
		entry, defined := value.byBreakpoint[bp.Name]
		if defined && active[bp.Name] {
			result = entry
		}
	}

	return result
}
