package responsive

import (
	"fmt"
	"sort"
	"strings"

	cascadeerrors "github.com/alexisbeaulieu97/cascade/pkg/errors"
)

// Variant selects a style variant, either once for every breakpoint or per breakpoint.
type Variant struct {
	single       string
	byBreakpoint map[string]string
	responsive   bool
}

// SingleVariant is shorthand for value at the smallest breakpoint, carried to all others.
func SingleVariant(value string) Variant {
	return Variant{single: value}
}

// VariantMap returns a per-breakpoint variant. The map is copied.
func VariantMap(entries map[string]string) Variant {
	copied := make(map[string]string, len(entries))
	for name, v := range entries {
		copied[name] = v
	}
	return Variant{byBreakpoint: copied, responsive: true}
}

// String renders the variant the way the CLI accepts it.
func (v Variant) String() string {
	if !v.responsive {
		return v.single
	}
	names := make([]string, 0, len(v.byBreakpoint))
	for name := range v.byBreakpoint {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + v.byBreakpoint[name]
	}
	return strings.Join(parts, ",")
}

// entries normalises the variant to a breakpoint mapping.
func (v Variant) entries(bps Breakpoints) map[string]string {
	if v.responsive {
		return v.byBreakpoint
	}
	first, ok := bps.Smallest()
	if !ok {
		return nil
	}
	return map[string]string{first.Name: v.single}
}

// ParseVariant coerces loosely typed input, such as a decoded YAML or JSON
// node, into a Variant. Strings and maps are taken as given; map values and
// any other shape are formatted with fmt.Sprint. nil yields the empty variant.
func ParseVariant(raw any) Variant {
	switch typed := raw.(type) {
	case nil:
		return SingleVariant("")
	case Variant:
		return typed
	case string:
		return SingleVariant(typed)
	case map[string]string:
		return VariantMap(typed)
	case map[string]any:
		entries := make(map[string]string, len(typed))
		for name, value := range typed {
			entries[name] = fmt.Sprint(value)
		}
		return VariantMap(entries)
	default:
		return SingleVariant(fmt.Sprint(typed))
	}
}

// ParseVariantStrict is the validating counterpart of ParseVariant. It rejects
// values that are not strings and breakpoint names missing from bps, then
// converts the input with ParseVariant.
func ParseVariantStrict(bps Breakpoints, raw any) (Variant, error) {
	switch typed := raw.(type) {
	case nil, string:
	case map[string]string:
		for name := range typed {
			if !bps.Has(name) {
				return Variant{}, cascadeerrors.NewVariantError(name, "unknown breakpoint")
			}
		}
	case map[string]any:
		for name, value := range typed {
			if !bps.Has(name) {
				return Variant{}, cascadeerrors.NewVariantError(name, "unknown breakpoint")
			}
			if _, ok := value.(string); !ok {
				return Variant{}, cascadeerrors.NewVariantError(name, fmt.Sprintf("variant value must be a string, got %T", value))
			}
		}
	default:
		return Variant{}, cascadeerrors.NewVariantError("", fmt.Sprintf("unsupported variant type %T", raw))
	}
	return ParseVariant(raw), nil
}

// ParseVariantFlag parses the command-line form of a variant: either a bare
// value ("grow") or comma separated breakpoint assignments ("small=shrink,large=grow").
func ParseVariantFlag(bps Breakpoints, raw string) (Variant, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "=") {
		return SingleVariant(raw), nil
	}

	entries := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return Variant{}, cascadeerrors.NewVariantError("", fmt.Sprintf("expected breakpoint=value, got %q", part))
		}
		name = strings.TrimSpace(name)
		if !bps.Has(name) {
			return Variant{}, cascadeerrors.NewVariantError(name, "unknown breakpoint")
		}
		entries[name] = strings.TrimSpace(value)
	}
	return VariantMap(entries), nil
}

// ExpandVariantAcrossBreakpoints returns one style key per breakpoint, smallest first.
//
// The variant value carries forward from breakpoint to breakpoint until a
// larger breakpoint specifies a new one. Breakpoints below the first
// specified entry use that first entry. When nothing is specified the carried
// value is empty and keys take the form {baseKey}__{breakpoint}.
func ExpandVariantAcrossBreakpoints(bps Breakpoints, baseKey string, variant Variant) []string {
	values := variant.carried(bps)
	keys := make([]string, len(values))
	for i, bp := range bps.list {
		keys[i] = StyleKey(baseKey, values[i], bp.Name)
	}
	return keys
}

// carried returns the variant value in effect at every breakpoint, smallest first.
func (v Variant) carried(bps Breakpoints) []string {
	entries := v.entries(bps)

	current := ""
	for _, bp := range bps.list {
		if value, ok := entries[bp.Name]; ok {
			current = value
			break
		}
	}

	values := make([]string, len(bps.list))
	for i, bp := range bps.list {
		if value, ok := entries[bp.Name]; ok {
			current = value
		}
		values[i] = current
	}
	return values
}

// AsValue returns the variant as a responsive value with carry-forward applied,
// so FindWidestActiveValue yields the variant behind the widest active key.
func (v Variant) AsValue(bps Breakpoints) Value[string] {
	if !v.responsive {
		return Scalar(v.single)
	}
	values := v.carried(bps)
	entries := make(map[string]string, len(values))
	for i, bp := range bps.list {
		entries[bp.Name] = values[i]
	}
	return PerBreakpoint(entries)
}

// ActiveStyleKeys expands a variant and keeps only the keys whose breakpoint is
// active, preserving breakpoint order so wider breakpoints come last.
func ActiveStyleKeys(bps Breakpoints, baseKey string, variant Variant, active ActiveMedia) []string {
	all := ExpandVariantAcrossBreakpoints(bps, baseKey, variant)
	keys := make([]string, 0, len(all))
	for i, bp := range bps.list {
		if active[bp.Name] {
			keys = append(keys, all[i])
		}
	}
	return keys
}
