package responsive

import "strings"

const breakpointSeparator = "__"

// StyleKey composes a style key from a base, a variant suffix and a breakpoint.
// An empty breakpoint omits the separator: StyleKey("button--", "grow", "large")
// is "button--grow__large".
func StyleKey(base, variant, breakpoint string) string {
	if breakpoint == "" {
		return base + variant
	}
	return base + variant + breakpointSeparator + breakpoint
}

// ParseStyleKey splits a key at its last breakpoint separator.
// ok is false when the key carries no breakpoint suffix.
func ParseStyleKey(key string) (prefix, breakpoint string, ok bool) {
	i := strings.LastIndex(key, breakpointSeparator)
	if i < 0 {
		return key, "", false
	}
	return key[:i], key[i+len(breakpointSeparator):], true
}

// ActiveStyles is the outcome of ResolveActiveStyles.
type ActiveStyles[S any] struct {
	// Styles holds one entry per requested key in order; missing keys hold the zero value.
	Styles []S
	// IDs joins the id of every key with a single space, empty for missing keys.
	IDs string
}

// ResolveActiveStyles maps style keys to their declarations and identifiers.
//
// The style list keeps key order so that later entries win when merged as a
// cascade. Keys absent from a registry yield the zero value and an empty id;
// an absent key between two present ones therefore leaves a double space in IDs.
func ResolveActiveStyles[S any](styleKeys []string, styles map[string]S, ids map[string]string) ActiveStyles[S] {
	resolved := make([]S, len(styleKeys))
	idParts := make([]string, len(styleKeys))
	for i, key := range styleKeys {
		resolved[i] = styles[key]
		idParts[i] = ids[key]
	}
	return ActiveStyles[S]{
		Styles: resolved,
		IDs:    strings.Join(idParts, " "),
	}
}
