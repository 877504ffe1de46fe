// Package responsive resolves per-breakpoint props into style keys, values and
// active style declarations.
//
// Breakpoints are ordered smallest first and follow the mobile-first cascade:
// when several breakpoints are active, the widest one wins. Every function in
// this package is pure; results depend only on the arguments, so callers may
// resolve styles concurrently and cache results on their own terms.
//
//	bps := responsive.DefaultBreakpoints()
//	variant := responsive.VariantMap(map[string]string{"small": "shrink", "large": "grow"})
//	keys := responsive.ExpandVariantAcrossBreakpoints(bps, "button--", variant)
//	// button--shrink__small button--shrink__medium button--grow__large button--grow__xlarge
package responsive
