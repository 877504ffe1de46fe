package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cascade/internal/responsive"
)

// parseVariantArg accepts the flag form of a variant ("grow",
// "small=shrink,large=grow") or an inline YAML/JSON mapping such as
// '{small: shrink, large: grow}'.
func parseVariantArg(bps responsive.Breakpoints, raw string) (responsive.Variant, error) {
	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return responsive.ParseVariantFlag(bps, raw)
	}

	var decoded any
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return responsive.Variant{}, fmt.Errorf("decode variant mapping: %w", err)
	}
	return responsive.ParseVariantStrict(bps, decoded)
}
