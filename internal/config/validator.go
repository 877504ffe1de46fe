package config

import (
	"fmt"

	cascadeerrors "github.com/alexisbeaulieu97/cascade/pkg/errors"
)

// ValidateTheme performs schema and cross-field validation on a theme.
func ValidateTheme(theme *Theme) error {
	if theme == nil {
		return cascadeerrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(theme); err != nil {
		return convertValidationError(err)
	}

	known := make(map[string]int, len(theme.Breakpoints))
	for i, bp := range theme.Breakpoints {
		if prev, exists := known[bp.Name]; exists {
			return cascadeerrors.NewValidationError(fieldForBreakpoint(i, "name"), fmt.Sprintf("duplicate breakpoint %q (first defined at index %d)", bp.Name, prev), nil)
		}
		if i > 0 && bp.MinWidth <= theme.Breakpoints[i-1].MinWidth {
			prev := theme.Breakpoints[i-1]
			return cascadeerrors.NewValidationError(fieldForBreakpoint(i, "min_width"), fmt.Sprintf("must be greater than %s (%d)", prev.Name, prev.MinWidth), nil)
		}
		known[bp.Name] = i
	}

	for _, name := range theme.ComponentNames() {
		if err := ValidateComponent(name, theme.Components[name], known); err != nil {
			return err
		}
	}

	return nil
}

// ValidateComponent checks that a component only references known breakpoints
// and carries no empty property names.
func ValidateComponent(name string, component Component, breakpoints map[string]int) error {
	if err := validateDeclaration(fieldForComponent(name, "base"), component.Base); err != nil {
		return err
	}
	for _, variant := range component.VariantNames() {
		if err := validateDeclaration(fieldForComponent(name, "variants."+variant), component.Variants[variant]); err != nil {
			return err
		}
	}
	for bp, decl := range component.Responsive {
		field := fieldForComponent(name, "responsive."+bp)
		if _, ok := breakpoints[bp]; !ok {
			return cascadeerrors.NewValidationError(field, fmt.Sprintf("references unknown breakpoint %q", bp), nil)
		}
		if err := validateDeclaration(field, decl); err != nil {
			return err
		}
	}
	return nil
}

func validateDeclaration(field string, decl Declaration) error {
	for property := range decl {
		if property == "" {
			return cascadeerrors.NewValidationError(field, "property name must not be empty", nil)
		}
	}
	return nil
}
