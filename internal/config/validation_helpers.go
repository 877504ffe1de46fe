package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	cascadeerrors "github.com/alexisbeaulieu97/cascade/pkg/errors"
)

// convertValidationError normalizes validator errors into cascade validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return cascadeerrors.NewValidationError(field, msg, err)
	}

	return cascadeerrors.NewValidationError("theme", err.Error(), err)
}

// documentFieldName drops the root struct name from the namespace, which
// already uses yaml tag names: "Theme.breakpoints[1].min_width" -> "breakpoints[1].min_width".
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForBreakpoint(index int, field string) string {
	return fmt.Sprintf("breakpoints[%d].%s", index, field)
}

func fieldForComponent(name, field string) string {
	return fmt.Sprintf("components[%s].%s", name, field)
}
