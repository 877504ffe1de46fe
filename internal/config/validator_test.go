package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	cascadeerrors "github.com/alexisbeaulieu97/cascade/pkg/errors"
)

func TestValidateTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Theme)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(th *Theme) { th.Name = "" },
			wantField: "name",
			wantMsg:   "'required'",
		},
		{
			name:      "bad version",
			mutate:    func(th *Theme) { th.Version = "latest" },
			wantField: "version",
			wantMsg:   "'semver'",
		},
		{
			name:      "no breakpoints",
			mutate:    func(th *Theme) { th.Breakpoints = nil },
			wantField: "breakpoints",
		},
		{
			name:      "breakpoint name not an identifier",
			mutate:    func(th *Theme) { th.Breakpoints[1].Name = "Medium Screen" },
			wantField: "breakpoints[1].name",
			wantMsg:   "'identifier'",
		},
		{
			name:      "negative threshold",
			mutate:    func(th *Theme) { th.Breakpoints[0].MinWidth = -1 },
			wantField: "breakpoints[0].min_width",
		},
		{
			name:      "duplicate breakpoint",
			mutate:    func(th *Theme) { th.Breakpoints[2].Name = "small" },
			wantField: "breakpoints[2].name",
			wantMsg:   "duplicate breakpoint",
		},
		{
			name:      "thresholds not ascending",
			mutate:    func(th *Theme) { th.Breakpoints[2].MinWidth = 100 },
			wantField: "breakpoints[2].min_width",
			wantMsg:   "must be greater than medium",
		},
		{
			name:      "no components",
			mutate:    func(th *Theme) { th.Components = map[string]Component{} },
			wantField: "components",
		},
		{
			name: "responsive references unknown breakpoint",
			mutate: func(th *Theme) {
				button := th.Components["button"]
				button.Responsive = map[string]Declaration{"huge": {"padding": "0"}}
				th.Components["button"] = button
			},
			wantField: "components[button].responsive.huge",
			wantMsg:   "unknown breakpoint",
		},
		{
			name: "empty property name",
			mutate: func(th *Theme) {
				button := th.Components["button"]
				button.Base = Declaration{"": "x"}
				th.Components["button"] = button
			},
			wantField: "components[button].base",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			theme := Default("test")
			tt.mutate(theme)

			err := ValidateTheme(theme)
			var validationErr *cascadeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
			if tt.wantMsg != "" {
				require.Contains(t, validationErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateThemeAcceptsDefault(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateTheme(Default("")))
}

func TestValidateThemeNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateTheme(nil))
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}

func TestIsIdentifier(t *testing.T) {
	t.Parallel()

	require.True(t, IsIdentifier("x-large"))
	require.True(t, IsIdentifier("h2"))
	require.False(t, IsIdentifier("2xl"))
	require.False(t, IsIdentifier("Large"))
	require.False(t, IsIdentifier(""))
}

func TestThemeResponsiveBreakpoints(t *testing.T) {
	t.Parallel()

	bps, err := Default("").ResponsiveBreakpoints()
	require.NoError(t, err)
	require.Equal(t, []string{"small", "medium", "large", "xlarge"}, bps.Names())
}
