package responsive

import (
	"testing"

	"github.com/stretchr/testify/require"

	cascadeerrors "github.com/alexisbeaulieu97/cascade/pkg/errors"
)

func threeBreakpoints() Breakpoints {
	return MustBreakpoints(
		Breakpoint{Name: "small", MinWidth: 0},
		Breakpoint{Name: "medium", MinWidth: 480},
		Breakpoint{Name: "large", MinWidth: 840},
	)
}

func TestExpandVariantAcrossBreakpoints(t *testing.T) {
	t.Parallel()

	bps := DefaultBreakpoints()

	tests := []struct {
		name    string
		variant Variant
		want    []string
	}{
		{
			name:    "single value carries to every breakpoint",
			variant: SingleVariant("grow"),
			want:    []string{"button--grow__small", "button--grow__medium", "button--grow__large", "button--grow__xlarge"},
		},
		{
			name:    "smallest only behaves like the single form",
			variant: VariantMap(map[string]string{"small": "grow"}),
			want:    []string{"button--grow__small", "button--grow__medium", "button--grow__large", "button--grow__xlarge"},
		},
		{
			name:    "larger breakpoints override the carried value",
			variant: VariantMap(map[string]string{"medium": "m", "large": "l"}),
			want:    []string{"button--m__small", "button--m__medium", "button--l__large", "button--l__xlarge"},
		},
		{
			name:    "nothing specified keeps the empty variant",
			variant: VariantMap(nil),
			want:    []string{"button--__small", "button--__medium", "button--__large", "button--__xlarge"},
		},
		{
			name:    "empty single variant",
			variant: SingleVariant(""),
			want:    []string{"button--__small", "button--__medium", "button--__large", "button--__xlarge"},
		},
		{
			name:    "unknown breakpoints are ignored",
			variant: VariantMap(map[string]string{"huge": "x", "large": "grow"}),
			want:    []string{"button--grow__small", "button--grow__medium", "button--grow__large", "button--grow__xlarge"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ExpandVariantAcrossBreakpoints(bps, "button--", tt.variant))
		})
	}
}

func TestExpandVariantEndToEnd(t *testing.T) {
	t.Parallel()

	variant := VariantMap(map[string]string{"small": "shrink", "large": "grow"})
	keys := ExpandVariantAcrossBreakpoints(threeBreakpoints(), "button--", variant)

	require.Equal(t, []string{"button--shrink__small", "button--shrink__medium", "button--grow__large"}, keys)
}

func TestExpandVariantCompleteness(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		defs := make([]Breakpoint, n)
		for i := range defs {
			defs[i] = Breakpoint{Name: string(rune('a' + i)), MinWidth: float64(i * 100)}
		}
		bps := MustBreakpoints(defs...)

		keys := ExpandVariantAcrossBreakpoints(bps, "card--", VariantMap(map[string]string{"a": "flat"}))
		require.Len(t, keys, n)
		for i, key := range keys {
			prefix, breakpoint, ok := ParseStyleKey(key)
			require.True(t, ok)
			require.Equal(t, "card--flat", prefix)
			require.Equal(t, defs[i].Name, breakpoint)
		}
	}
}

func TestExpandVariantEmptyBreakpoints(t *testing.T) {
	t.Parallel()

	require.Empty(t, ExpandVariantAcrossBreakpoints(Breakpoints{}, "button--", SingleVariant("grow")))
}

func TestExpandVariantIsIdempotent(t *testing.T) {
	t.Parallel()

	bps := DefaultBreakpoints()
	variant := VariantMap(map[string]string{"medium": "m", "xlarge": "x"})

	first := ExpandVariantAcrossBreakpoints(bps, "flex--", variant)
	second := ExpandVariantAcrossBreakpoints(bps, "flex--", variant)
	require.Equal(t, first, second)
}

func TestVariantMapIsCopied(t *testing.T) {
	t.Parallel()

	entries := map[string]string{"small": "a"}
	variant := VariantMap(entries)
	entries["small"] = "b"

	keys := ExpandVariantAcrossBreakpoints(threeBreakpoints(), "x--", variant)
	require.Equal(t, "x--a__small", keys[0])
}

func TestActiveStyleKeys(t *testing.T) {
	t.Parallel()

	bps := threeBreakpoints()
	variant := VariantMap(map[string]string{"small": "shrink", "large": "grow"})

	require.Equal(t,
		[]string{"button--shrink__small", "button--shrink__medium"},
		ActiveStyleKeys(bps, "button--", variant, bps.Match(600)),
	)
	require.Equal(t,
		[]string{"button--shrink__small", "button--shrink__medium", "button--grow__large"},
		ActiveStyleKeys(bps, "button--", variant, bps.Match(1000)),
	)
	require.Empty(t, ActiveStyleKeys(bps, "button--", variant, ActiveMedia{}))
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	bps := threeBreakpoints()

	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{name: "nil", raw: nil, want: []string{"b--__small", "b--__medium", "b--__large"}},
		{name: "string", raw: "grow", want: []string{"b--grow__small", "b--grow__medium", "b--grow__large"}},
		{name: "string map", raw: map[string]string{"medium": "m"}, want: []string{"b--m__small", "b--m__medium", "b--m__large"}},
		{name: "decoded map", raw: map[string]any{"small": "s", "large": 2}, want: []string{"b--s__small", "b--s__medium", "b--2__large"}},
		{name: "number coerced at smallest", raw: 3, want: []string{"b--3__small", "b--3__medium", "b--3__large"}},
		{name: "slice coerced at smallest", raw: []string{"a"}, want: []string{"b--[a]__small", "b--[a]__medium", "b--[a]__large"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ExpandVariantAcrossBreakpoints(bps, "b--", ParseVariant(tt.raw)))
		})
	}
}

func TestParseVariantStrict(t *testing.T) {
	t.Parallel()

	bps := threeBreakpoints()

	t.Run("accepts strings and known breakpoints", func(t *testing.T) {
		t.Parallel()
		v, err := ParseVariantStrict(bps, map[string]any{"small": "s", "large": "l"})
		require.NoError(t, err)
		require.Equal(t, "large=l,small=s", v.String())

		v, err = ParseVariantStrict(bps, "grow")
		require.NoError(t, err)
		require.Equal(t, "grow", v.String())
	})

	t.Run("rejects unknown breakpoints", func(t *testing.T) {
		t.Parallel()
		_, err := ParseVariantStrict(bps, map[string]string{"huge": "x"})
		var variantErr *cascadeerrors.VariantError
		require.ErrorAs(t, err, &variantErr)
		require.Equal(t, "huge", variantErr.Breakpoint)
	})

	t.Run("rejects non string values", func(t *testing.T) {
		t.Parallel()
		_, err := ParseVariantStrict(bps, map[string]any{"small": 1})
		require.ErrorContains(t, err, "must be a string")
	})

	t.Run("rejects unsupported shapes", func(t *testing.T) {
		t.Parallel()
		_, err := ParseVariantStrict(bps, 42)
		require.ErrorContains(t, err, "unsupported variant type int")
	})
}

func TestParseVariantFlag(t *testing.T) {
	t.Parallel()

	bps := threeBreakpoints()

	v, err := ParseVariantFlag(bps, "grow")
	require.NoError(t, err)
	require.Equal(t, "grow", v.String())

	v, err = ParseVariantFlag(bps, " small=shrink, large=grow ")
	require.NoError(t, err)
	require.Equal(t,
		[]string{"button--shrink__small", "button--shrink__medium", "button--grow__large"},
		ExpandVariantAcrossBreakpoints(bps, "button--", v),
	)

	_, err = ParseVariantFlag(bps, "small=shrink,huge=grow")
	require.ErrorContains(t, err, "unknown breakpoint")

	_, err = ParseVariantFlag(bps, "small=shrink,grow")
	require.ErrorContains(t, err, "expected breakpoint=value")
}
