package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/stylesheet"
	"github.com/alexisbeaulieu97/cascade/internal/tui"
)

var (
	resolveLabelStyle  = lipgloss.NewStyle().Bold(true)
	resolveActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	resolveMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type resolveOptions struct {
	width           float64
	pixelsPerColumn float64
	jsonOutput      bool
}

type resolveOutput struct {
	Component   string            `json:"component"`
	Variant     string            `json:"variant"`
	Effective   string            `json:"effective_variant"`
	Width       float64           `json:"width"`
	Matched     []string          `json:"matched"`
	Keys        []string          `json:"keys"`
	ActiveKeys  []string          `json:"active_keys"`
	IDs         string            `json:"ids"`
	Declaration map[string]string `json:"declaration"`
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component> [variant]",
		Short: "Resolve the active styles of a component at a viewport width",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := ""
			if len(args) == 2 {
				variant = args[1]
			}
			return runResolve(cmd, rootFlags, args[0], variant, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "Viewport width in pixels (defaults to the terminal width)")
	cmd.Flags().Float64Var(&opts.pixelsPerColumn, "px-per-column", tui.DefaultPixelsPerColumn, "Pixels per terminal column when the width comes from the terminal")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resolution as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, flags *rootFlags, component, rawVariant string, opts *resolveOptions) error {
	if opts.width < 0 {
		return newCommandError("resolve styles", "validating width", fmt.Errorf("width %v is negative", opts.width), "Pass a width of zero or more pixels.")
	}

	sheet, err := loadSheet(flags, "resolve styles")
	if err != nil {
		return err
	}
	if err := requireComponent(sheet, component, "resolve styles"); err != nil {
		return err
	}

	bps := sheet.Breakpoints()
	variant, err := parseVariantArg(bps, rawVariant)
	if err != nil {
		return newCommandError("resolve styles", fmt.Sprintf("parsing variant %q", rawVariant), err, "Use a single value or breakpoint=value pairs for: "+joinOrNone(bps.Names())+".")
	}

	width := viewportWidth(opts.width, cmd.Flags().Changed("width"), cmd.OutOrStdout(), opts.pixelsPerColumn, bps)
	res := sheet.ResolveWidth(component, variant, width)
	flags.log.Debug("resolved component", "component", component, "width", width, "active_keys", len(res.ActiveKeys))

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeResolveJSON(out, res, width)
	}
	writeResolveText(out, res, width)
	return nil
}

func writeResolveJSON(out io.Writer, res stylesheet.Resolution, width float64) error {
	payload := resolveOutput{
		Component:   res.Component,
		Variant:     res.Variant.String(),
		Effective:   res.Effective,
		Width:       width,
		Matched:     nonNil(res.Matched),
		Keys:        nonNil(res.Keys),
		ActiveKeys:  nonNil(res.ActiveKeys),
		IDs:         res.IDs,
		Declaration: map[string]string(res.Declaration),
	}
	if payload.Declaration == nil {
		payload.Declaration = map[string]string{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeResolveText(out io.Writer, res stylesheet.Resolution, width float64) {
	variant := res.Variant.String()
	if variant == "" {
		variant = "(base)"
	}

	fmt.Fprintf(out, "%s %s\n", resolveLabelStyle.Render("Component:"), res.Component)
	fmt.Fprintf(out, "%s %s\n", resolveLabelStyle.Render("Variant:"), variant)
	effective := res.Effective
	if effective == "" {
		effective = "(base)"
	}
	fmt.Fprintf(out, "%s %s\n", resolveLabelStyle.Render("Effective:"), effective)
	fmt.Fprintf(out, "%s %gpx\n", resolveLabelStyle.Render("Viewport:"), width)
	fmt.Fprintf(out, "%s %s\n", resolveLabelStyle.Render("Matched:"), joinOrNone(res.Matched))

	fmt.Fprintln(out, resolveLabelStyle.Render("Keys:"))
	active := make(map[string]bool, len(res.ActiveKeys))
	for _, key := range res.ActiveKeys {
		active[key] = true
	}
	for _, key := range res.Keys {
		if active[key] {
			fmt.Fprintf(out, "  %s %s\n", resolveActiveStyle.Render("✓"), key)
			continue
		}
		fmt.Fprintf(out, "  %s\n", resolveMutedStyle.Render("· "+key))
	}

	fmt.Fprintf(out, "%s %s\n", resolveLabelStyle.Render("IDs:"), res.IDs)

	fmt.Fprintln(out, resolveLabelStyle.Render("Declaration:"))
	props := res.Declaration.Properties()
	if len(props) == 0 {
		fmt.Fprintln(out, "  "+resolveMutedStyle.Render("(empty)"))
		return
	}
	for _, prop := range props {
		fmt.Fprintf(out, "  %s: %s;\n", prop, strings.TrimSpace(res.Declaration[prop]))
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
