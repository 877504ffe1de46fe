package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/responsive"
)

type expandOptions struct {
	jsonOutput bool
}

func newExpandCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <base-key> [variant]",
		Short: "Expand a variant into one style key per breakpoint",
		Long: "Expand a variant into one style key per breakpoint.\n\n" +
			"The variant is a single value (grow), a comma separated list of\n" +
			"breakpoint=value pairs (small=shrink,large=grow) or an inline YAML\n" +
			"or JSON mapping ('{small: shrink, large: grow}').",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := ""
			if len(args) == 2 {
				variant = args[1]
			}
			return runExpand(cmd, rootFlags, args[0], variant, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output keys as a JSON array")

	return cmd
}

func runExpand(cmd *cobra.Command, flags *rootFlags, baseKey, rawVariant string, opts *expandOptions) error {
	bps, err := loadBreakpoints(cmd, flags, "expand variant")
	if err != nil {
		return err
	}

	variant, err := parseVariantArg(bps, rawVariant)
	if err != nil {
		return newCommandError("expand variant", fmt.Sprintf("parsing variant %q", rawVariant), err, "Use a single value or breakpoint=value pairs for: "+joinOrNone(bps.Names())+".")
	}

	keys := responsive.ExpandVariantAcrossBreakpoints(bps, baseKey, variant)
	flags.log.Debug("expanded variant", "base", baseKey, "variant", variant.String(), "keys", len(keys))

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(keys)
	}

	for _, key := range keys {
		fmt.Fprintln(out, key)
	}
	return nil
}
