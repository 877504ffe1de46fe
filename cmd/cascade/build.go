package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/stylesheet"
	"github.com/alexisbeaulieu97/cascade/pkg/diff"
)

var errStylesheetOutdated = errors.New("generated stylesheet differs from the file on disk")

type buildOptions struct {
	outPath string
	format  string
	check   bool
}

// registryOutput is the JSON form of the style and id registries a runtime
// resolver looks active style keys up in.
type registryOutput struct {
	Name        string                            `json:"name"`
	Breakpoints []breakpointOutput                `json:"breakpoints"`
	Styles      map[string]stylesheet.Declaration `json:"styles"`
	IDs         map[string]string                 `json:"ids"`
}

type breakpointOutput struct {
	Name     string  `json:"name"`
	MinWidth float64 `json:"min_width"`
}

func newBuildCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the CSS stylesheet for the theme",
		Long: "Generate the CSS stylesheet for the theme.\n\n" +
			"--format json writes the style and id registries instead of CSS.\n" +
			"Without --out the stylesheet is written to stdout. With --check the\n" +
			"file named by --out is compared against a fresh build and nothing is written.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the stylesheet to this file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Output format (css or json)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail when --out is not up to date")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *rootFlags, opts *buildOptions) error {
	if opts.check && opts.outPath == "" {
		return newCommandError("build stylesheet", "validating flags", errors.New("--check requires --out"), "Pass the stylesheet path to compare with --out.")
	}

	sheet, err := loadSheet(flags, "build stylesheet")
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch opts.format {
	case "css":
		if err := sheet.WriteCSS(&buf); err != nil {
			return newCommandError("build stylesheet", "rendering CSS", err, "Check the theme declarations.")
		}
	case "json":
		if err := writeRegistryJSON(&buf, sheet); err != nil {
			return newCommandError("build stylesheet", "rendering registries", err, "Check the theme declarations.")
		}
	default:
		return newCommandError("build stylesheet", "validating flags", fmt.Errorf("unknown format %q", opts.format), "Use --format css or --format json.")
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.check:
		return checkStylesheet(cmd, flags, opts.outPath, buf.Bytes())
	case opts.outPath == "":
		_, err := out.Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(opts.outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newCommandError("build stylesheet", "creating output directory", err, "Check directory permissions.")
		}
	}
	if err := os.WriteFile(opts.outPath, buf.Bytes(), 0o644); err != nil {
		return newCommandError("build stylesheet", "writing "+opts.outPath, err, "Check file permissions.")
	}

	flags.log.Info("stylesheet written", "path", opts.outPath, "rules", sheet.Len())
	fmt.Fprintf(out, "Wrote %d rules to %s\n", sheet.Len(), opts.outPath)
	return nil
}

func checkStylesheet(cmd *cobra.Command, flags *rootFlags, path string, generated []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return newCommandError("check stylesheet", "reading "+path, err, "Check file permissions.")
	}

	if bytes.Equal(existing, generated) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}

	flags.log.Warn("stylesheet out of date", "path", path)
	fmt.Fprint(cmd.OutOrStdout(), diff.GenerateUnifiedDiff(existing, generated, path, "generated"))
	return newCommandError("check stylesheet", path, errStylesheetOutdated, "Run 'cascade build --out "+path+"' to regenerate it.")
}

func writeRegistryJSON(buf *bytes.Buffer, sheet *stylesheet.Sheet) error {
	bps := sheet.Breakpoints().List()
	payload := registryOutput{
		Name:        sheet.Name(),
		Breakpoints: make([]breakpointOutput, len(bps)),
		Styles:      sheet.Styles(),
		IDs:         sheet.IDs(),
	}
	for i, bp := range bps {
		payload.Breakpoints[i] = breakpointOutput{Name: bp.Name, MinWidth: bp.MinWidth}
	}

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
