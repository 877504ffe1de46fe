package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/config"
	"github.com/alexisbeaulieu97/cascade/internal/scaffold"
)

type initOptions struct {
	name        string
	format      string
	noGit       bool
	interactive bool
}

func newInitCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, rootFlags, dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Theme name (defaults to the directory name)")
	cmd.Flags().StringVar(&opts.format, "format", string(config.FormatYAML), "Theme file format (yaml or toml)")
	cmd.Flags().BoolVar(&opts.noGit, "no-git", false, "Skip creating a git repository")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for the theme settings")

	return cmd
}

func runInit(cmd *cobra.Command, flags *rootFlags, dir string, opts *initOptions) error {
	if opts.interactive {
		if err := promptInitOptions(dir, opts); err != nil {
			return newCommandError("create theme", "reading answers", err, "Run without --interactive and pass flags instead.")
		}
	}

	format, err := config.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("create theme", "validating format", err, "Use --format yaml or --format toml.")
	}
	if opts.name != "" && !config.IsIdentifier(opts.name) {
		return newCommandError("create theme", fmt.Sprintf("validating name %q", opts.name), errors.New("name must start with a lowercase letter and contain only lowercase letters, digits and dashes"), "Pick a name such as 'acme-ui'.")
	}

	result, err := scaffold.Create(cmd.Context(), scaffold.Options{
		Dir:     dir,
		Name:    opts.name,
		Format:  format,
		InitGit: !opts.noGit,
		Logger:  flags.log,
	})
	if err != nil {
		suggestion := "Check directory permissions and try again."
		if errors.Is(err, scaffold.ErrThemeExists) {
			suggestion = "Edit the existing theme or choose another directory."
		}
		return newCommandError("create theme", "scaffolding "+dir, err, suggestion)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ThemePath)
	if result.Commit != "" {
		fmt.Fprintf(out, "Initialized git repository (%s)\n", shortHash(result.Commit))
	}
	fmt.Fprintf(out, "Next: cascade --theme %s build --out dist/theme.css\n", result.ThemePath)
	return nil
}

func promptInitOptions(dir string, opts *initOptions) error {
	if opts.name == "" {
		abs, err := filepath.Abs(dir)
		if err == nil {
			opts.name = filepath.Base(abs)
		}
	}
	initGit := !opts.noGit

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call this theme?").
				Description("Used as the header of the generated stylesheet").
				Value(&opts.name).
				Validate(func(name string) error {
					if !config.IsIdentifier(name) {
						return errors.New("use lowercase letters, digits and dashes")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Which format should the theme file use?").
				Options(
					huh.NewOption("YAML (theme.yaml)", string(config.FormatYAML)),
					huh.NewOption("TOML (theme.toml)", string(config.FormatTOML)),
				).
				Value(&opts.format),
			huh.NewConfirm().
				Title("Create a git repository?").
				Value(&initGit),
		).
			Title("New theme").
			Description("Scaffold a starter theme with responsive components"),
	)

	if err := form.Run(); err != nil {
		return err
	}
	opts.noGit = !initGit
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
