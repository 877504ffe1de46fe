package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/config"
	"github.com/alexisbeaulieu97/cascade/internal/responsive"
	"github.com/alexisbeaulieu97/cascade/internal/stylesheet"
)

// loadSheet loads the theme named by --theme and builds its style sheet.
func loadSheet(flags *rootFlags, operation string) (*stylesheet.Sheet, error) {
	flags.log.Debug("loading theme", "path", flags.themePath)

	theme, err := config.LoadTheme(flags.themePath)
	if err != nil {
		flags.log.Error(err, "failed to load theme", "path", flags.themePath)
		return nil, newCommandError(operation, "loading theme "+flags.themePath, err, "Check the theme file or create one with 'cascade init'.")
	}

	sheet, err := stylesheet.Build(theme)
	if err != nil {
		return nil, newCommandError(operation, "building style sheet", err, "Check the theme breakpoints and components.")
	}

	flags.log.Info("theme loaded", "name", theme.Name, "rules", sheet.Len())
	return sheet, nil
}

// loadBreakpoints returns the theme breakpoints, falling back to the default
// set when --theme was left at its default and no theme file exists there.
func loadBreakpoints(cmd *cobra.Command, flags *rootFlags, operation string) (responsive.Breakpoints, error) {
	if !cmd.Flags().Changed("theme") {
		if _, err := os.Stat(flags.themePath); errors.Is(err, os.ErrNotExist) {
			flags.log.Debug("no theme file, using default breakpoints", "path", flags.themePath)
			return responsive.DefaultBreakpoints(), nil
		}
	}

	sheet, err := loadSheet(flags, operation)
	if err != nil {
		return responsive.Breakpoints{}, err
	}
	return sheet.Breakpoints(), nil
}

// requireComponent fails when the sheet does not define component.
func requireComponent(sheet *stylesheet.Sheet, component, operation string) error {
	if sheet.HasComponent(component) {
		return nil
	}
	return newCommandError(operation, "looking up component "+component, errors.New("component not defined by theme"), "Available components: "+joinOrNone(sheet.Components())+".")
}
