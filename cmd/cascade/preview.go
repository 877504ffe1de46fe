package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/tui"
	"github.com/alexisbeaulieu97/cascade/internal/watch"
)

type previewOptions struct {
	width           float64
	pixelsPerColumn float64
	watch           bool
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <component> [variant]",
		Short: "Interactively preview a component while resizing the viewport",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := ""
			if len(args) == 2 {
				variant = args[1]
			}
			return runPreview(cmd, rootFlags, args[0], variant, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "Start with a fixed viewport width in pixels")
	cmd.Flags().Float64Var(&opts.pixelsPerColumn, "px-per-column", tui.DefaultPixelsPerColumn, "Pixels per terminal column")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the theme when the file changes")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, component, rawVariant string, opts *previewOptions) error {
	if opts.width < 0 {
		return newCommandError("preview component", "validating width", fmt.Errorf("width %v is negative", opts.width), "Pass a width of zero or more pixels.")
	}

	sheet, err := loadSheet(flags, "preview component")
	if err != nil {
		return err
	}
	if err := requireComponent(sheet, component, "preview component"); err != nil {
		return err
	}

	variant, err := parseVariantArg(sheet.Breakpoints(), rawVariant)
	if err != nil {
		return newCommandError("preview component", fmt.Sprintf("parsing variant %q", rawVariant), err, "Use a single value or breakpoint=value pairs.")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := tui.NewModel(sheet, tui.Options{
		Component:       component,
		Variant:         variant,
		PixelsPerColumn: opts.pixelsPerColumn,
		Width:           opts.width,
		FixedWidth:      cmd.Flags().Changed("width"),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watch {
		watchCtx, cancelWatch := context.WithCancel(ctx)
		defer cancelWatch()
		go func() {
			reload := func() {
				flags.log.Debug("theme changed, reloading", "path", flags.themePath)
				next, err := loadSheet(flags, "reload theme")
				program.Send(tui.ThemeReloadedMsg{Sheet: next, Err: err})
			}
			err := watch.File(watchCtx, flags.themePath, reload, watch.Options{Logger: flags.log})
			if err != nil && !errors.Is(err, context.Canceled) {
				flags.log.Error(err, "theme watcher stopped", "path", flags.themePath)
			}
		}()
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
