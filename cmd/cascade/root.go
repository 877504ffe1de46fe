package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cascade/internal/logger"
)

const defaultThemePath = "theme.yaml"

type rootFlags struct {
	verbose   bool
	logLevel  string
	themePath string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cascade",
		Short:         "cascade resolves responsive design-system styles across breakpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogger(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&flags.themePath, "theme", "t", defaultThemePath, "Path to the theme file (.yaml, .yml or .toml)")

	cmd.AddCommand(newExpandCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setupLogger(cmd *cobra.Command) error {
	level := f.logLevel
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use one of: debug, info, warn, error.")
	}
	f.log = log.With("command", cmd.Name())
	return nil
}
