// Package cli defines the wordlelab command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlelab/internal/config"
)

// Options stores global CLI options shared between commands.
type Options struct {
	EnvFile   string
	LogLevel  string
	LogFormat string
}

// Execute builds the root command, runs it with the provided args and returns any error.
func Execute(args []string) error {
	rootCmd := newRootCommand(&Options{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wordlelab",
		Short:         "wordlelab is a Wordle game engine with HTTP and terminal front ends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "Path to a .env file (skipped when missing)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "Log format (json, console); overrides LOG_FORMAT")

	cmd.AddCommand(
		newServeCommand(opts),
		newPlayCommand(opts),
		newWordsCommand(opts),
		newScoreCommand(),
	)

	return cmd
}

// loadConfig reads the environment and applies the global flag overrides.
func loadConfig(opts *Options) (config.Config, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	return cfg, nil
}
