package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/logger"
)

// app holds state shared by the subcommands once the root pre-run has loaded it.
type app struct {
	cfg       config.Config
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "passgen generates random passwords",
		Long: `passgen generates random passwords from selectable character classes
and estimates their strength. It runs as a one-shot command, an
interactive terminal UI, or a local HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			closer, err := logger.Init(logger.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				File:   cfg.LogFile,
			})
			if err != nil {
				return fmt.Errorf("initialising logger: %w", err)
			}
			a.cfg, a.logCloser = cfg, closer
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newTUICmd(a),
		newServeCmd(a),
	)
	return rootCmd
}
