package main

import (
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sel := crypto.NewSelector()
			fp, err := crypto.NewRandomFingerprinter(sel)
			if err != nil {
				return err
			}
			return tui.Run(tui.Config{
				Generator:     crypto.NewGenerator(sel),
				Fingerprinter: fp,
				Options:       crypto.DefaultOptions(),
				HistorySize:   a.cfg.HistorySize,
				Theme:         tui.ParseTheme(theme),
			})
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "dark", "colour theme: dark or light")
	return cmd
}
