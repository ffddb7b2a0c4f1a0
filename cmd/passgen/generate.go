package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
)

type generateFlags struct {
	length           int
	noUpper          bool
	noLower          bool
	noDigits         bool
	noSymbols        bool
	excludeAmbiguous bool
	count            int
	quiet            bool
}

func (f generateFlags) options() crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:           f.length,
		Uppercase:        !f.noUpper,
		Lowercase:        !f.noLower,
		Numbers:          !f.noDigits,
		Symbols:          !f.noSymbols,
		ExcludeAmbiguous: f.excludeAmbiguous,
	}
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one or more random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", f.count)
			}

			gen := crypto.NewGenerator(nil)
			if w := gen.Selector().Warning(); w != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			opts := f.options()
			pool := opts.Pool()
			for i := 0; i < f.count; i++ {
				pw, err := gen.Generate(opts)
				if err != nil {
					return err
				}
				if f.quiet {
					fmt.Fprintln(cmd.OutOrStdout(), pw)
					continue
				}
				s := crypto.EstimateStrength(pw, pool)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%.1f bits)\n", pw, s.Category, s.Bits)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", crypto.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	cmd.Flags().BoolVar(&f.noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&f.noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&f.noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&f.noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&f.excludeAmbiguous, "exclude-ambiguous", false, "exclude the look-alike characters O, 0, I and l")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "number of passwords to print")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print only the passwords")

	return cmd
}
