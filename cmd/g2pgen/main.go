package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ppopth/g2p/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "g2pgen",
		Short: "Finite field GF(2^p) tooling",
		Long: `g2pgen works with polynomials over GF(2) and the finite fields
GF(2^p) they define: it checks and searches irreducible moduli,
evaluates polynomial ring arithmetic, and generates Go source files
for field types with precomputed multiplication tables.`,
	}

	rootCmd.AddCommand(
		cli.NewGenerateCommand(),
		cli.NewCheckCommand(),
		cli.NewFindCommand(),
		cli.NewShowCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
