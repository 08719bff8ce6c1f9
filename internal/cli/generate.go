package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ppopth/g2p/internal/generator"
)

func NewGenerateCommand() *cobra.Command {
	var (
		name    string
		degree  uint
		modulus string
		pkg     string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Go source file defining a finite field type",
		Long: `Generate a standalone Go type for GF(2^degree) with its log and
antilog tables embedded as static data. The generated type needs no
dependencies and performs multiplication, division and inversion as
table lookups.

When --modulus is omitted, the first irreducible polynomial of the
requested degree is used.`,
		Example: `  # The AES field
  g2pgen generate --name GF256 --degree 8 --modulus 0x11b --package aes --out gf256.go

  # Let g2pgen pick the modulus
  g2pgen generate --name GF16 --degree 4 --package mycode --out gf16.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := generator.Config{
				Name:    name,
				Package: pkg,
				Output:  out,
				Degree:  degree,
			}
			if modulus != "" {
				m, err := parsePoly(modulus)
				if err != nil {
					return err
				}
				cfg.Modulus = m
			}
			if err := generator.Generate(cfg); err != nil {
				return err
			}
			color.Green("✓ wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the generated type (required)")
	cmd.Flags().UintVar(&degree, "degree", 0, fmt.Sprintf("field degree p, 1-%d (required)", generator.MaxDegree))
	cmd.Flags().StringVar(&modulus, "modulus", "", "modulus polynomial bit pattern (default: first irreducible)")
	cmd.Flags().StringVar(&pkg, "package", "", "package of the generated file (required)")
	cmd.Flags().StringVar(&out, "out", "", "output file path (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("degree")
	_ = cmd.MarkFlagRequired("package")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
