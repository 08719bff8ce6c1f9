package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <polynomial>",
		Short: "Check whether a polynomial is irreducible over GF(2)",
		Long: `Check reads a polynomial as an integer bit pattern (bit i is the
coefficient of x^i) and reports whether it is irreducible over GF(2),
i.e. whether it can serve as a field modulus.`,
		Example: `  g2pgen check 0x11b
  g2pgen check 0b10011
  g2pgen check 283`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			d, ok := p.Degree()
			if !ok {
				return fmt.Errorf("the zero polynomial has no degree")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (degree %d)\n", p, d)
			if p.IsIrreducible() {
				color.Green("✓ irreducible: defines the field GF(2^%d)", d)
			} else {
				color.Red("✗ reducible: not a valid field modulus")
			}
			return nil
		},
	}
	return cmd
}
