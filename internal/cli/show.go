package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewShowCommand() *cobra.Command {
	var modulus string

	cmd := &cobra.Command{
		Use:   "show <polynomial> [<op> <polynomial>]",
		Short: "Render a polynomial, or evaluate a ring operation",
		Long: `Show renders a polynomial bit pattern as a sum of powers of x.
With three arguments it evaluates an operation first: "add" (XOR),
"mul" (carry-less product) or "mod" (long-division remainder). A
product computed with "mul" can be reduced in the same call by passing
--mod.`,
		Example: `  g2pgen show 0b10011
  g2pgen show 0b10011 add 0b1
  g2pgen show 0b10011 mul 0b10011 --mod 0b1000000`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", a)
				return nil
			}
			if len(args) != 3 {
				return fmt.Errorf("expected <polynomial> <op> <polynomial>")
			}
			b, err := parsePoly(args[2])
			if err != nil {
				return err
			}

			switch args[1] {
			case "add":
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", a.Add(b))
			case "mod":
				if b == 0 {
					return fmt.Errorf("cannot reduce modulo the zero polynomial")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", a.Mod(b))
			case "mul":
				product := a.Mul(b)
				if modulus == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", product)
					return nil
				}
				m, err := parsePoly(modulus)
				if err != nil {
					return err
				}
				if m == 0 {
					return fmt.Errorf("cannot reduce modulo the zero polynomial")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", product.Mod(m))
			default:
				return fmt.Errorf("unknown operation %q: want add, mul or mod", args[1])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modulus, "mod", "", "reduce a mul result against this modulus")
	return cmd
}
