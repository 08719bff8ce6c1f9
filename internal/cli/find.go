package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ppopth/g2p/poly"
)

func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <degree>",
		Short: "Find the first irreducible polynomial of a degree",
		Long: `Find scans upward from 2^degree + 1 and prints the first
irreducible polynomial of the given degree, the same choice the
generate command makes when --modulus is omitted.`,
		Example: `  g2pgen find 8`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			degree, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return fmt.Errorf("invalid degree %q: %w", args[0], err)
			}
			m, err := poly.FirstIrreducible(uint(degree))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (0x%x, 0b%b)\n", m, uint64(m), uint64(m))
			return nil
		},
	}
	return cmd
}
