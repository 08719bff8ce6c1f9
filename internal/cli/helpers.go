// Package cli implements the g2pgen subcommands.
package cli

import (
	"fmt"
	"strconv"

	"github.com/ppopth/g2p/poly"
)

// parsePoly reads a polynomial bit pattern in decimal, hex (0x…) or
// binary (0b…) notation.
func parsePoly(s string) (poly.Poly, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid polynomial %q: %w", s, err)
	}
	return poly.Poly(v), nil
}
