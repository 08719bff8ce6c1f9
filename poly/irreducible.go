package poly

import "fmt"

// IsIrreducible reports whether p is irreducible over GF(2), using
// Rabin's test: a polynomial f of degree d is irreducible iff
// x^(2^d) ≡ x (mod f) and gcd(x^(2^(d/r)) - x, f) = 1 for every prime r
// dividing d. Constants and the zero polynomial are not irreducible.
func (p Poly) IsIrreducible() bool {
	d, ok := p.Degree()
	if !ok || d == 0 {
		return false
	}
	if d == 1 {
		// x and x+1
		return true
	}
	x := X.Mod(p)
	if frobenius(d, p) != x {
		return false
	}
	for _, r := range primeDivisors(d) {
		h := frobenius(d/r, p).Add(x)
		if Gcd(p, h) != 1 {
			return false
		}
	}
	return true
}

// frobenius returns x^(2^k) mod m, computed by squaring x k times.
func frobenius(k uint, m Poly) Poly {
	h := X.Mod(m)
	for i := uint(0); i < k; i++ {
		h = MulMod(h, h, m)
	}
	return h
}

func primeDivisors(n uint) []uint {
	var primes []uint
	for r := uint(2); r*r <= n; r++ {
		if n%r != 0 {
			continue
		}
		primes = append(primes, r)
		for n%r == 0 {
			n /= r
		}
	}
	if n > 1 {
		primes = append(primes, n)
	}
	return primes
}

// FirstIrreducible returns the lexicographically first irreducible
// polynomial of the given degree, scanning from 2^degree + 1 upward. An
// irreducible polynomial exists for every positive degree, so the scan
// always terminates.
func FirstIrreducible(degree uint) (Poly, error) {
	if degree < 1 || degree > MaxDegree {
		return 0, fmt.Errorf("poly: no irreducible polynomial of degree %d", degree)
	}
	// A multiple of x has a zero constant term, so only odd candidates
	// can be irreducible. An irreducible polynomial of every degree
	// exists within the band, so the scan terminates before leaving it.
	for m := uint64(1)<<degree + 1; ; m += 2 {
		if Poly(m).IsIrreducible() {
			return Poly(m), nil
		}
	}
}
