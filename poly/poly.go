// Package poly implements arithmetic on polynomials over GF(2).
//
// A polynomial is packed into a single uint64, where bit i holds the
// coefficient of x^i, so the representable degrees are 0 through 63.
// Multiplication widens into a Product, which keeps the exact 128-bit
// result until it is explicitly reduced against a modulus.
package poly

import (
	"math/bits"
	"strings"
)

// Poly is a polynomial over GF(2), bit i holding the coefficient of x^i.
type Poly uint64

// X is the polynomial x.
const X Poly = 0b10

// MaxDegree is the highest representable degree.
const MaxDegree = 63

// Add returns p + q. In GF(2) addition is XOR, so it is also subtraction
// and its own inverse.
func (p Poly) Add(q Poly) Poly {
	return p ^ q
}

// Degree returns the degree of p, which is the index of its highest set
// bit. The second return value is false for the zero polynomial, whose
// degree is undefined.
func (p Poly) Degree() (uint, bool) {
	if p == 0 {
		return 0, false
	}
	return uint(bits.Len64(uint64(p)) - 1), true
}

// Mul returns the exact carry-less product of p and q. The result can
// have degree up to 126 and therefore lives in a double-width Product.
func (p Poly) Mul(q Poly) Product {
	var hi, lo uint64
	a := uint64(p)
	for b := uint64(q); b != 0; b &= b - 1 {
		i := uint(bits.TrailingZeros64(b))
		lo ^= a << i
		if i > 0 {
			hi ^= a >> (64 - i)
		}
	}
	return Product{hi: hi, lo: lo}
}

// Mod returns the remainder of p divided by m. It panics if m is the
// zero polynomial.
func (p Poly) Mod(m Poly) Poly {
	return Product{lo: uint64(p)}.Mod(m)
}

// MulMod returns a*b mod m without overflow.
func MulMod(a, b, m Poly) Poly {
	return a.Mul(b).Mod(m)
}

// DivMod returns the quotient and remainder of a divided by b. It panics
// if b is the zero polynomial.
func DivMod(a, b Poly) (q, r Poly) {
	bd, ok := b.Degree()
	if !ok {
		panic("poly: division by the zero polynomial")
	}
	r = a
	for {
		rd, ok := r.Degree()
		if !ok || rd < bd {
			return q, r
		}
		shift := rd - bd
		q |= 1 << shift
		r ^= b << shift
	}
}

// Gcd returns the greatest common divisor of a and b.
func Gcd(a, b Poly) Poly {
	for b != 0 {
		a, b = b, a.Mod(b)
	}
	return a
}

// InverseMod returns the multiplicative inverse of a modulo m, computed
// with the extended Euclidean algorithm. The second return value is
// false when a and m are not coprime (or a is zero), in which case no
// inverse exists.
func (p Poly) InverseMod(m Poly) (Poly, bool) {
	if p == 0 {
		return 0, false
	}
	// Invariant: r0 = s0*p (mod m) and r1 = s1*p (mod m).
	r0, r1 := m, p.Mod(m)
	s0, s1 := Poly(0), Poly(1)
	for r1 != 0 {
		q, r := DivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Add(MulMod(q, s1, m))
	}
	if r0 != 1 {
		return 0, false
	}
	return s0, true
}

// String renders p as a sum of powers of x in descending order, e.g.
// 0b10011 renders as "x^4 + x + 1". The zero polynomial renders as "0".
func (p Poly) String() string {
	return termString(0, uint64(p))
}

// Product is the exact double-width result of multiplying two
// polynomials. It can only be narrowed back to a Poly through Mod.
type Product struct {
	hi, lo uint64
}

// Hi returns the coefficients of x^64 through x^127.
func (pr Product) Hi() uint64 { return pr.hi }

// Lo returns the coefficients of x^0 through x^63.
func (pr Product) Lo() uint64 { return pr.lo }

// Degree returns the degree of the product, or false for zero.
func (pr Product) Degree() (uint, bool) {
	if pr.hi != 0 {
		return uint(63 + bits.Len64(pr.hi)), true
	}
	if pr.lo != 0 {
		return uint(bits.Len64(pr.lo) - 1), true
	}
	return 0, false
}

// Mod reduces the product modulo m by shift-and-XOR long division: while
// the remaining degree is at least the degree of m, m is shifted so the
// leading terms align and XORed in. It panics if m is the zero
// polynomial.
func (pr Product) Mod(m Poly) Poly {
	md, ok := m.Degree()
	if !ok {
		panic("poly: reduction modulo the zero polynomial")
	}
	for {
		d, ok := pr.Degree()
		if !ok || d < md {
			return Poly(pr.lo)
		}
		shift := d - md
		if shift >= 64 {
			pr.hi ^= uint64(m) << (shift - 64)
		} else {
			pr.lo ^= uint64(m) << shift
			if shift > 0 {
				pr.hi ^= uint64(m) >> (64 - shift)
			}
		}
	}
}

// String renders the product in the same descending power-sum form as
// Poly.String.
func (pr Product) String() string {
	return termString(pr.hi, pr.lo)
}

func termString(hi, lo uint64) string {
	if hi == 0 && lo == 0 {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := 127; i >= 0; i-- {
		word, bit := lo, uint(i)
		if i >= 64 {
			word, bit = hi, uint(i-64)
		}
		if word&(1<<bit) == 0 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch i {
		case 0:
			b.WriteString("1")
		case 1:
			b.WriteString("x")
		default:
			b.WriteString("x^")
			writeUint(&b, uint(i))
		}
	}
	return b.String()
}

func writeUint(b *strings.Builder, v uint) {
	var buf [3]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	b.Write(buf[i:])
}
