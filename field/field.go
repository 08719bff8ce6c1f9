// Package field provides finite fields GF(2^p) built from an
// irreducible modulus polynomial over GF(2).
//
// Two implementations share the same interface: LogField precomputes
// log/antilog tables for O(1) multiplication, division and inversion,
// and PolyField evaluates the polynomial arithmetic directly so it can
// cover degrees where tables would not fit in memory.
package field

import (
	"errors"

	"github.com/ppopth/g2p/poly"
)

var (
	// ErrDivisionByZero is returned when dividing by, or inverting,
	// the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrNotIrreducible is returned when the modulus is reducible and
	// therefore does not define a field.
	ErrNotIrreducible = errors.New("field: modulus is not irreducible")
	// ErrWrongDegree is returned when the modulus degree does not match
	// the requested field degree.
	ErrWrongDegree = errors.New("field: modulus degree does not match field degree")
	// ErrInvalidDegree is returned for degrees outside [1, 63].
	ErrInvalidDegree = errors.New("field: degree must be between 1 and 63")
	// ErrDegreeTooLarge is returned when the requested degree is too
	// large for table construction.
	ErrDegreeTooLarge = errors.New("field: degree too large for table construction")
)

// Field represents a finite field GF(2^p).
type Field interface {
	// Degree returns the extension degree p.
	Degree() uint

	// Size returns the number of elements, 2^p.
	Size() uint64

	// Modulus returns the irreducible polynomial defining the field.
	Modulus() poly.Poly

	// Zero returns the additive identity.
	Zero() Element

	// One returns the multiplicative identity.
	One() Element

	// Element converts an integer bit pattern into a field element,
	// masking it to p bits. Bit i of the pattern is the coefficient of
	// x^i of the residue.
	Element(v uint64) Element

	// FromBits builds an element from the first bitLen bits of data,
	// most significant bit first.
	FromBits(data []byte, bitLen int) Element

	// Random returns a uniformly random field element.
	Random() (Element, error)
}

// Element is an immutable value in some Field. Elements of different
// fields must not be mixed; doing so panics.
type Element interface {
	// Add returns a + b. In characteristic 2 this is XOR.
	Add(b Element) Element

	// Sub returns a - b, which equals a + b.
	Sub(b Element) Element

	// Mul returns a * b.
	Mul(b Element) Element

	// Div returns a / b, or ErrDivisionByZero if b is zero.
	Div(b Element) (Element, error)

	// Inv returns the multiplicative inverse, or ErrDivisionByZero for
	// the zero element.
	Inv() (Element, error)

	// Pow returns a^n, with a^0 = 1 for every a including zero.
	Pow(n uint64) Element

	// IsZero reports whether the element is zero.
	IsZero() bool

	// Equal reports whether two elements are the same value of the
	// same field.
	Equal(b Element) bool

	// Uint64 returns the underlying bit pattern.
	Uint64() uint64

	// Bits returns the element as bitLen bits, most significant first.
	Bits(bitLen int) []byte

	// String renders the element as "{value}_{FIELD}".
	String() string
}
