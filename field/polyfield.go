package field

import (
	"fmt"

	"github.com/ppopth/g2p/poly"
)

// PolyField is a finite field GF(2^p) without precomputed tables. Every
// multiplication is a carry-less multiply followed by reduction against
// the modulus, and inversion runs the extended Euclidean algorithm, so
// operations cost O(p) instead of O(1). In exchange it supports every
// degree up to 63, far past where LogField's tables stop fitting in
// memory.
type PolyField struct {
	degree  uint
	size    uint64
	mask    uint64
	modulus poly.Poly
	name    string
}

// NewPoly creates the untabled field GF(2^degree) defined by the given
// modulus. The modulus must be an irreducible polynomial of exactly
// that degree.
func NewPoly(degree uint, modulus poly.Poly) (*PolyField, error) {
	if degree < 1 || degree > poly.MaxDegree {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDegree, degree)
	}
	if d, ok := modulus.Degree(); !ok || d != degree {
		return nil, fmt.Errorf("%w: %v is not of degree %d", ErrWrongDegree, modulus, degree)
	}
	if !modulus.IsIrreducible() {
		return nil, fmt.Errorf("%w: %v", ErrNotIrreducible, modulus)
	}
	return &PolyField{
		degree:  degree,
		size:    1 << degree,
		mask:    1<<degree - 1,
		modulus: modulus,
		name:    fmt.Sprintf("GF2_%d", degree),
	}, nil
}

// NewGF2_32 creates GF(2^32) with the irreducible polynomial
// x^32 + x^7 + x^3 + x^2 + 1.
func NewGF2_32() *PolyField {
	f, err := NewPoly(32, 0x10000008d)
	if err != nil {
		panic(err)
	}
	return f
}

// Degree returns the extension degree p.
func (f *PolyField) Degree() uint { return f.degree }

// Size returns 2^p. For degree 63 this is 1<<63.
func (f *PolyField) Size() uint64 { return f.size }

// Modulus returns the irreducible polynomial defining the field.
func (f *PolyField) Modulus() poly.Poly { return f.modulus }

// Name returns the field's display name, e.g. "GF2_32".
func (f *PolyField) Name() string { return f.name }

// Zero returns the additive identity.
func (f *PolyField) Zero() Element { return polyElement{0, f} }

// One returns the multiplicative identity.
func (f *PolyField) One() Element { return polyElement{1, f} }

// Element converts an integer bit pattern into a field element, masking
// it to p bits.
func (f *PolyField) Element(v uint64) Element { return polyElement{v & f.mask, f} }

// FromBits builds an element from the first bitLen bits of data, most
// significant bit first.
func (f *PolyField) FromBits(data []byte, bitLen int) Element {
	return f.Element(bitsToUint64(data, bitLen))
}

// Random returns a uniformly random field element.
func (f *PolyField) Random() (Element, error) {
	v, err := randomUint64()
	if err != nil {
		return nil, err
	}
	return f.Element(v), nil
}

type polyElement struct {
	v uint64
	f *PolyField
}

func (e polyElement) sameField(b Element) polyElement {
	o, ok := b.(polyElement)
	if !ok || o.f != e.f {
		panic("field: incompatible field elements")
	}
	return o
}

func (e polyElement) Add(b Element) Element {
	o := e.sameField(b)
	return polyElement{e.v ^ o.v, e.f}
}

func (e polyElement) Sub(b Element) Element {
	return e.Add(b)
}

func (e polyElement) Mul(b Element) Element {
	o := e.sameField(b)
	p := poly.MulMod(poly.Poly(e.v), poly.Poly(o.v), e.f.modulus)
	return polyElement{uint64(p), e.f}
}

func (e polyElement) Div(b Element) (Element, error) {
	o := e.sameField(b)
	inv, err := o.Inv()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv), nil
}

func (e polyElement) Inv() (Element, error) {
	inv, ok := poly.Poly(e.v).InverseMod(e.f.modulus)
	if !ok {
		// An irreducible modulus is coprime to every non-zero residue,
		// so only zero lacks an inverse.
		return nil, ErrDivisionByZero
	}
	return polyElement{uint64(inv), e.f}, nil
}

func (e polyElement) Pow(n uint64) Element {
	result := poly.Poly(1)
	base := poly.Poly(e.v)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = poly.MulMod(result, base, e.f.modulus)
		}
		base = poly.MulMod(base, base, e.f.modulus)
	}
	return polyElement{uint64(result), e.f}
}

func (e polyElement) IsZero() bool { return e.v == 0 }

func (e polyElement) Equal(b Element) bool {
	o, ok := b.(polyElement)
	return ok && o.f == e.f && o.v == e.v
}

func (e polyElement) Uint64() uint64 { return e.v }

func (e polyElement) Bits(bitLen int) []byte { return uint64ToBits(e.v, bitLen) }

func (e polyElement) String() string { return fmt.Sprintf("%d_%s", e.v, e.f.name) }
