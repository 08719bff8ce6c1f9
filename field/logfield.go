package field

import (
	"fmt"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/g2p/poly"
)

var log = logging.Logger("field")

// MaxTableDegree is the largest extension degree for which LogField will
// build tables. Beyond it the two 2^p-entry tables stop being a sensible
// use of memory; PolyField covers the remaining degrees.
const MaxTableDegree = 24

// LogField is a finite field GF(2^p) with table-accelerated arithmetic.
// At construction it verifies that the modulus is irreducible, picks the
// smallest generator of the multiplicative group, and records every
// power of that generator in a pair of log/antilog tables. The tables
// are written once and only read afterwards, so a LogField is safe for
// concurrent use.
type LogField struct {
	degree    uint
	size      uint64
	mask      uint64
	modulus   poly.Poly
	generator uint64
	name      string

	// expt[i] is generator^i; logt[v] is the discrete log of v.
	// logt[0] is never read, the zero element has no logarithm.
	expt []uint32
	logt []uint32
}

// New creates the field GF(2^degree) defined by the given modulus. The
// modulus must be an irreducible polynomial of exactly that degree,
// otherwise the residue ring is not a field and construction fails.
func New(degree uint, modulus poly.Poly) (*LogField, error) {
	if degree < 1 || degree > poly.MaxDegree {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDegree, degree)
	}
	if degree > MaxTableDegree {
		return nil, fmt.Errorf("%w: 2^%d entries (max degree %d)", ErrDegreeTooLarge, degree, MaxTableDegree)
	}
	if d, ok := modulus.Degree(); !ok || d != degree {
		return nil, fmt.Errorf("%w: %v is not of degree %d", ErrWrongDegree, modulus, degree)
	}
	if !modulus.IsIrreducible() {
		return nil, fmt.Errorf("%w: %v", ErrNotIrreducible, modulus)
	}

	f := &LogField{
		degree:  degree,
		size:    1 << degree,
		mask:    1<<degree - 1,
		modulus: modulus,
		name:    fmt.Sprintf("GF%d", uint64(1)<<degree),
	}
	f.buildTables()
	log.Debugf("built %s: modulus %v, generator %d", f.name, modulus, f.generator)
	return f, nil
}

// NewAuto creates GF(2^degree) using the first irreducible polynomial of
// that degree as the modulus.
func NewAuto(degree uint) (*LogField, error) {
	if degree < 1 || degree > MaxTableDegree {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDegree, degree)
	}
	m, err := poly.FirstIrreducible(degree)
	if err != nil {
		return nil, err
	}
	return New(degree, m)
}

// buildTables searches the smallest residue whose multiplicative order
// is 2^p - 1 and records its powers. The multiplicative group of a
// finite field is cyclic, so a generator always exists.
func (f *LogField) buildTables() {
	order := f.size - 1
	f.expt = make([]uint32, order)
	f.logt = make([]uint32, f.size)
	for g := uint64(1); g < f.size; g++ {
		if f.walkPowers(g) {
			f.generator = g
			return
		}
	}
	panic("field: no generator found in a cyclic group")
}

// walkPowers fills the tables with the powers of g and reports whether g
// generates the whole multiplicative group. The walk revisits 1 exactly
// when the order of g is reached, so a premature 1 rejects g.
func (f *LogField) walkPowers(g uint64) bool {
	order := f.size - 1
	acc := poly.Poly(1)
	for i := uint64(0); i < order; i++ {
		f.expt[i] = uint32(acc)
		f.logt[acc] = uint32(i)
		acc = poly.MulMod(acc, poly.Poly(g), f.modulus)
		if acc == 1 && i+1 < order {
			return false
		}
	}
	return acc == 1
}

// Degree returns the extension degree p.
func (f *LogField) Degree() uint { return f.degree }

// Size returns 2^p.
func (f *LogField) Size() uint64 { return f.size }

// Modulus returns the irreducible polynomial defining the field.
func (f *LogField) Modulus() poly.Poly { return f.modulus }

// Name returns the field's display name, e.g. "GF256".
func (f *LogField) Name() string { return f.name }

// Generator returns the primitive element whose powers enumerate every
// non-zero element of the field.
func (f *LogField) Generator() Element { return logElement{f.generator, f} }

// Zero returns the additive identity.
func (f *LogField) Zero() Element { return logElement{0, f} }

// One returns the multiplicative identity.
func (f *LogField) One() Element { return logElement{1, f} }

// Element converts an integer bit pattern into a field element, masking
// it to p bits.
func (f *LogField) Element(v uint64) Element { return logElement{v & f.mask, f} }

// FromBits builds an element from the first bitLen bits of data, most
// significant bit first.
func (f *LogField) FromBits(data []byte, bitLen int) Element {
	return f.Element(bitsToUint64(data, bitLen))
}

// Random returns a uniformly random field element.
func (f *LogField) Random() (Element, error) {
	v, err := randomUint64()
	if err != nil {
		return nil, err
	}
	return f.Element(v), nil
}

// ExpTable returns a copy of the antilog table: entry i is the i-th
// power of the generator. Together with LogTable it defines the exact
// table contents for cross-implementation compatibility.
func (f *LogField) ExpTable() []uint32 {
	out := make([]uint32, len(f.expt))
	copy(out, f.expt)
	return out
}

// LogTable returns a copy of the log table: entry v is the discrete log
// of v base the generator. Entry 0 is meaningless.
func (f *LogField) LogTable() []uint32 {
	out := make([]uint32, len(f.logt))
	copy(out, f.logt)
	return out
}

type logElement struct {
	v uint64
	f *LogField
}

func (e logElement) sameField(b Element) logElement {
	o, ok := b.(logElement)
	if !ok || o.f != e.f {
		panic("field: incompatible field elements")
	}
	return o
}

func (e logElement) Add(b Element) Element {
	o := e.sameField(b)
	return logElement{e.v ^ o.v, e.f}
}

func (e logElement) Sub(b Element) Element {
	return e.Add(b)
}

func (e logElement) Mul(b Element) Element {
	o := e.sameField(b)
	if e.v == 0 || o.v == 0 {
		return logElement{0, e.f}
	}
	order := e.f.size - 1
	i := (uint64(e.f.logt[e.v]) + uint64(e.f.logt[o.v])) % order
	return logElement{uint64(e.f.expt[i]), e.f}
}

func (e logElement) Div(b Element) (Element, error) {
	o := e.sameField(b)
	if o.v == 0 {
		return nil, ErrDivisionByZero
	}
	if e.v == 0 {
		return logElement{0, e.f}, nil
	}
	order := e.f.size - 1
	i := (uint64(e.f.logt[e.v]) + order - uint64(e.f.logt[o.v])) % order
	return logElement{uint64(e.f.expt[i]), e.f}, nil
}

func (e logElement) Inv() (Element, error) {
	if e.v == 0 {
		return nil, ErrDivisionByZero
	}
	order := e.f.size - 1
	i := (order - uint64(e.f.logt[e.v])) % order
	return logElement{uint64(e.f.expt[i]), e.f}, nil
}

// Pow computes e^n through the log table: logarithms turn
// exponentiation into one multiplication, so no repeated squaring is
// needed. The exponent is reduced modulo 2^p - 1 first, which also
// keeps the index arithmetic from overflowing.
func (e logElement) Pow(n uint64) Element {
	if e.v == 0 {
		if n == 0 {
			return logElement{1, e.f}
		}
		return logElement{0, e.f}
	}
	order := e.f.size - 1
	i := uint64(e.f.logt[e.v]) * (n % order) % order
	return logElement{uint64(e.f.expt[i]), e.f}
}

func (e logElement) IsZero() bool { return e.v == 0 }

func (e logElement) Equal(b Element) bool {
	o, ok := b.(logElement)
	return ok && o.f == e.f && o.v == e.v
}

func (e logElement) Uint64() uint64 { return e.v }

func (e logElement) Bits(bitLen int) []byte { return uint64ToBits(e.v, bitLen) }

func (e logElement) String() string { return fmt.Sprintf("%d_%s", e.v, e.f.name) }

var (
	gf16Once  sync.Once
	gf16      *LogField
	gf256Once sync.Once
	gf256     *LogField
)

// GF16 returns the process-wide GF(2^4) with modulus x^4 + x + 1. The
// field is built on first use and shared afterwards.
func GF16() *LogField {
	gf16Once.Do(func() {
		var err error
		if gf16, err = New(4, 0b10011); err != nil {
			panic(err)
		}
	})
	return gf16
}

// GF256 returns the process-wide GF(2^8) with the AES (Rijndael)
// modulus x^8 + x^4 + x^3 + x + 1. The field is built on first use and
// shared afterwards.
func GF256() *LogField {
	gf256Once.Do(func() {
		var err error
		if gf256, err = New(8, 0x11b); err != nil {
			panic(err)
		}
	})
	return gf256
}
