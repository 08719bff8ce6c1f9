package field

import (
	"errors"
	"testing"

	"github.com/bits-and-blooms/bitset"

	"github.com/ppopth/g2p/poly"
)

// TestGF16Arithmetic tests the worked GF(16) example
func TestGF16Arithmetic(t *testing.T) {
	f := GF16()
	one := f.One()

	a := f.Element(5)
	b := f.Element(4)
	c := f.Element(7)

	if got := a.Add(c); !got.Equal(f.Element(2)) {
		t.Errorf("5 + 7: got %s, want 2_GF16", got)
	}
	if got := a.Sub(c); !got.Equal(f.Element(2)) {
		t.Errorf("5 - 7: got %s, want 2_GF16", got)
	}
	if got := a.Mul(b); !got.Equal(c) {
		t.Errorf("5 * 4: got %s, want %s", got, c)
	}

	ac, err := a.Div(c)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	ob, err := one.Div(b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !ac.Equal(ob) {
		t.Errorf("5/7 = %s should equal 1/4 = %s", ac, ob)
	}

	bb, err := b.Div(b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !bb.Equal(one) {
		t.Errorf("4/4: got %s, want one", bb)
	}
}

// TestRijndael tests AES field facts in GF(2^8)
func TestRijndael(t *testing.T) {
	f := GF256()

	a := f.Element(0x53)
	b := f.Element(0xca)

	if got := a.Mul(b); !got.Equal(f.One()) {
		t.Errorf("0x53 * 0xca: got %s, want one", got)
	}
	inv, err := a.Inv()
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	if !inv.Equal(b) {
		t.Errorf("inverse of 0x53: got %s, want 0xca", inv)
	}
}

// TestGenerator tests the smallest-generator choice
func TestGenerator(t *testing.T) {
	if g := GF16().Generator().Uint64(); g != 2 {
		t.Errorf("GF16 generator: got %d, want 2", g)
	}
	if g := GF256().Generator().Uint64(); g != 3 {
		t.Errorf("GF256 generator: got %d, want 3", g)
	}
}

// TestGeneratorCoversField tests that the generator's powers reach
// every non-zero element exactly once per period.
func TestGeneratorCoversField(t *testing.T) {
	f := GF256()
	seen := bitset.New(uint(f.Size()))

	e := f.One()
	g := f.Generator()
	for i := uint64(0); i < f.Size()-1; i++ {
		if seen.Test(uint(e.Uint64())) {
			t.Fatalf("power %d repeats element %s", i, e)
		}
		seen.Set(uint(e.Uint64()))
		e = e.Mul(g)
	}
	if !e.Equal(f.One()) {
		t.Errorf("generator order is not %d", f.Size()-1)
	}
	if seen.Count() != uint(f.Size()-1) {
		t.Errorf("powers covered %d elements, want %d", seen.Count(), f.Size()-1)
	}
}

// TestAllInverses tests a * a^-1 == 1 for every non-zero element
func TestAllInverses(t *testing.T) {
	f := GF256()
	for v := uint64(1); v < f.Size(); v++ {
		a := f.Element(v)
		inv, err := a.Inv()
		if err != nil {
			t.Fatalf("Inv(%d): %v", v, err)
		}
		if !a.Mul(inv).Equal(f.One()) {
			t.Errorf("%d * inv(%d) != 1", v, v)
		}
	}
}

// TestInverseOfProduct tests inv(a*b) == inv(a) * inv(b)
func TestInverseOfProduct(t *testing.T) {
	f := GF256()
	for a := uint64(1); a < f.Size(); a += 11 {
		for b := uint64(1); b < f.Size(); b += 13 {
			ea, eb := f.Element(a), f.Element(b)
			left, err := ea.Mul(eb).Inv()
			if err != nil {
				t.Fatalf("Inv: %v", err)
			}
			ia, err := ea.Inv()
			if err != nil {
				t.Fatalf("Inv: %v", err)
			}
			ib, err := eb.Inv()
			if err != nil {
				t.Fatalf("Inv: %v", err)
			}
			if !left.Equal(ia.Mul(ib)) {
				t.Fatalf("inv(%d*%d) != inv(%d)*inv(%d)", a, b, a, b)
			}
		}
	}
}

// TestPow tests exponentiation including the group-order cases
func TestPow(t *testing.T) {
	f := GF256()
	one := f.One()
	zero := f.Zero()
	a := f.Element(0x53)

	if got := a.Pow(0); !got.Equal(one) {
		t.Errorf("a^0: got %s, want one", got)
	}
	if got := a.Pow(1); !got.Equal(a) {
		t.Errorf("a^1: got %s, want a", got)
	}
	if got := a.Pow(2); !got.Equal(a.Mul(a)) {
		t.Errorf("a^2 != a*a")
	}
	// Lagrange: the multiplicative group has order 255.
	if got := a.Pow(255); !got.Equal(one) {
		t.Errorf("a^255: got %s, want one", got)
	}
	if got := a.Pow(256); !got.Equal(a) {
		t.Errorf("a^256: got %s, want a", got)
	}
	if got := zero.Pow(0); !got.Equal(one) {
		t.Errorf("0^0: got %s, want one", got)
	}
	if got := zero.Pow(17); !got.Equal(zero) {
		t.Errorf("0^17: got %s, want zero", got)
	}

	// Exponents far beyond the group order reduce without overflow.
	if got := a.Pow(1<<63 + 255); !got.Equal(a.Pow((1<<63 + 255) % 255)) {
		t.Errorf("large exponent does not reduce modulo the order")
	}
}

// TestTables tests exp/log table consistency
func TestTables(t *testing.T) {
	f := GF256()
	expt := f.ExpTable()
	logt := f.LogTable()

	if expt[0] != 1 {
		t.Errorf("exp[0]: got %d, want 1", expt[0])
	}
	// The GF16 table from the modulus x^4 + x + 1 starts 1, 2, 4, 8, 3.
	small := GF16().ExpTable()
	for i, want := range []uint32{1, 2, 4, 8, 3} {
		if small[i] != want {
			t.Errorf("GF16 exp[%d]: got %d, want %d", i, small[i], want)
		}
	}
	for v := uint64(1); v < f.Size(); v++ {
		if uint64(expt[logt[v]]) != v {
			t.Errorf("exp[log[%d]] = %d", v, expt[logt[v]])
		}
	}
}

// TestNewValidation tests modulus and degree validation
func TestNewValidation(t *testing.T) {
	testCases := []struct {
		name    string
		degree  uint
		modulus poly.Poly
		wantErr error
	}{
		{"degree zero", 0, 0b11, ErrInvalidDegree},
		{"degree too wide", 64, 0b11, ErrInvalidDegree},
		{"no table room", 25, 0b11, ErrDegreeTooLarge},
		{"modulus degree mismatch", 8, 0b10011, ErrWrongDegree},
		{"reducible modulus", 2, 0b101, ErrNotIrreducible},
		{"reducible degree eight", 8, 0x100, ErrNotIrreducible},
		{"reducible full width", 8, 0x11c, ErrNotIrreducible},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.degree, tc.modulus)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("New(%d, %#x): got %v, want %v", tc.degree, tc.modulus, err, tc.wantErr)
			}
		})
	}

	if _, err := New(4, 0b10011); err != nil {
		t.Errorf("valid GF16 modulus rejected: %v", err)
	}
}

// TestNewAuto tests construction with a searched modulus
func TestNewAuto(t *testing.T) {
	f, err := NewAuto(4)
	if err != nil {
		t.Fatalf("NewAuto: %v", err)
	}
	if f.Modulus() != 0b10011 {
		t.Errorf("NewAuto(4) modulus: got %s, want x^4 + x + 1", f.Modulus())
	}
	if f.Size() != 16 {
		t.Errorf("Size: got %d, want 16", f.Size())
	}
}

// TestDivByZero tests the division error path
func TestDivByZero(t *testing.T) {
	f := GF16()

	if _, err := f.One().Div(f.Zero()); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div by zero: got %v, want ErrDivisionByZero", err)
	}
	if _, err := f.Zero().Inv(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Inv of zero: got %v, want ErrDivisionByZero", err)
	}
}

// TestMixedFieldsPanic tests that elements of different fields do not mix
func TestMixedFieldsPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("mixing fields should panic")
		}
	}()
	GF16().One().Add(GF256().One())
}

// TestElementConversion tests masking and rendering
func TestElementConversion(t *testing.T) {
	f := GF256()

	if !f.Element(0x1ff).Equal(f.Element(0xff)) {
		t.Errorf("Element should truncate to the field width")
	}
	if got := f.Element(202).String(); got != "202_GF256" {
		t.Errorf("String: got %q, want %q", got, "202_GF256")
	}
	if got := f.Name(); got != "GF256" {
		t.Errorf("Name: got %q, want %q", got, "GF256")
	}
	if f.Degree() != 8 {
		t.Errorf("Degree: got %d, want 8", f.Degree())
	}
}

// TestRandom tests that sampled elements stay in range
func TestRandom(t *testing.T) {
	f := GF16()
	for i := 0; i < 100; i++ {
		e, err := f.Random()
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		if e.Uint64() >= f.Size() {
			t.Errorf("Random element %d out of range", e.Uint64())
		}
	}
}
