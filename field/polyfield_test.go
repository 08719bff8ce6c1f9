package field

import (
	"errors"
	"testing"
)

// TestPolyFieldMatchesLogField cross-checks the untabled arithmetic
// against the table-driven implementation over the same modulus.
func TestPolyFieldMatchesLogField(t *testing.T) {
	lf := GF256()
	pf, err := NewPoly(8, 0x11b)
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}

	for a := uint64(0); a < 256; a += 7 {
		for b := uint64(0); b < 256; b += 5 {
			want := lf.Element(a).Mul(lf.Element(b)).Uint64()
			got := pf.Element(a).Mul(pf.Element(b)).Uint64()
			if got != want {
				t.Fatalf("%d * %d: poly %d, log %d", a, b, got, want)
			}
		}
	}

	for a := uint64(1); a < 256; a++ {
		want, err := lf.Element(a).Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		got, err := pf.Element(a).Inv()
		if err != nil {
			t.Fatalf("Inv: %v", err)
		}
		if got.Uint64() != want.Uint64() {
			t.Fatalf("inv(%d): poly %d, log %d", a, got.Uint64(), want.Uint64())
		}
	}
}

// TestGF2_32 tests arithmetic in a field too wide for tables
func TestGF2_32(t *testing.T) {
	f := NewGF2_32()
	one := f.One()

	if f.Degree() != 32 || f.Size() != 1<<32 {
		t.Fatalf("unexpected field shape: degree %d, size %d", f.Degree(), f.Size())
	}

	for _, v := range []uint64{1, 2, 0xdeadbeef, 0xffffffff, 1 << 31} {
		a := f.Element(v)

		inv, err := a.Inv()
		if err != nil {
			t.Fatalf("Inv(%#x): %v", v, err)
		}
		if !a.Mul(inv).Equal(one) {
			t.Errorf("%#x * inv != 1", v)
		}

		// Lagrange over the order-2^32-1 multiplicative group.
		if got := a.Pow(1<<32 - 1); !got.Equal(one) {
			t.Errorf("%#x to the group order: got %s, want one", v, got)
		}

		if !a.Sub(a).IsZero() {
			t.Errorf("a - a should be zero")
		}
	}

	if _, err := one.Div(f.Zero()); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div by zero: got %v", err)
	}
	if _, err := f.Zero().Inv(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Inv of zero: got %v", err)
	}
}

// TestPolyFieldTopDegree tests the widest supported field
func TestPolyFieldTopDegree(t *testing.T) {
	// x^63 + x + 1 is an irreducible trinomial.
	f, err := NewPoly(63, 1<<63|0b11)
	if err != nil {
		t.Fatalf("NewPoly: %v", err)
	}

	a := f.Element(0x123456789abcdef)
	inv, err := a.Inv()
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	if !a.Mul(inv).Equal(f.One()) {
		t.Errorf("a * inv(a) != 1 at degree 63")
	}
	if got := a.Pow(1<<63 - 1); !got.Equal(f.One()) {
		t.Errorf("group-order power: got %s, want one", got)
	}
}

// TestNewPolyValidation tests modulus validation without a table limit
func TestNewPolyValidation(t *testing.T) {
	if _, err := NewPoly(0, 0b11); !errors.Is(err, ErrInvalidDegree) {
		t.Errorf("degree 0: got %v", err)
	}
	if _, err := NewPoly(8, 0b10011); !errors.Is(err, ErrWrongDegree) {
		t.Errorf("degree mismatch: got %v", err)
	}
	if _, err := NewPoly(2, 0b101); !errors.Is(err, ErrNotIrreducible) {
		t.Errorf("reducible: got %v", err)
	}
	// Degrees past MaxTableDegree are fine here.
	if _, err := NewPoly(32, 0x10000008d); err != nil {
		t.Errorf("degree 32: %v", err)
	}
}
