package field

import "fmt"

// Matrix operations over finite fields, used by erasure coding to build
// and invert generator matrices.

// MatrixMultiply returns the product of two matrices of elements of f.
// The inner dimensions must agree.
func MatrixMultiply(a, b [][]Element, f Field) [][]Element {
	n, inner, m := len(a), len(b), len(b[0])
	out := make([][]Element, n)
	for i := range out {
		out[i] = make([]Element, m)
		for j := 0; j < m; j++ {
			acc := f.Zero()
			for k := 0; k < inner; k++ {
				acc = acc.Add(a[i][k].Mul(b[k][j]))
			}
			out[i][j] = acc
		}
	}
	return out
}

// InvertMatrix computes the inverse of a square matrix over f by
// Gauss-Jordan elimination with row pivoting. It fails when the matrix
// is singular.
func InvertMatrix(a [][]Element, f Field) ([][]Element, error) {
	n := len(a)

	// Work on a copy next to an identity matrix; the same row operations
	// turn the copy into I and the identity into the inverse.
	work := make([][]Element, n)
	inv := make([][]Element, n)
	for i := range work {
		work[i] = make([]Element, n)
		inv[i] = make([]Element, n)
		copy(work[i], a[i])
		for j := range inv[i] {
			if i == j {
				inv[i][j] = f.One()
			} else {
				inv[i][j] = f.Zero()
			}
		}
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !work[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, fmt.Errorf("field: matrix is not invertible")
		}
		work[col], work[pivot] = work[pivot], work[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale, err := work[col][col].Inv()
		if err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			work[col][j] = work[col][j].Mul(scale)
			inv[col][j] = inv[col][j].Mul(scale)
		}

		for r := 0; r < n; r++ {
			if r == col || work[r][col].IsZero() {
				continue
			}
			factor := work[r][col]
			for j := 0; j < n; j++ {
				work[r][j] = work[r][j].Sub(factor.Mul(work[col][j]))
				inv[r][j] = inv[r][j].Sub(factor.Mul(inv[col][j]))
			}
		}
	}
	return inv, nil
}

// RecoverVectors solves A * V = R for V, where each row of R is a
// vector of combined elements.
func RecoverVectors(a, r [][]Element, f Field) ([][]Element, error) {
	inv, err := InvertMatrix(a, f)
	if err != nil {
		return nil, err
	}
	return MatrixMultiply(inv, r, f), nil
}
