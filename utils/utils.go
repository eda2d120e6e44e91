// Package utils provides the dense-matrix factory helpers (identity and
// zero matrices) backing the matrix-arithmetic surface of the library.
package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Identity matrix, n >= 1.
func Eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// All-zero r-by-c matrix, r, c >= 1.
func Zeros(r, c int) *mat.Dense {
	return mat.NewDense(r, c, nil)
}
