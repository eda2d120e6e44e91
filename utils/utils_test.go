package utils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestEye(t *testing.T) {
	eye := Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := eye.At(i, j); got != want {
				t.Errorf("Eye(3)[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestEyeIsMultiplicativeIdentity(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, -2, 0.5, 4, -7, 0.25})
	var left, right mat.Dense
	left.Mul(Eye(3), x)
	right.Mul(x.T(), Eye(3))
	if !mat.EqualApprox(&left, x, 1e-15) {
		t.Errorf("Eye(3) * X != X")
	}
	if !mat.EqualApprox(&right, x.T(), 1e-15) {
		t.Errorf("X.T * Eye(3) != X.T")
	}
}

func TestZeros(t *testing.T) {
	z := Zeros(2, 3)
	if r, c := z.Dims(); r != 2 || c != 3 {
		t.Fatalf("Dims() = (%d, %d), want (2, 3)", r, c)
	}
	x := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	var prod mat.Dense
	prod.Mul(z, x)
	if !mat.EqualApprox(&prod, Zeros(2, 2), 0) {
		t.Errorf("Zeros(2, 3) * X is not all zero")
	}
}
