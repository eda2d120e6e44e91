package kern

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Wilson is the Smith-Wilson covariance kernel (the "heart" function of the
// EIOPA technical specification) with convergence speed alpha.
type Wilson struct {
	alpha float64
}

func NewWilson(alpha float64) *Wilson {
	return &Wilson{
		alpha: alpha,
	}
}

func (k *Wilson) Alpha() float64 {
	return k.alpha
}

// Cov evaluates the heart function at a pair of maturities:
//
//	H(u, v) = 0.5 * (a*(u+v) + exp(-a*(u+v)) - a*|u-v| - exp(-a*|u-v|))
func (k *Wilson) Cov(u, v float64) float64 {
	sum := k.alpha * (u + v)
	diff := k.alpha * math.Abs(u-v)
	return 0.5 * (sum + math.Exp(-sum) - diff - math.Exp(-diff))
}

// Matrix returns the heart matrix H[i][j] = Cov(u[i], v[j]).
func (k *Wilson) Matrix(u, v []float64) *mat.Dense {
	h := mat.NewDense(len(u), len(v), nil)
	for i, ui := range u {
		for j, vj := range v {
			h.Set(i, j, k.Cov(ui, vj))
		}
	}
	return h
}

// SymMatrix returns the heart matrix over a single maturity sequence. Only
// the upper triangle is computed; the result is symmetric by construction.
func (k *Wilson) SymMatrix(u []float64) *mat.SymDense {
	h := mat.NewSymDense(len(u), nil)
	for i, ui := range u {
		for j := i; j < len(u); j++ {
			h.SetSym(i, j, k.Cov(ui, u[j]))
		}
	}
	return h
}
