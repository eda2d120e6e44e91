// Package curve constructs zero-coupon yield curves with the Smith-Wilson
// method: calibrate a weight vector to a sparse set of observed rates, then
// interpolate and extrapolate to arbitrary maturities, converging to the
// ultimate forward rate (UFR) at the long end.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/open-source-modelling/smithwilson/kern"
	"github.com/open-source-modelling/smithwilson/solve"
)

var (
	// ErrDimensionMismatch is returned when paired sequences have unequal
	// lengths.
	ErrDimensionMismatch = errors.New("curve: dimension mismatch")

	// ErrInvalidParameter is returned for inputs outside the kernel's
	// domain: alpha <= 0, non-positive maturities, 1+ufr <= 0, 1+rate <= 0,
	// or empty sequences.
	ErrInvalidParameter = errors.New("curve: invalid parameter")
)

// Calibrate solves for the Smith-Wilson weight vector b such that the curve
// reprices every observed zero-coupon bond exactly:
//
//	(Q*H*Q) * b = p - d,  Q = diag(d)
//
// where H is the heart matrix over the observed maturities,
// d_i = exp(-omega*u_i) is the UFR-implied discount with omega = log(1+ufr),
// and p_i = (1+r_i)^(-u_i) is the observed price. A nil solver selects the
// default Cholesky backend; the system is symmetric positive definite for
// pairwise distinct maturities.
func Calibrate(maturities, rates []float64, ufr, alpha float64, solver solve.Solver) (*mat.VecDense, error) {
	if len(maturities) != len(rates) {
		return nil, fmt.Errorf("%w: %d maturities, %d rates", ErrDimensionMismatch, len(maturities), len(rates))
	}
	if err := checkParams(maturities, ufr, alpha); err != nil {
		return nil, err
	}
	for i, r := range rates {
		if 1+r <= 0 {
			return nil, fmt.Errorf("%w: rate %v at index %d", ErrInvalidParameter, r, i)
		}
	}
	if solver == nil {
		solver = &solve.Cholesky{}
	}

	n := len(maturities)
	omega := math.Log1p(ufr)
	d := ufrDiscounts(maturities, omega)
	h := kern.NewWilson(alpha).SymMatrix(maturities)

	// w = Q*H*Q by direct diagonal scaling.
	w := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			w.SetSym(i, j, d[i]*h.At(i, j)*d[j])
		}
	}

	// rhs = p - d, the excess of observed over UFR-implied prices.
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		p := math.Pow(1+rates[i], -maturities[i])
		rhs.SetVec(i, p-d[i])
	}

	return solver.Solve(w, rhs)
}

// ufrDiscounts returns exp(-omega*m) for each maturity.
func ufrDiscounts(maturities []float64, omega float64) []float64 {
	d := make([]float64, len(maturities))
	for i, m := range maturities {
		d[i] = math.Exp(-omega * m)
	}
	return d
}

func checkParams(maturities []float64, ufr, alpha float64) error {
	if alpha <= 0 {
		return fmt.Errorf("%w: alpha %v", ErrInvalidParameter, alpha)
	}
	if 1+ufr <= 0 {
		return fmt.Errorf("%w: ufr %v", ErrInvalidParameter, ufr)
	}
	if len(maturities) == 0 {
		return fmt.Errorf("%w: no observed maturities", ErrInvalidParameter)
	}
	return checkMaturities(maturities)
}

func checkTargets(targets []float64) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: no target maturities", ErrInvalidParameter)
	}
	return checkMaturities(targets)
}

func checkMaturities(maturities []float64) error {
	for i, m := range maturities {
		if m <= 0 {
			return fmt.Errorf("%w: maturity %v at index %d", ErrInvalidParameter, m, i)
		}
	}
	return nil
}
