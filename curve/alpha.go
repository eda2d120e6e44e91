package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/open-source-modelling/smithwilson/solve"
)

// ErrAlphaNotFound is returned when no alpha in the bisection range brings
// the forward rate at the convergence maturity within tolerance of the UFR.
var ErrAlphaNotFound = errors.New("curve: no alpha in range meets the convergence tolerance")

// EIOPA defaults for the alpha calibration.
const (
	alphaFloor     = 0.05
	alphaCeil      = 5.0
	alphaPrecision = 1e-6
	convergenceTol = 1e-4
	maxBisectIter  = 200
)

// FindAlpha returns the lowest convergence speed for which the one-year
// forward rate at the convergence maturity, max(last liquid point + 40, 60),
// is within 1e-4 of ufr. The search starts at the regulatory floor of 0.05.
func FindAlpha(maturities, rates []float64, ufr float64, solver solve.Solver) (float64, error) {
	last := 0.0
	for _, m := range maturities {
		if m > last {
			last = m
		}
	}
	convergence := math.Max(last+40, 60)
	return BisectAlpha(alphaFloor, alphaCeil, maturities, rates, ufr, convergence, convergenceTol, solver)
}

// BisectAlpha bisects the gap |forward(convergence) - ufr| over alpha in
// [lo, hi]. The gap decreases in alpha, so the result is the lowest alpha
// (within 1e-6) whose gap is at most tol. Each gap evaluation is a full
// calibration.
func BisectAlpha(lo, hi float64, maturities, rates []float64, ufr, convergence, tol float64, solver solve.Solver) (float64, error) {
	if lo <= 0 || hi <= lo {
		return 0, fmt.Errorf("%w: bisection range [%v, %v]", ErrInvalidParameter, lo, hi)
	}
	if convergence <= 0 || tol <= 0 {
		return 0, fmt.Errorf("%w: convergence %v, tolerance %v", ErrInvalidParameter, convergence, tol)
	}

	gap := func(alpha float64) (float64, error) {
		c, err := Fit(maturities, rates, ufr, alpha, solver)
		if err != nil {
			return 0, err
		}
		fwd, err := c.Forwards([]float64{convergence})
		if err != nil {
			return 0, err
		}
		return math.Abs(fwd[0] - ufr), nil
	}

	g, err := gap(lo)
	if err != nil {
		return 0, err
	}
	if g <= tol {
		return lo, nil
	}
	if g, err = gap(hi); err != nil {
		return 0, err
	}
	if g > tol {
		return 0, ErrAlphaNotFound
	}

	// Invariant: gap(lo) > tol >= gap(hi).
	for i := 0; i < maxBisectIter && hi-lo > alphaPrecision; i++ {
		mid := 0.5 * (lo + hi)
		if g, err = gap(mid); err != nil {
			return 0, err
		}
		if g <= tol {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
