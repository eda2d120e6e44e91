// Package solve provides the dense linear-equation capability the curve
// calibration depends on. Backends are injectable so the calibration logic
// can be tested against a mock and swapped between factorizations.
package solve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrSingular = errors.New("solve: matrix is singular or ill-conditioned")

// DefaultCondTol is the largest condition number accepted before a system is
// reported as numerically unreliable.
const DefaultCondTol = 1e12

// Solver solves the square linear system a*x = b.
type Solver interface {
	Solve(a mat.Symmetric, b mat.Vector) (*mat.VecDense, error)
}

var (
	cholesky *Cholesky
	lu       *LU
	_        Solver = cholesky // Check that Cholesky respects the Solver interface.
	_        Solver = lu       // Check that LU respects the Solver interface.
)

// Cholesky solves symmetric positive definite systems. A non-positive
// CondTol selects DefaultCondTol.
type Cholesky struct {
	CondTol float64
}

func (s *Cholesky) Solve(a mat.Symmetric, b mat.Vector) (*mat.VecDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, ErrSingular
	}
	if cond := chol.Cond(); math.IsInf(cond, 1) || cond > condTol(s.CondTol) {
		return nil, ErrSingular
	}
	x := mat.NewVecDense(b.Len(), nil)
	if err := chol.SolveVecTo(x, b); err != nil {
		return nil, ErrSingular
	}
	return x, nil
}

// LU solves general square systems via a pivoted LU factorization. It accepts
// indefinite systems that Cholesky rejects. A non-positive CondTol selects
// DefaultCondTol.
type LU struct {
	CondTol float64
}

func (s *LU) Solve(a mat.Symmetric, b mat.Vector) (*mat.VecDense, error) {
	var f mat.LU
	f.Factorize(a)
	if cond := f.Cond(); math.IsInf(cond, 1) || cond > condTol(s.CondTol) {
		return nil, ErrSingular
	}
	x := mat.NewVecDense(b.Len(), nil)
	if err := f.SolveVecTo(x, false, b); err != nil {
		return nil, ErrSingular
	}
	return x, nil
}

func condTol(tol float64) float64 {
	if tol > 0 {
		return tol
	}
	return DefaultCondTol
}
