package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/open-source-modelling/smithwilson/kern"
)

// Extrapolate applies a calibrated weight vector to arbitrary target
// maturities and returns the annually compounded zero-coupon rates, one per
// target, in order. The observed maturities and b must be the pair produced
// by Calibrate with the same ufr and alpha.
func Extrapolate(targets, maturities []float64, b *mat.VecDense, ufr, alpha float64) ([]float64, error) {
	if b == nil || b.Len() != len(maturities) {
		return nil, fmt.Errorf("%w: weight vector does not match %d observed maturities", ErrDimensionMismatch, len(maturities))
	}
	if err := checkParams(maturities, ufr, alpha); err != nil {
		return nil, err
	}
	if err := checkTargets(targets); err != nil {
		return nil, err
	}

	omega := math.Log1p(ufr)
	prices := extrapolatePrices(targets, maturities, b, omega, alpha)
	out := make([]float64, len(targets))
	for j, t := range targets {
		// p = (1+r)^(-t), inverted for the annual rate.
		out[j] = math.Pow(prices[j], -1/t) - 1
	}
	return out, nil
}

// extrapolatePrices computes the zero-coupon price at each target maturity:
//
//	P(t) = exp(-omega*t) * (1 + sum_i H(t, u_i) * d_i * b_i)
//
// The UFR discount factor exp(-omega*t) appears once; it serves as both the
// leading diagonal and the additive UFR price term of the Smith-Wilson
// pricing formula.
func extrapolatePrices(targets, maturities []float64, b *mat.VecDense, omega, alpha float64) []float64 {
	n := len(maturities)
	d := ufrDiscounts(maturities, omega)
	qb := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		qb.SetVec(i, d[i]*b.AtVec(i))
	}

	h := kern.NewWilson(alpha).Matrix(targets, maturities)
	var hqb mat.VecDense
	hqb.MulVec(h, qb)

	prices := make([]float64, len(targets))
	for j, t := range targets {
		prices[j] = math.Exp(-omega*t) * (1 + hqb.AtVec(j))
	}
	return prices
}
