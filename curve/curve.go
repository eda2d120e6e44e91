package curve

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/open-source-modelling/smithwilson/solve"
)

// Curve is a calibrated Smith-Wilson zero-coupon curve. It is immutable
// after Fit; distinct goroutines may query it concurrently.
type Curve struct {
	maturities []float64
	ufr        float64
	alpha      float64
	omega      float64
	b          *mat.VecDense
}

// Fit calibrates a curve to observed zero-coupon maturities and rates. A nil
// solver selects the default Cholesky backend.
func Fit(maturities, rates []float64, ufr, alpha float64, solver solve.Solver) (*Curve, error) {
	b, err := Calibrate(maturities, rates, ufr, alpha, solver)
	if err != nil {
		return nil, err
	}
	return &Curve{
		maturities: append([]float64(nil), maturities...),
		ufr:        ufr,
		alpha:      alpha,
		omega:      math.Log1p(ufr),
		b:          b,
	}, nil
}

func (c *Curve) UFR() float64 {
	return c.ufr
}

func (c *Curve) Alpha() float64 {
	return c.alpha
}

// Weights returns a copy of the calibration vector b. The weights have no
// meaning apart from the observed maturities, ufr and alpha they were
// calibrated with.
func (c *Curve) Weights() []float64 {
	out := make([]float64, c.b.Len())
	for i := range out {
		out[i] = c.b.AtVec(i)
	}
	return out
}

// Rates returns annually compounded zero-coupon rates at the target
// maturities.
func (c *Curve) Rates(targets []float64) ([]float64, error) {
	return Extrapolate(targets, c.maturities, c.b, c.ufr, c.alpha)
}

// Discounts returns zero-coupon prices at the target maturities.
func (c *Curve) Discounts(targets []float64) ([]float64, error) {
	if err := checkTargets(targets); err != nil {
		return nil, err
	}
	return extrapolatePrices(targets, c.maturities, c.b, c.omega, c.alpha), nil
}

// Forwards returns one-year forward rates P(t)/P(t+1) - 1 at the target
// maturities. Beyond the last observed maturity the forward approaches the
// UFR at a speed governed by alpha.
func (c *Curve) Forwards(targets []float64) ([]float64, error) {
	if err := checkTargets(targets); err != nil {
		return nil, err
	}
	shifted := make([]float64, len(targets))
	for i, t := range targets {
		shifted[i] = t + 1
	}
	pt := extrapolatePrices(targets, c.maturities, c.b, c.omega, c.alpha)
	pt1 := extrapolatePrices(shifted, c.maturities, c.b, c.omega, c.alpha)
	out := make([]float64, len(targets))
	for i := range targets {
		out[i] = pt[i]/pt1[i] - 1
	}
	return out, nil
}
