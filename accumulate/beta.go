package accumulate

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// quantileTol is the absolute width at which mixture bisection stops.
const quantileTol = 1e-12

// maxBisectSteps bounds the bisection loop; 2^-64 is below float64 resolution on [0,1].
const maxBisectSteps = 64

// Quantiler maps a probability u ∈ [0,1] to a value in [0,1].
// Implementations are monotone non-decreasing with Quantile(0)=0 and Quantile(1)=1.
type Quantiler interface {
	Quantile(u float64) float64
}

// Identity is the quantile function of U(0,1).
type Identity struct{}

// Quantile returns u unchanged.
func (Identity) Quantile(u float64) float64 { return u }

// BetaShape returns the Beta(a, b) parameters whose mode is target and whose
// peakedness grows with concentration.
//
// Rule:
//
//	target <  0.5: b = c, a solved from mode = (a-1)/(a+b-2)
//	target >= 0.5: a = c, b solved symmetrically
//
// Both parameters stay strictly positive for every target in [0,1] and c > 0,
// so targets at 0, 0.5 and 1 need no clamping. At 0 and 1 the law is
// monotone with its maximum at the boundary.
//
// The mode sits at target only for concentration > 1. For c <= 1 the law has
// no interior peak (it is U-shaped or J-shaped) and pushes samples away from
// target; such values are accepted and returned as computed.
func BetaShape(target, concentration float64) (a, b float64, err error) {
	if err = validateTarget(target); err != nil {
		return 0, 0, accumulateErrorf("BetaShape", target, err)
	}
	if err = validateConcentration(concentration); err != nil {
		return 0, 0, accumulateErrorf("BetaShape", concentration, err)
	}

	c, v := concentration, target
	if v < 0.5 {
		return ((c-2)*v + 1) / (1 - v), c, nil
	}

	return c, (c*(1-v)-1)/v + 2, nil
}

// BetaMixture is the equal-weight mixture of U(0,1) and one Beta law per target.
type BetaMixture struct {
	uniform distuv.Uniform
	betas   []distuv.Beta
	weights []float64 // weights[0] is the uniform component
}

// NewBetaMixture fits one Beta law per target with the shared concentration.
// An empty target list yields the plain uniform law, whose quantile is the identity.
// Complexity: O(len(targets)).
func NewBetaMixture(targets []float64, concentration float64) (*BetaMixture, error) {
	if err := validateConcentration(concentration); err != nil {
		return nil, accumulateErrorf("NewBetaMixture", concentration, err)
	}

	m := &BetaMixture{
		uniform: distuv.Uniform{Min: 0, Max: 1},
		betas:   make([]distuv.Beta, 0, len(targets)),
	}
	for _, v := range targets {
		a, b, err := BetaShape(v, concentration)
		if err != nil {
			return nil, err
		}
		m.betas = append(m.betas, distuv.Beta{Alpha: a, Beta: b})
	}

	m.weights = make([]float64, len(m.betas)+1)
	for i := range m.weights {
		m.weights[i] = 1
	}
	floats.Scale(1/floats.Sum(m.weights), m.weights)

	return m, nil
}

// Components returns the fitted (alpha, beta) shape pairs, in target order.
func (m *BetaMixture) Components() [][2]float64 {
	out := make([][2]float64, len(m.betas))
	for i, b := range m.betas {
		out[i] = [2]float64{b.Alpha, b.Beta}
	}

	return out
}

// CDF returns the mixture's cumulative distribution at x.
func (m *BetaMixture) CDF(x float64) float64 {
	return m.cdfInto(make([]float64, len(m.weights)), x)
}

// cdfInto evaluates CDF using buf (len == len(m.weights)) as component storage.
func (m *BetaMixture) cdfInto(buf []float64, x float64) float64 {
	buf[0] = m.uniform.CDF(x)
	for i, b := range m.betas {
		buf[i+1] = b.CDF(x)
	}

	return floats.Dot(m.weights, buf)
}

// Quantile inverts CDF by bisection on [0,1].
// Inputs at or below 0 map to 0, at or above 1 map to 1; NaN propagates.
// Complexity: O(maxBisectSteps · len(targets)).
func (m *BetaMixture) Quantile(u float64) float64 {
	switch {
	case math.IsNaN(u):
		return u
	case u <= 0:
		return 0
	case u >= 1:
		return 1
	case len(m.betas) == 0:
		return m.uniform.Quantile(u)
	}

	buf := make([]float64, len(m.weights))
	lo, hi := 0.0, 1.0
	for step := 0; step < maxBisectSteps && hi-lo > quantileTol; step++ {
		mid := 0.5 * (lo + hi)
		if m.cdfInto(buf, mid) < u {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi)
}

// Reparameterize maps every value through q and returns a new slice.
// A nil q is the identity.
func Reparameterize(q Quantiler, values []float64) []float64 {
	out := make([]float64, len(values))
	if q == nil {
		copy(out, values)
		return out
	}
	for i, u := range values {
		out[i] = q.Quantile(u)
	}

	return out
}

func validateTarget(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrTargetOutOfRange
	}

	return nil
}

func validateConcentration(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return ErrBadConcentration
	}

	return nil
}
