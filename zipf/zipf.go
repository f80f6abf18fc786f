package zipf

import (
	"fmt"
	"math"
)

// Zipf generates Zipf distributed variates in the range [a, b) with power
// parameter s > 0, by inverting the distribution's CDF in closed form.
//
// The handle is an immutable value: all regime constants are computed once
// in New and never change, so copies are independent and Sample may be
// called concurrently on shared or copied handles without locking.
//
// Two mutually exclusive constant bundles exist, selected by exact
// comparison s == 1 (near-1 values take the general branch, which
// converges to the logarithmic one):
//
//   - s = 1: lnA = ln(a), lnBdivA = ln(b/a).
//   - s ≠ 1: qInv = 1/(1−s), aPowQ = a^(1−s), bSubAPowQ = b^(1−s) − a^(1−s).
type Zipf struct {
	start float64
	end   float64
	s     float64

	reg regime

	// s = 1 constants.
	lnA     float64
	lnBdivA float64

	// s ≠ 1 constants.
	qInv      float64
	aPowQ     float64
	bSubAPowQ float64
}

// New creates a Zipf handle generating values in the range start..end with
// the power parameter s > 0.
//
// Usually start ≥ 1, since C·x⁻ˢ diverges as x approaches 0.
//
// Validation (in order; each error wraps the offending input):
//   - ErrInvalidPowerParameter if s ≤ 0.
//   - ErrInvalidRangeStart if start ≤ 0.
//   - ErrInvalidRangeEnd if end ≤ start.
//
// Complexity: O(1) — a handful of log/pow evaluations, amortized over all
// subsequent samples.
func New(start, end, s float64) (Zipf, error) {
	if s <= 0 {
		return Zipf{}, fmt.Errorf("%w: got %g", ErrInvalidPowerParameter, s)
	}
	if start <= 0 {
		return Zipf{}, fmt.Errorf("%w: got %g", ErrInvalidRangeStart, start)
	}
	if end <= start {
		return Zipf{}, fmt.Errorf("%w: got %g..%g", ErrInvalidRangeEnd, start, end)
	}

	z := Zipf{start: start, end: end, s: s}
	if s == 1 {
		z.reg = regimeLog
		z.lnA = math.Log(start)
		z.lnBdivA = math.Log(end / start)
	} else {
		q := 1 - s
		z.reg = regimePow
		z.qInv = 1 / q
		z.aPowQ = math.Pow(start, q)
		z.bSubAPowQ = math.Pow(end, q) - z.aPowQ
	}
	return z, nil
}

// Start returns the range start a.
func (z Zipf) Start() float64 { return z.start }

// End returns the range end b.
func (z Zipf) End() float64 { return z.end }

// S returns the power parameter s.
func (z Zipf) S() float64 { return z.s }

// Sample converts an evenly distributed random number u ∈ [0, 1), e.g. a
// common random value, to a Zipf distributed variate in the range [a, b].
//
// Because of floating-point inaccuracy the output may land a little below
// a or above b at the extremes; that is expected, not a defect. Values of
// u outside [0, 1) are not validated and extrapolate the same formula.
//
// Pure and deterministic: no state, no allocation.
//
// Complexity: O(1) — one regime switch, one multiply-add, one exp/pow.
func (z Zipf) Sample(u float64) float64 {
	switch z.reg {
	case regimeLog:
		return math.Exp(z.lnA + u*z.lnBdivA)
	default:
		return math.Pow(math.FMA(u, z.bSubAPowQ, z.aPowQ), z.qInv)
	}
}

// SampleBatch applies Sample element-wise: out[i] = Sample(u[i]), in input
// order. Elements are independent, so the loop is trivially vectorizable
// and semantically identical to calling Sample one value at a time.
//
// u and out must have the same length; a mismatch is a caller bug and
// panics rather than returning an error.
//
// Complexity: O(len(u)).
func (z Zipf) SampleBatch(u, out []float64) {
	if len(u) != len(out) {
		panic(fmt.Sprintf("zipf: SampleBatch length mismatch: %d input vs %d output", len(u), len(out)))
	}
	for i, v := range u {
		out[i] = z.Sample(v)
	}
}
