// SPDX-License-Identifier: MIT

package perfusion

import "math"

// RateEpsilon is the alveolar-pressure rate (bar/min) below which a step is
// treated as constant-depth and integrated with Haldane.
const RateEpsilon = 1e-4

// RateConstant returns k = ln2 / halfTime (1/min).
func RateConstant(halfTime float64) float64 {
	return math.Ln2 / halfTime
}

// Haldane returns the compartment pressure after t minutes of constant
// alveolar pressure pAlv, starting from p0.
func Haldane(p0, pAlv, t, halfTime float64) float64 {
	k := RateConstant(halfTime)

	return pAlv + (p0-pAlv)*math.Exp(-k*t)
}

// Schreiner returns the compartment pressure after t minutes when the
// alveolar pressure starts at pAlv0 and changes linearly at rate bar/min.
func Schreiner(p0, pAlv0, rate, t, halfTime float64) float64 {
	k := RateConstant(halfTime)

	return pAlv0 + rate*(t-1/k) - (pAlv0-p0-rate/k)*math.Exp(-k*t)
}

// Step advances one compartment over t minutes, choosing Haldane when
// |rate| < RateEpsilon and Schreiner otherwise.
func Step(p0, pAlv0, rate, t, halfTime float64) float64 {
	if math.Abs(rate) < RateEpsilon {
		return Haldane(p0, pAlv0, t, halfTime)
	}

	return Schreiner(p0, pAlv0, rate, t, halfTime)
}
