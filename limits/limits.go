// SPDX-License-Identifier: MIT

package limits

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/decolab/pressure"
	"github.com/katalvlaran/decolab/tissue"
)

// DefaultStopIncrement is the spacing of decompression stops, metres.
const DefaultStopIncrement = 3.0

// roundingSlack absorbs float noise when rounding a ceiling depth up, so an
// exact 6 m ceiling computed as 6.0000000000001 m stays at 6 m.
const roundingSlack = 1e-9

// Ceiling is the shallowest tolerated ambient pressure for a tissue state.
type Ceiling struct {
	Pressure    float64 `json:"pressure"`    // bar, ≥ SurfacePressure
	Depth       float64 `json:"depth"`       // metres, ≥ 0
	Compartment int     `json:"compartment"` // 1-based id of the controlling compartment
}

// FirstStop is the rounded-up depth of the first decompression stop.
type FirstStop struct {
	Depth       float64 `json:"depth"`
	Ambient     float64 `json:"ambient"`
	Compartment int     `json:"compartment"`
}

// MValue is the maximum tolerated compartment pressure at ambient.
func MValue(ambient, a, b float64) float64 {
	return a + ambient/b
}

// AdjustedMValue scales the allowed supersaturation by gf:
// gf=0 yields ambient, gf=1 yields MValue.
func AdjustedMValue(ambient, a, b, gf float64) float64 {
	return ambient + gf*(MValue(ambient, a, b)-ambient)
}

// CompartmentCeiling is the minimum ambient pressure at which a compartment
// at tissueP stays within its gf-adjusted M-value.
func CompartmentCeiling(tissueP, a, b, gf float64) float64 {
	return b * (tissueP - gf*a) / (b*(1-gf) + gf)
}

// DiveCeiling is the deepest compartment ceiling of s, clamped at the surface.
func DiveCeiling(s tissue.State, gf float64, table *tissue.Table) Ceiling {
	var ceilings [tissue.Count]float64
	for i := range ceilings {
		c := table.At(i)
		ceilings[i] = CompartmentCeiling(s[i], c.AN2, c.BN2, gf)
	}
	idx := floats.MaxIdx(ceilings[:])
	p := math.Max(ceilings[idx], pressure.SurfacePressure)

	return Ceiling{
		Pressure:    p,
		Depth:       pressure.Depth(p),
		Compartment: idx + 1,
	}
}

// InterpolateGF returns the gradient factor in effect at ambient: gfLow at
// or below the first stop, gfHigh at or above the surface, linear between.
// The first-stop rule takes precedence, so a first stop at the surface
// yields gfLow at any depth. gfLow > gfHigh ramps the other way.
func InterpolateGF(ambient, firstStopAmbient, gfLow, gfHigh float64) float64 {
	if ambient >= firstStopAmbient {
		return gfLow
	}
	if ambient <= pressure.SurfacePressure {
		return gfHigh
	}
	// here surface < ambient < firstStopAmbient, so the span is positive
	frac := (ambient - pressure.SurfacePressure) / (firstStopAmbient - pressure.SurfacePressure)

	return gfHigh + (gfLow-gfHigh)*frac
}

// FirstStopDepth rounds the gfLow ceiling of s up to the next multiple of
// increment. It never rounds towards the surface.
func FirstStopDepth(s tissue.State, gfLow, increment float64, table *tissue.Table) (FirstStop, error) {
	if !(increment > 0) || math.IsInf(increment, 1) {
		return FirstStop{}, fmt.Errorf("FirstStopDepth: increment=%v: %w", increment, ErrBadStopIncrement)
	}
	c := DiveCeiling(s, gfLow, table)
	depth := 0.0
	if c.Depth > 0 {
		depth = math.Ceil(c.Depth/increment-roundingSlack) * increment
	}

	return FirstStop{
		Depth:       depth,
		Ambient:     pressure.Ambient(depth),
		Compartment: c.Compartment,
	}, nil
}

// CeilingTimeSeries evaluates DiveCeiling at gf for every state.
func CeilingTimeSeries(states []tissue.State, gf float64, table *tissue.Table) []Ceiling {
	out := make([]Ceiling, len(states))
	for i := range states {
		out[i] = DiveCeiling(states[i], gf, table)
	}

	return out
}
