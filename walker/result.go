// SPDX-License-Identifier: MIT

package walker

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/decolab/limits"
	"github.com/katalvlaran/decolab/tissue"
)

// GasSwitch marks the first grid point breathing a new gas.
type GasSwitch struct {
	Time  float64 `json:"time"`
	Depth float64 `json:"depth"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

// Result holds parallel series indexed by grid point. All slices have
// the same length and TimePoints strictly increases.
type Result struct {
	TimePoints          []float64      `json:"timePoints"`
	DepthPoints         []float64      `json:"depthPoints"`
	AmbientPressures    []float64      `json:"ambientPressures"`
	AlveolarN2Pressures []float64      `json:"alveolarN2Pressures"`
	GasNames            []string       `json:"gasNames"`
	Pressures           []tissue.State `json:"pressures"`
	GasSwitches         []GasSwitch    `json:"gasSwitches"`
	Variant             string         `json:"variant"`

	table *tissue.Table
}

func newResult(capacity int, table *tissue.Table) *Result {
	return &Result{
		TimePoints:          make([]float64, 0, capacity),
		DepthPoints:         make([]float64, 0, capacity),
		AmbientPressures:    make([]float64, 0, capacity),
		AlveolarN2Pressures: make([]float64, 0, capacity),
		GasNames:            make([]string, 0, capacity),
		Pressures:           make([]tissue.State, 0, capacity),
		Variant:             table.Variant().String(),
		table:               table,
	}
}

func (r *Result) record(t, depth, ambient, alveolar float64, gas string, s tissue.State) {
	r.TimePoints = append(r.TimePoints, t)
	r.DepthPoints = append(r.DepthPoints, depth)
	r.AmbientPressures = append(r.AmbientPressures, ambient)
	r.AlveolarN2Pressures = append(r.AlveolarN2Pressures, alveolar)
	r.GasNames = append(r.GasNames, gas)
	r.Pressures = append(r.Pressures, s)
}

// Len is the number of grid points.
func (r *Result) Len() int { return len(r.TimePoints) }

// Table is the compartment snapshot the result was computed with.
func (r *Result) Table() *tissue.Table { return r.table }

// Compartment returns the pressure series of compartment i (0-based).
func (r *Result) Compartment(i int) []float64 {
	out := make([]float64, len(r.Pressures))
	for k := range r.Pressures {
		out[k] = r.Pressures[k][i]
	}

	return out
}

// PeakOf returns the time and value of compartment i's maximum pressure.
// The earliest maximum wins on ties.
func (r *Result) PeakOf(i int) (t, p float64) {
	if r.Len() == 0 {
		return 0, 0
	}
	series := r.Compartment(i)
	k := floats.MaxIdx(series)

	return r.TimePoints[k], series[k]
}

// Ceilings is the dive ceiling at gf for every grid point.
func (r *Result) Ceilings(gf float64) []limits.Ceiling {
	return limits.CeilingTimeSeries(r.Pressures, gf, r.table)
}

// MaxCeiling returns the deepest ceiling at gf and the time it occurs.
func (r *Result) MaxCeiling(gf float64) (float64, limits.Ceiling) {
	var (
		at   float64
		best limits.Ceiling
	)
	for i, c := range r.Ceilings(gf) {
		if i == 0 || c.Pressure > best.Pressure {
			at, best = r.TimePoints[i], c
		}
	}

	return at, best
}

// Supersaturation is the current-GF series of the result.
func (r *Result) Supersaturation() []limits.Supersaturation {
	return limits.SupersaturationSeries(r.Pressures, r.AmbientPressures, r.table)
}

// FirstStop is the gfLow first stop for the tissue state at grid point i.
func (r *Result) FirstStop(i int, gfLow, increment float64) (limits.FirstStop, error) {
	return limits.FirstStopDepth(r.Pressures[i], gfLow, increment, r.table)
}
