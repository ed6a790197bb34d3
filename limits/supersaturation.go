// SPDX-License-Identifier: MIT

package limits

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/decolab/tissue"
)

// Supersaturation is the "current gradient factor" of a tissue state: how
// far the leading compartment sits between ambient (0) and its raw M-value (1).
// Negative values mean every compartment is still on-gassing.
type Supersaturation struct {
	GF          float64 `json:"gf"`
	Compartment int     `json:"compartment"`
}

// SupersaturationGF returns the maximum (P − p)/(M(p) − p) over compartments
// at ambient pressure p.
func SupersaturationGF(s tissue.State, ambient float64, table *tissue.Table) Supersaturation {
	var gfs [tissue.Count]float64
	for i := range gfs {
		c := table.At(i)
		gfs[i] = (s[i] - ambient) / (MValue(ambient, c.AN2, c.BN2) - ambient)
	}
	idx := floats.MaxIdx(gfs[:])

	return Supersaturation{GF: gfs[idx], Compartment: idx + 1}
}

// SupersaturationSeries evaluates SupersaturationGF for aligned states and
// ambient pressures. The shorter slice bounds the output.
func SupersaturationSeries(states []tissue.State, ambients []float64, table *tissue.Table) []Supersaturation {
	n := len(states)
	if len(ambients) < n {
		n = len(ambients)
	}
	out := make([]Supersaturation, n)
	for i := 0; i < n; i++ {
		out[i] = SupersaturationGF(states[i], ambients[i], table)
	}

	return out
}

// MValueLine samples a compartment's raw M-value at each ambient pressure,
// the line a pressure/pressure chart draws for it.
func MValueLine(c tissue.Compartment, ambients []float64) []float64 {
	return AdjustedMValueLine(c, ambients, 1)
}

// AdjustedMValueLine samples the gf-adjusted M-value at each ambient pressure.
func AdjustedMValueLine(c tissue.Compartment, ambients []float64, gf float64) []float64 {
	out := make([]float64, len(ambients))
	for i, p := range ambients {
		out[i] = AdjustedMValue(p, c.AN2, c.BN2, gf)
	}

	return out
}
