// SPDX-License-Identifier: MIT

package walker

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/decolab/limits"
)

// Peak is the maximum pressure one compartment reaches.
type Peak struct {
	Compartment int     `json:"compartment"`
	Time        float64 `json:"time"`
	Pressure    float64 `json:"pressure"`
}

// Summary condenses a Result into the figures a dive report shows.
// MaxCeiling is evaluated at gfLow; FirstStop uses the tissue state at the
// time of that deepest ceiling.
type Summary struct {
	Name           string                 `json:"name,omitempty"`
	Variant        string                 `json:"variant"`
	Points         int                    `json:"points"`
	EndTime        float64                `json:"endTime"`
	MaxDepth       float64                `json:"maxDepth"`
	Peaks          []Peak                 `json:"peaks"`
	MaxCeilingTime float64                `json:"maxCeilingTime"`
	MaxCeiling     limits.Ceiling         `json:"maxCeiling"`
	FirstStop      limits.FirstStop       `json:"firstStop"`
	MaxGFTime      float64                `json:"maxGfTime"`
	MaxGF          limits.Supersaturation `json:"maxGf"`
	GasSwitches    []GasSwitch            `json:"gasSwitches"`
}

// Summarize builds the Summary of r. An empty result yields a summary with
// only Name and Variant set.
func Summarize(name string, r *Result, gfLow, increment float64) (Summary, error) {
	s := Summary{Name: name, Variant: r.Variant, Points: r.Len(), GasSwitches: r.GasSwitches}
	if r.Len() == 0 {
		return s, nil
	}
	s.EndTime = r.TimePoints[r.Len()-1]
	s.MaxDepth = floats.Max(r.DepthPoints)

	s.Peaks = make([]Peak, r.table.Len())
	for i := range s.Peaks {
		t, p := r.PeakOf(i)
		s.Peaks[i] = Peak{Compartment: i + 1, Time: t, Pressure: p}
	}

	at := 0
	ceilings := r.Ceilings(gfLow)
	for i, c := range ceilings {
		if c.Pressure > ceilings[at].Pressure {
			at = i
		}
	}
	s.MaxCeilingTime, s.MaxCeiling = r.TimePoints[at], ceilings[at]

	fs, err := r.FirstStop(at, gfLow, increment)
	if err != nil {
		return Summary{}, err
	}
	s.FirstStop = fs

	for i, g := range r.Supersaturation() {
		if i == 0 || g.GF > s.MaxGF.GF {
			s.MaxGFTime, s.MaxGF = r.TimePoints[i], g
		}
	}

	return s, nil
}
