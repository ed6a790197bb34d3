// SPDX-License-Identifier: MIT

package profile

import "math"

// FractionTolerance is the allowed deviation of O2+N2+He from 1.
const FractionTolerance = 1e-3

// AirID is the id of the default gas.
const AirID = "air"

// Gas is a breathing mix. Fractions are of the whole mix.
type Gas struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	O2   float64 `json:"o2" yaml:"o2"`
	N2   float64 `json:"n2" yaml:"n2"`
	He   float64 `json:"he" yaml:"he"`
}

// Air returns the default breathing gas.
func Air() Gas {
	return Gas{ID: AirID, Name: "Air", O2: 0.21, N2: 0.79}
}

// Label returns Name, or ID when no name is set.
func (g Gas) Label() string {
	if g.Name != "" {
		return g.Name
	}

	return g.ID
}

// Validate checks that every fraction is in [0,1] and that they sum to 1.
func (g Gas) Validate() error {
	for _, f := range []float64{g.O2, g.N2, g.He} {
		if f < 0 || f > 1 || math.IsNaN(f) {
			return profileErrorf("Gas.Validate", ErrInvalidGas, "%s: fraction %v out of [0,1]", g.ID, f)
		}
	}
	if sum := g.O2 + g.N2 + g.He; math.Abs(sum-1) > FractionTolerance {
		return profileErrorf("Gas.Validate", ErrInvalidGas, "%s: fractions sum to %v", g.ID, sum)
	}

	return nil
}

// ValidateGases checks each gas and that ids are unique.
func ValidateGases(gases []Gas) error {
	seen := make(map[string]struct{}, len(gases))
	for _, g := range gases {
		if err := g.Validate(); err != nil {
			return err
		}
		if _, dup := seen[g.ID]; dup {
			return profileErrorf("ValidateGases", ErrDuplicateGas, "%q", g.ID)
		}
		seen[g.ID] = struct{}{}
	}

	return nil
}

// findGas returns the gas with id, if any.
func findGas(gases []Gas, id string) (Gas, bool) {
	for _, g := range gases {
		if g.ID == id {
			return g, true
		}
	}

	return Gas{}, false
}
