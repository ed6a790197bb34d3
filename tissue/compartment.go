// SPDX-License-Identifier: MIT

package tissue

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/decolab/perfusion"
)

// Count is the number of compartments in every ZH-L16 variant.
const Count = 16

// Variant selects the a-coefficient set of the ZH-L16 model.
type Variant int

const (
	// VariantA is the original ZH-L16A (experimental) a-set.
	VariantA Variant = iota
	// VariantB is ZH-L16B, intended for printed tables.
	VariantB
	// VariantC is ZH-L16C, the most conservative set, used by dive computers.
	VariantC
)

// DefaultVariant is used when nothing else is configured.
const DefaultVariant = VariantC

// ConservativeVariant is the fallback for unknown variant requests.
const ConservativeVariant = VariantC

// String returns "ZH-L16A", "ZH-L16B" or "ZH-L16C".
func (v Variant) String() string {
	switch v {
	case VariantA:
		return "ZH-L16A"
	case VariantB:
		return "ZH-L16B"
	case VariantC:
		return "ZH-L16C"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Valid reports whether v names a known coefficient set.
func (v Variant) Valid() bool {
	return v >= VariantA && v <= VariantC
}

// ParseVariant accepts "A", "B", "C" or the full "ZH-L16x" names, case-insensitive.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ZH-L16")
	name = strings.TrimPrefix(name, "ZHL16")
	switch name {
	case "A":
		return VariantA, nil
	case "B":
		return VariantB, nil
	case "C":
		return VariantC, nil
	}

	return DefaultVariant, tissueErrorf("ParseVariant", ErrUnknownVariant, "%q", s)
}

// Compartment is one tissue group. Values are copied, never shared.
type Compartment struct {
	ID       int     `json:"id"`       // 1..16, increasing half-time
	HalfTime float64 `json:"halfTime"` // N2 half-time, minutes
	AN2      float64 `json:"aN2"`      // Bühlmann a, bar
	BN2      float64 `json:"bN2"`      // Bühlmann b, dimensionless
}

// RateConstant returns k = ln2 / HalfTime for this compartment.
func (c Compartment) RateConstant() float64 {
	return perfusion.RateConstant(c.HalfTime)
}

// State holds one inert-gas pressure per compartment, indexed by ID−1.
type State [Count]float64

// Fill returns a State with every compartment at p.
func Fill(p float64) State {
	var s State
	for i := range s {
		s[i] = p
	}

	return s
}

// Coefficient tables. Compartment 1 uses the 5-minute "1b" half-time,
// which is the one shared by all three a-sets.
var (
	halfTimes = [Count]float64{
		5.0, 8.0, 12.5, 18.5, 27.0, 38.3, 54.3, 77.0,
		109.0, 146.0, 187.0, 239.0, 305.0, 390.0, 498.0, 635.0,
	}

	bCoefficients = [Count]float64{
		0.5578, 0.6514, 0.7222, 0.7825, 0.8126, 0.8434, 0.8693, 0.8910,
		0.9092, 0.9222, 0.9319, 0.9403, 0.9477, 0.9544, 0.9602, 0.9653,
	}

	aCoefficients = map[Variant][Count]float64{
		VariantA: {
			1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5933, 0.5282, 0.4701,
			0.4187, 0.3798, 0.3497, 0.3223, 0.2971, 0.2737, 0.2523, 0.2327,
		},
		VariantB: {
			1.1696, 1.0000, 0.8618, 0.7562, 0.6667, 0.5600, 0.4947, 0.4500,
			0.4187, 0.3798, 0.3497, 0.3223, 0.2850, 0.2737, 0.2523, 0.2327,
		},
		VariantC: {
			1.1696, 1.0000, 0.8618, 0.7562, 0.6200, 0.5043, 0.4410, 0.4000,
			0.3750, 0.3500, 0.3295, 0.3065, 0.2835, 0.2610, 0.2480, 0.2327,
		},
	}
)
