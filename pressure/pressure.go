// SPDX-License-Identifier: MIT

package pressure

// Physical constants (single source of truth).
const (
	// SurfacePressure is the ambient pressure at sea level, bar.
	SurfacePressure = 1.0

	// WaterVaporPressure is the alveolar water-vapour pressure at 37 °C, bar.
	WaterVaporPressure = 0.0627

	// PressurePerMeter is the pressure added by one metre of sea water, bar/m.
	PressurePerMeter = 0.1

	// AirN2Fraction is the inert (nitrogen) fraction of breathing air.
	AirN2Fraction = 0.79
)

// Ambient returns the absolute ambient pressure at depth metres.
// Monotonic increasing in depth; negative depths are not rejected.
func Ambient(depth float64) float64 {
	return SurfacePressure + depth*PressurePerMeter
}

// Depth is the inverse of Ambient, clamped at the surface (never negative).
func Depth(ambient float64) float64 {
	d := (ambient - SurfacePressure) / PressurePerMeter
	if d < 0 {
		return 0
	}

	return d
}

// Alveolar returns the inert-gas partial pressure in the alveoli for the
// given ambient pressure and inert-gas fraction.
func Alveolar(ambient, fraction float64) float64 {
	return (ambient - WaterVaporPressure) * fraction
}

// AlveolarN2 is Alveolar with an optional fraction; when none is supplied
// the nitrogen fraction of air is used.
func AlveolarN2(ambient float64, fraction ...float64) float64 {
	f := AirN2Fraction
	if len(fraction) > 0 {
		f = fraction[0]
	}

	return Alveolar(ambient, f)
}

// InitialTissue is the surface-equilibrium tissue pressure for a diver who
// has been breathing a gas with the given inert fraction at the surface.
func InitialTissue(fraction float64) float64 {
	return Alveolar(SurfacePressure, fraction)
}
