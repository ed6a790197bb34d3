// SPDX-License-Identifier: MIT

// Package pressure converts between depth and ambient pressure and derives
// the alveolar inert-gas partial pressure that drives tissue perfusion.
//
// Model:
//
//	ambient(d)      = SurfacePressure + d·PressurePerMeter        [bar]
//	alveolar(p, f)  = (p − WaterVaporPressure) · f                [bar]
//	initialTissue(f) = alveolar(SurfacePressure, f)               [bar]
//
// The water-vapour term is the saturation pressure at body temperature; it
// is subtracted because the lungs are always saturated with vapour and the
// inert gas only fills the remainder.
//
// Everything here is pure, total and allocation-free.
package pressure
