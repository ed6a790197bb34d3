// SPDX-License-Identifier: MIT

// Package decolab computes inert-gas tissue loading with the Bühlmann
// ZH-L16 model and the decompression limits derived from it.
//
// A dive is a piecewise-linear list of waypoints (time in minutes, depth in
// metres, optional gas switch). The walker integrates the 16 compartments on
// a fixed 10 s grid that always lands on every waypoint, then continues for a
// surface interval at 0 m. From the resulting tissue states the limits
// package derives M-values, gradient-factor ceilings and the first stop.
//
// Packages:
//
//	tissue/    : compartment coefficients (ZH-L16A/B/C) and the versioned active table
//	pressure/  : ambient, alveolar and initial tissue pressures
//	perfusion/ : Haldane and Schreiner closed-form solutions
//	limits/    : M-values, ceilings, GF interpolation, first stop, current GF
//	profile/   : waypoints, gases, piecewise lookups and dive setup files
//	walker/    : the grid integrator, results and summaries
//
// Quick start:
//
//	p := profile.Profile{{Time: 0}, {Time: 2, Depth: 30}, {Time: 25, Depth: 30}, {Time: 28}}
//	res, err := walker.CalculateTissueLoading(p, 30)
//	if err != nil { ... }
//	_, worst := res.MaxCeiling(0.3)
//	fmt.Printf("ceiling %.1f m\n", worst.Depth)
//
// The decolab command (cmd/decolab) wraps the same calculation for YAML or
// JSON setup files and serves it over HTTP.
//
// Units: bar, metres, minutes. Pressures are absolute.
package decolab
