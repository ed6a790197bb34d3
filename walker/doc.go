// SPDX-License-Identifier: MIT

// Package walker drives the perfusion equations across a dive profile and
// produces the aligned time series every chart in decolab is drawn from.
//
// Algorithm outline (CalculateTissueLoading):
//  1. Validate the profile (≥2 waypoints, strictly increasing times).
//  2. Seed all 16 compartments at surface equilibrium for the gas active
//     at t=0 (or WithSurfaceFraction).
//  3. At each grid time t: depth = profile.DepthAt(t), gas = profile.GasAt(t);
//     record time, depth, ambient, alveolar N2, gas name and tissue state;
//     record a GasSwitch when the gas differs from the previous point.
//  4. next = t + step, clamped down to the next waypoint time and to the
//     end of the surface interval. Every waypoint time is therefore a grid
//     point, and no step spans a rate discontinuity or a gas switch.
//  5. Integrate every compartment independently from t to next: Haldane
//     when the alveolar rate is below perfusion.RateEpsilon, Schreiner
//     otherwise.
//  6. Stop after recording the point at lastWaypoint.Time+surfaceInterval.
//
// Complexity: O(T/step · 16) time and memory for a dive of T minutes.
//
// Concurrency: a calculation pins one *tissue.Table at start and shares no
// mutable state, so independent profiles can run in parallel;
// CalculateSetup does exactly that for every dive of a profile.DiveSetup.
//
// Summarize reduces a Result to the figures a report shows: compartment
// peaks, the deepest gfLow ceiling and the first stop behind it.
package walker
