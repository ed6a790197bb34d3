// SPDX-License-Identifier: MIT

// Package profile models what a diver plans: breathing gases, a
// piecewise-linear depth profile keyed by waypoints, and the DiveSetup that
// bundles several dives with their gradient factors.
//
// The two lookups everything else relies on are pure:
//
//   - DepthAt(p, t) : linear interpolation inside the active segment,
//     0 m once t is past the last waypoint (surface interval).
//   - GasAt(p, gases, t) : step function: the last gas switch at a
//     waypoint time ≤ t wins; without one, the first gas of the list.
//
// A DiveSetup can be decoded from YAML or JSON:
//
//	gases:
//	  - {id: air, name: Air, o2: 0.21, n2: 0.79}
//	  - {id: ean50, name: EAN50, o2: 0.5, n2: 0.5}
//	dives:
//	  - waypoints:
//	      - {time: 0, depth: 0, gasId: air}
//	      - {time: 2, depth: 40}
//	      - {time: 22, depth: 40}
//	      - {time: 26, depth: 21, gasId: ean50}
//	      - {time: 30, depth: 0}
//	gfLow: 0.3
//	gfHigh: 0.85
//	surfaceInterval: 60
package profile
