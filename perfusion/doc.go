// SPDX-License-Identifier: MIT

// Package perfusion integrates the single-compartment perfusion equation
//
//	dP/dt = k·(P_alv(t) − P),   k = ln2 / halfTime
//
// in closed form for the two input shapes a piecewise-linear dive produces:
//
//   - Haldane   : P_alv constant (level segment):
//     P(t) = P_alv + (P0 − P_alv)·e^(−kt)
//   - Schreiner : P_alv linear with rate R (ascent/descent):
//     P(t) = P_alv0 + R(t − 1/k) − (P_alv0 − P0 − R/k)·e^(−kt)
//
// Schreiner reduces to Haldane for R = 0. Step picks between them by the
// magnitude of R so level segments avoid the 1/k cancellation.
//
// All functions are pure. Units: bar, minutes, bar/min.
package perfusion
