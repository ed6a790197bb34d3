// SPDX-License-Identifier: MIT

// Package limits derives decompression limits from compartment pressures:
// M-values, gradient-factor adjusted M-values, ceilings and the first stop.
//
// Formulas (Bühlmann, pressures in bar):
//
//	M(p)            = a + p/b
//	M_gf(p)         = p + gf·(M(p) − p)
//	ceiling(P, gf)  = b·(P − gf·a) / (b·(1 − gf) + gf)     (M_gf(ceiling) = P)
//	GF(p)           = gfHigh + (gfLow − gfHigh)·(p − p_surf)/(p_first − p_surf)
//
// The dive ceiling is the deepest compartment ceiling, never shallower than
// the surface. The first stop rounds that ceiling's depth up to the next
// multiple of the stop increment.
//
// Every function takes the compartment table explicitly so a calculation
// uses one coherent snapshot from start to finish.
package limits
