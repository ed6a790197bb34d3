// SPDX-License-Identifier: MIT

// Package tissue defines the 16 Bühlmann ZH-L16 nitrogen compartments and
// the variant-selectable coefficient table the rest of decolab reads.
//
// What is a compartment?
//
//	A theoretical tissue group with a characteristic half-time. Each one
//	carries Bühlmann coefficients (a, b) that define its M-value line
//	M(p) = a + p/b. Half-times and b are shared by every variant; the
//	variant (A, B, C) only changes a.
//
// Snapshots and the registry:
//
//   - Table is an immutable snapshot. Calculations receive one and never
//     observe a variant switch mid-run.
//   - Registry holds the process-wide active Table behind an atomic
//     pointer. SetVariant publishes a whole new Table and bumps its
//     version; readers that called Active() keep the table they pinned.
//
// Invariants (checked by (*Table).Validate):
//   - IDs are 1..16 in order.
//   - half-times strictly increase.
//   - a strictly decreases, b strictly increases and stays in (0, 1).
package tissue
