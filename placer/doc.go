// Package placer implements quadratic analytic placement with
// bound-to-bound (B2B) net modeling and look-ahead legalization (QLA).
//
// Purpose:
//   - Project a netlist into an unconstrained spring system, solve it
//     with linalg's conjugate-gradient solver, and legalize the
//     continuous result into a non-overlapping row-aligned placement.
//   - Iterate B2B-solve/legalize until HPWL stabilizes or an iteration
//     budget is hit.
//
// Notes:
//   - Positions are nanometers (int64), matching chipdb.Coord; spring
//     assembly and the CG solve itself work in float64 and truncate
//     back to integer coordinates on write-back.
package placer
