// Package cts implements mean-and-median clock tree synthesis: a
// recursive X/Y-median quadrisection of a clock net's sinks into a
// segment tree, followed by bottom-up capacitance-driven buffer
// insertion.
//
// Purpose:
//   - Build a segment tree rooted at the clock driver, branching by
//     alternating X-median and Y-median splits of the remaining sinks.
//   - Walk the tree bottom-up, accumulating load capacitance per
//     segment, and insert a buffer (plus a new downstream net) wherever
//     a segment's accumulated load reaches the library's max
//     capacitance for a single driver.
//
// Notes:
//   - This package only builds the tree and performs buffer insertion;
//     it does not itself touch placement or routing, mirroring the
//     source's layering (a CTS pass runs after placement, before
//     detailed routing, and only reads/writes netlist connectivity plus
//     new buffer positions).
package cts
