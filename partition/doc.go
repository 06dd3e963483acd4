// Package partition implements two-way Fiduccia-Mattheyses (FM) min-cut
// partitioning over a weighted hypergraph of nodes and nets.
//
// Purpose:
//   - Split a netlist-derived node set into two partitions while
//     minimizing the weighted number of nets that cross the cut.
//   - Support fixed (pre-placed) nodes, which are locked to whichever
//     partition they are closest to and never move.
//
// Notes:
//   - Gain-ordered node selection uses an O(1) push/pop bucket keyed by
//     gain value, not a heap: FM's gain range is bounded by a node's net
//     degree, so a bucket beats heap overhead for this access pattern.
//   - A full pass moves every free node exactly once (locking it as it
//     moves), then rewinds to the prefix with the best cumulative gain
//     before starting the next pass — never commits a pass that made
//     things worse.
package partition
