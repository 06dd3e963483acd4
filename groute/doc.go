// Package groute implements maze-based global routing over a coarse
// GCell grid: each multi-pin net is first decomposed into point-to-point
// segments via a Prim minimum spanning tree over its terminals, then
// each segment is routed independently with an A* maze search that
// respects per-GCell routing capacity.
//
// Purpose:
//   - Build a width x height GCell grid with one uniform per-cell
//     capacity (NewGrid). The grid's dimensions and the GCell size are
//     picked by the caller; nothing here derives them from a floorplan
//     or a track density.
//   - Decompose a net's terminal set into a Steiner-like tree skeleton
//     (MST over Manhattan distances) rather than routing every pair.
//   - Route each skeleton edge as a capacity-aware maze search, marking
//     capacity consumed along the winning path.
//
// Notes:
//   - Routing decisions are deterministic: the MST and the maze search
//     both break ties by insertion order, never by map iteration order.
package groute
