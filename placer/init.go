package placer

import "math/rand"

// Region is the axis-aligned placement area nodes are scattered and
// legalized within.
type Region struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

func (r Region) Width() int64  { return r.MaxX - r.MinX }
func (r Region) Height() int64 { return r.MaxY - r.MinY }

// Contains reports whether p lies within r (inclusive).
func (r Region) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// doInitialPlacement scatters every movable node uniformly at random
// within region, nudging it inward if its footprint would otherwise
// spill past the region's right or top edge.
func doInitialPlacement(nl *Netlist, region Region, rng *rand.Rand) {
	for i := range nl.Nodes {
		node := &nl.Nodes[i]
		if node.IsFixed() {
			continue
		}
		x := region.MinX + rng.Int63n(maxI64(region.Width(), 1))
		y := region.MinY + rng.Int63n(maxI64(region.Height(), 1))
		node.Pos = Point{X: x, Y: y}

		if right := node.Pos.X + node.Size.W; right > region.MaxX {
			node.Pos.X -= right - region.MaxX
		}
		if top := node.Pos.Y + node.Size.H; top > region.MaxY {
			node.Pos.Y -= top - region.MaxY
		}
	}
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
