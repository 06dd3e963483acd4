package placer

import (
	"math"
	"sort"

	"github.com/edacore/pnrcore/runctx"
)

// block is one node in the look-ahead legalization bisection tree: a
// sub-region at a given recursion level, split horizontally on even
// levels and vertically on odd levels.
type block struct {
	extents Region
	level   int
}

// lookaheadLegalise recursively bisects region, alternating horizontal
// (even level) and vertical (odd level) cuts, stopping when a block's
// width or height falls at or below the configured minimum. After each
// split, every movable node inside the two new sub-blocks is spread
// across that sub-block's interior via nonlinearScale. Before bisecting,
// every movable node is clamped into region, so a node the solve left
// outside it is pulled back in and spread like the rest.
func lookaheadLegalise(nl *Netlist, region Region, opts Options) {
	for i := range nl.Nodes {
		if n := &nl.Nodes[i]; !n.IsFixed() {
			n.Pos.X = min(max(n.Pos.X, region.MinX), region.MaxX)
			n.Pos.Y = min(max(n.Pos.Y, region.MinY), region.MaxY)
		}
	}
	queue := []block{{extents: region, level: 0}}

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		if b.extents.Width() <= opts.BlockMinWidth || b.extents.Height() <= opts.BlockMinHeight {
			continue
		}

		movable := movableNodesIn(nl, b.extents)

		if b.level%2 == 0 {
			sort.Slice(movable, func(i, j int) bool {
				return nl.Nodes[movable[i]].Pos.X < nl.Nodes[movable[j]].Pos.X
			})
			cut := b.extents.MinX + b.extents.Width()/2
			left := block{extents: Region{MinX: b.extents.MinX, MinY: b.extents.MinY, MaxX: cut, MaxY: b.extents.MaxY}, level: b.level + 1}
			right := block{extents: Region{MinX: cut, MinY: b.extents.MinY, MaxX: b.extents.MaxX, MaxY: b.extents.MaxY}, level: b.level + 1}

			leftNodes, rightNodes := splitSorted(movable, nl, axisX, cut)
			nonlinearScale(nl, leftNodes, left.extents, axisX)
			nonlinearScale(nl, rightNodes, right.extents, axisX)

			queue = append(queue, left, right)
		} else {
			sort.Slice(movable, func(i, j int) bool {
				return nl.Nodes[movable[i]].Pos.Y < nl.Nodes[movable[j]].Pos.Y
			})
			cut := b.extents.MinY + b.extents.Height()/2
			bottom := block{extents: Region{MinX: b.extents.MinX, MinY: b.extents.MinY, MaxX: b.extents.MaxX, MaxY: cut}, level: b.level + 1}
			top := block{extents: Region{MinX: b.extents.MinX, MinY: cut, MaxX: b.extents.MaxX, MaxY: b.extents.MaxY}, level: b.level + 1}

			bottomNodes, topNodes := splitSorted(movable, nl, axisY, cut)
			nonlinearScale(nl, bottomNodes, bottom.extents, axisY)
			nonlinearScale(nl, topNodes, top.extents, axisY)

			queue = append(queue, bottom, top)
		}
	}
}

func movableNodesIn(nl *Netlist, r Region) []NodeID {
	var ids []NodeID
	for i := range nl.Nodes {
		if !nl.Nodes[i].IsFixed() && r.Contains(nl.Nodes[i].Pos) {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// splitSorted divides an axis-sorted node list at the split coordinate
// into the nodes that fall below it and those at or above it.
func splitSorted(sorted []NodeID, nl *Netlist, a axis, cut int64) (below, atOrAbove []NodeID) {
	for _, id := range sorted {
		if a.get(nl.Nodes[id].Pos) < cut {
			below = append(below, id)
		} else {
			atOrAbove = append(atOrAbove, id)
		}
	}
	return below, atOrAbove
}

// nonlinearScale spreads nodes (already sorted along axis a) uniformly
// across region's interior along that axis, preserving their relative
// order.
//
// The source placer leaves this step unimplemented; this package
// resolves it as the simplest rank-order-preserving remap: the i-th
// node (of n) is placed at lo + (hi-lo)*i/(n-1) along the split axis,
// a linear spread across the block rather than leaving every node
// clustered wherever the previous solve put it. A single node is
// centered in the block.
func nonlinearScale(nl *Netlist, nodes []NodeID, region Region, a axis) {
	n := len(nodes)
	if n == 0 {
		return
	}
	var lo, hi int64
	if a == axisX {
		lo, hi = region.MinX, region.MaxX
	} else {
		lo, hi = region.MinY, region.MaxY
	}
	if n == 1 {
		mid := (lo + hi) / 2
		setAxis(nl, nodes[0], a, mid)
		return
	}
	span := hi - lo
	for i, id := range nodes {
		pos := lo + span*int64(i)/int64(n-1)
		setAxis(nl, id, a, pos)
	}
}

func setAxis(nl *Netlist, id NodeID, a axis, v int64) {
	if a == axisX {
		nl.Nodes[id].Pos.X = v
	} else {
		nl.Nodes[id].Pos.Y = v
	}
}

// Place runs the full QLA flow: scatter, then repeated B2B-solve +
// look-ahead-legalize rounds until HPWL changes by less than
// opts.ConvergenceTol or opts.MaxOuterIterations is reached.
//
// ctx is polled once per outer round; a nil ctx never cancels. After
// every round (including the one that triggers convergence or hits the
// iteration budget), opts.OnIteration is invoked with nl if set, before
// Place checks for cancellation or convergence.
func Place(nl *Netlist, region Region, opts Options, ctx *runctx.Context) (float64, error) {
	if len(nl.Nodes) == 0 {
		return 0, placerErrorf("Place", ErrEmptyNetlist)
	}
	if region.Width() <= 0 || region.Height() <= 0 {
		return 0, placerErrorf("Place", ErrDegenerateRegion)
	}
	anyMovable := false
	for i := range nl.Nodes {
		if !nl.Nodes[i].IsFixed() {
			anyMovable = true
			break
		}
	}
	if !anyMovable {
		return 0, placerErrorf("Place", ErrAllNodesFixed)
	}
	if opts.BlockMinWidth <= 0 {
		onIter := opts.OnIteration
		opts = DefaultOptions(opts.Rand, 1)
		opts.OnIteration = onIter
	}

	doInitialPlacement(nl, region, opts.Rand)

	prevHPWL := math.MaxFloat64
	for iter := 0; iter < opts.MaxOuterIterations; iter++ {
		if err := SolveB2B(nl, opts); err != nil {
			return 0, err
		}
		lookaheadLegalise(nl, region, opts)

		hpwl := HPWL(nl)
		ctx.Log("placer: iteration %d hpwl=%f", iter, hpwl)
		if opts.OnIteration != nil {
			opts.OnIteration(nl)
		}
		if ctx.Cancelled() {
			return hpwl, placerErrorf("Place", ErrCancelled)
		}
		if prevHPWL > 0 && absF(prevHPWL-hpwl)/prevHPWL < opts.ConvergenceTol {
			return hpwl, nil
		}
		prevHPWL = hpwl
	}
	return HPWL(nl), nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
