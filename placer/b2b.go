package placer

import (
	"math"

	"github.com/edacore/pnrcore/linalg"
)

// axis selects which coordinate a spring assembly pass works on.
type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) get(p Point) int64 {
	if a == axisX {
		return p.X
	}
	return p.Y
}

// updateWeights adds the bound-to-bound spring between node1 and node2
// (on the given axis) into mat/vec, per the net's weight and size.
// Mirrors the four fixed/movable cases of the reference placer: both
// fixed contributes nothing but a solver-friendly diagonal pin; one
// fixed anchors the other via the right-hand side; both movable couples
// the pair symmetrically.
func updateWeights(mat *linalg.SparseMatrix, vec []float64, nl *Netlist, a axis, id1, id2 NodeID, netWeight float64, netSize int) {
	n1, n2 := &nl.Nodes[id1], &nl.Nodes[id2]

	distance := a.get(n1.Pos) - a.get(n2.Pos)
	if distance < 0 {
		distance = -distance
	}
	if distance < 1 {
		distance = 1
	}

	weight := netWeight / (float64(netSize-1) * float64(distance))
	fixedWeight := netWeight / float64(netSize-1)

	switch {
	case n1.IsFixed() && n2.IsFixed():
		mat.PinDiagonal(int(id1))
		mat.PinDiagonal(int(id2))

	case n1.IsFixed() || n2.IsFixed():
		fixedNode, movableID := n1, id2
		movingNode := n2
		if n2.IsFixed() {
			fixedNode, movableID = n2, id1
			movingNode = n1
		}
		_ = movingNode
		mat.AddTo(int(movableID), int(movableID), fixedWeight)
		mat.PinDiagonal(int(pinnedIDOf(id1, id2, fixedNode, n1)))
		vec[movableID] += fixedWeight * float64(a.get(fixedNode.Pos))

	default:
		mat.AddTo(int(id1), int(id1), weight)
		mat.AddTo(int(id2), int(id2), weight)
		mat.AddTo(int(id1), int(id2), -weight)
	}
}

// pinnedIDOf returns whichever of id1/id2 corresponds to the fixed node
// (by pointer identity against n1), so its diagonal can be pinned to 1.
func pinnedIDOf(id1, id2 NodeID, fixedNode, n1 *Node) NodeID {
	if fixedNode == n1 {
		return id1
	}
	return id2
}

// extrema is the pair of net-extremal nodes on one axis.
type extrema struct {
	minID, maxID NodeID
	min, max     int64
}

func findExtremeNodes(nl *Netlist, a axis, net *Net, rng interface{ Intn(int) int }) extrema {
	e := extrema{min: math.MaxInt64, max: math.MinInt64}
	for _, id := range net.Nodes {
		pos := a.get(nl.Nodes[id].Pos)
		if pos > e.max {
			e.maxID, e.max = id, pos
		}
		if pos < e.min {
			e.minID, e.min = id, pos
		}
	}
	for e.minID == e.maxID && len(net.Nodes) > 1 {
		e.maxID = net.Nodes[rng.Intn(len(net.Nodes))]
	}
	return e
}

// SolveB2B assembles the bound-to-bound spring system for both axes and
// solves each independently via linalg's CG solver, writing the
// resulting positions back into every movable node. Two-pin nets
// connect their endpoints directly; larger nets connect each axis's
// extrema together and each interior node to both extrema, per the
// standard B2B net model.
func SolveB2B(nl *Netlist, opts Options) error {
	n := len(nl.Nodes)
	if n == 0 {
		return placerErrorf("SolveB2B", ErrEmptyNetlist)
	}

	xMat, err := linalg.NewSparseMatrix(n)
	if err != nil {
		return placerErrorf("SolveB2B", err)
	}
	yMat, err := linalg.NewSparseMatrix(n)
	if err != nil {
		return placerErrorf("SolveB2B", err)
	}
	xVec := make([]float64, n)
	yVec := make([]float64, n)

	for ni := range nl.Nets {
		net := &nl.Nets[ni]
		size := len(net.Nodes)
		switch {
		case size == 2:
			updateWeights(xMat, xVec, nl, axisX, net.Nodes[0], net.Nodes[1], net.Weight, size)
			updateWeights(yMat, yVec, nl, axisY, net.Nodes[0], net.Nodes[1], net.Weight, size)

		case size > 2:
			xe := findExtremeNodes(nl, axisX, net, opts.Rand)
			ye := findExtremeNodes(nl, axisY, net, opts.Rand)

			updateWeights(xMat, xVec, nl, axisX, xe.minID, xe.maxID, net.Weight, size)
			updateWeights(yMat, yVec, nl, axisY, ye.minID, ye.maxID, net.Weight, size)

			for _, id := range net.Nodes {
				if id != xe.minID && id != xe.maxID {
					updateWeights(xMat, xVec, nl, axisX, xe.minID, id, net.Weight, size)
					updateWeights(xMat, xVec, nl, axisX, xe.maxID, id, net.Weight, size)
				}
				if id != ye.minID && id != ye.maxID {
					updateWeights(yMat, yVec, nl, axisY, ye.minID, id, net.Weight, size)
					updateWeights(yMat, yVec, nl, axisY, ye.maxID, id, net.Weight, size)
				}
			}
		}
	}

	xMat.Finalize()
	yMat.Finalize()

	xRes, err := linalg.Solve(xMat, xVec, nil, linalg.DefaultSolveOptions(n))
	if err != nil {
		return placerErrorf("SolveB2B", err)
	}
	yRes, err := linalg.Solve(yMat, yVec, nil, linalg.DefaultSolveOptions(n))
	if err != nil {
		return placerErrorf("SolveB2B", err)
	}

	for i := range nl.Nodes {
		if nl.Nodes[i].IsFixed() {
			continue
		}
		nl.Nodes[i].Pos = Point{X: int64(xRes.X[i]), Y: int64(yRes.X[i])}
	}
	return nil
}

// HPWL returns the total half-perimeter wirelength of nl's current
// placement: for each net, the sum of its bounding box's width and
// height.
func HPWL(nl *Netlist) float64 {
	var total float64
	for i := range nl.Nets {
		net := &nl.Nets[i]
		if len(net.Nodes) == 0 {
			continue
		}
		xmin, xmax := int64(math.MaxInt64), int64(math.MinInt64)
		ymin, ymax := int64(math.MaxInt64), int64(math.MinInt64)
		for _, id := range net.Nodes {
			pos := nl.Nodes[id].Pos
			xmin, xmax = minI64(xmin, pos.X), maxI64(xmax, pos.X)
			ymin, ymax = minI64(ymin, pos.Y), maxI64(ymax, pos.Y)
		}
		total += float64((xmax - xmin) + (ymax - ymin))
	}
	return total
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
