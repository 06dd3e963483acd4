package cts

import "sort"

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

// nodeList is the mutable working set recursiveSubdivision splits down
// to nothing; it holds copies of the ClockNet's Sink values, and split()
// copies them again into the two halves.
type nodeList struct {
	sinks []Sink
}

func (n nodeList) mean() Point {
	if len(n.sinks) == 0 {
		return Point{}
	}
	var totalX, totalY float64
	for _, s := range n.sinks {
		totalX += float64(s.Pos.X)
		totalY += float64(s.Pos.Y)
	}
	count := float64(len(n.sinks))
	return Point{X: int64(totalX / count), Y: int64(totalY / count)}
}

// split sorts n along a and divides it at the median into two roughly
// equal halves (the lower half gets the extra element when the count is
// odd, matching (size+1)/2).
func (n nodeList) split(a axis) (lower, upper nodeList) {
	sorted := append([]Sink(nil), n.sinks...)
	sort.Slice(sorted, func(i, j int) bool { return a.get(sorted[i].Pos) < a.get(sorted[j].Pos) })
	expected := (len(sorted) + 1) / 2
	return nodeList{sinks: sorted[:expected]}, nodeList{sinks: sorted[expected:]}
}

// GenerateTree builds the clock tree segment list for cn: a root
// segment at the driver, then a recursive X/Y-median subdivision of the
// sinks down to one segment per sink.
func GenerateTree(cn ClockNet) (*SegmentList, error) {
	if cn.DriverRef == nil {
		return nil, ctsErrorf("GenerateTree", ErrNoDriver)
	}
	if len(cn.Sinks) == 0 {
		return nil, ctsErrorf("GenerateTree", ErrNoSinks)
	}

	segments := &SegmentList{}
	root := segments.createSegment(cn.DriverPos, Point{}, noSegment, 0)

	recursiveSubdivision(segments, nodeList{sinks: cn.Sinks}, root, 0)

	if segments.Len() > 1 {
		segments.At(root).End = segments.At(1).Start
	}

	return segments, nil
}

func recursiveSubdivision(segments *SegmentList, nodes nodeList, topSeg SegmentIndex, level int) {
	if len(nodes.sinks) <= 1 {
		if len(nodes.sinks) == 1 {
			sink := nodes.sinks[0]
			leaf := segments.createLeafSegment(segments.At(topSeg).Start, sink.Pos, topSeg, level+1, sink)
			segments.addChild(topSeg, leaf)
		}
		return
	}

	left, right := nodes.split(axisX)

	center := nodes.mean()
	leftCoord := left.mean()
	rightCoord := right.mean()

	leftSeg := segments.createSegment(center, leftCoord, topSeg, level+1)
	rightSeg := segments.createSegment(center, rightCoord, topSeg, level+1)
	segments.addChild(topSeg, leftSeg)
	segments.addChild(topSeg, rightSeg)

	bl, tl := left.split(axisY)
	br, tr := right.split(axisY)

	subdivideQuadrant(segments, bl, leftSeg, leftCoord, level)
	subdivideQuadrant(segments, tl, leftSeg, leftCoord, level)
	subdivideQuadrant(segments, br, rightSeg, rightCoord, level)
	subdivideQuadrant(segments, tr, rightSeg, rightCoord, level)
}

// subdivideQuadrant handles one of the four bl/tl/br/tr quadrants
// produced by a center split: a single sink is wired directly as a leaf
// (matching the source's single-element short-circuit), otherwise it
// recurses.
func subdivideQuadrant(segments *SegmentList, quadrant nodeList, parentSeg SegmentIndex, parentCoord Point, level int) {
	if len(quadrant.sinks) == 0 {
		return
	}
	if len(quadrant.sinks) == 1 {
		sink := quadrant.sinks[0]
		leaf := segments.createLeafSegment(parentCoord, sink.Pos, parentSeg, level+2, sink)
		segments.addChild(parentSeg, leaf)
		return
	}
	coord := quadrant.mean()
	seg := segments.createSegment(parentCoord, coord, parentSeg, level+2)
	segments.addChild(parentSeg, seg)
	recursiveSubdivision(segments, quadrant, seg, level+2)
}
