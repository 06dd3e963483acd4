package cts

// Point is an integer nanometer position. Kept local to this package;
// package integrate converts to/from chipdb.Coord at the boundary and
// applies buffer-insertion results back onto a chipdb.Netlist.
type Point struct{ X, Y int64 }

// Sink is one clock net connection this package must route to: an
// opaque reference back to the caller's (instance, pin) pair, its
// placed position, and its pin's input capacitance.
type Sink struct {
	Ref         any
	Pos         Point
	Capacitance float64
}

// ClockNet is the input to GenerateTree: a clock net's driver and its
// sinks, already resolved and placement-checked by the caller.
type ClockNet struct {
	DriverRef any
	DriverPos Point
	Sinks     []Sink
}

// SegmentIndex indexes into a SegmentList.
type SegmentIndex int

const noSegment = SegmentIndex(-1)

// Segment is one edge of the clock tree: a wire from Start to End, with
// up to two children continuing from End, or (if it has no children) a
// terminal Sink it delivers to.
type Segment struct {
	Start, End Point
	Parent     SegmentIndex
	Level      int
	Children   []SegmentIndex

	// Terminal is non-nil when this segment ends at a sink rather than
	// branching further.
	Terminal *Sink
}

// HasSink reports whether this segment is a leaf terminating at a sink.
func (s *Segment) HasSink() bool { return s.Terminal != nil }

// SegmentList is the flat backing store for a clock tree: segments
// reference each other by index, never by pointer, so the tree survives
// slice growth.
type SegmentList struct {
	segments []Segment
}

// At returns a pointer to the segment at idx.
func (l *SegmentList) At(idx SegmentIndex) *Segment { return &l.segments[idx] }

// Len returns the number of segments.
func (l *SegmentList) Len() int { return len(l.segments) }

func (l *SegmentList) createSegment(start, end Point, parent SegmentIndex, level int) SegmentIndex {
	l.segments = append(l.segments, Segment{Start: start, End: end, Parent: parent, Level: level, Children: nil})
	return SegmentIndex(len(l.segments) - 1)
}

func (l *SegmentList) createLeafSegment(start, end Point, parent SegmentIndex, level int, sink Sink) SegmentIndex {
	idx := l.createSegment(start, end, parent, level)
	s := sink
	l.segments[idx].Terminal = &s
	return idx
}

func (l *SegmentList) addChild(parent, child SegmentIndex) {
	l.segments[parent].Children = append(l.segments[parent].Children, child)
}
