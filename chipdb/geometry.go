package chipdb

// Coord is an integer-nanometer 2D point or vector.
type Coord struct {
	X int64
	Y int64
}

// Add returns c+other.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns c-other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Manhattan returns the L1 distance between c and other.
func (c Coord) Manhattan(other Coord) int64 {
	return abs64(c.X-other.X) + abs64(c.Y-other.Y)
}

// Rotate90 rotates c by 90 degrees counter-clockwise around the origin.
func (c Coord) Rotate90() Coord {
	return Coord{X: -c.Y, Y: c.X}
}

// Rotate180 rotates c by 180 degrees around the origin.
func (c Coord) Rotate180() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Rotate270 rotates c by 270 degrees counter-clockwise (= 90 clockwise)
// around the origin.
func (c Coord) Rotate270() Coord {
	return Coord{X: c.Y, Y: -c.X}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Margins holds per-side nanometer margins (e.g. floorplan IO margins or
// a region's halo).
type Margins struct {
	Top    int64
	Bottom int64
	Left   int64
	Right  int64
}

// Rect is an axis-aligned rectangle defined by its lower-left and
// upper-right corners. LL must be component-wise ≤ UR for Rect to be
// well-formed; constructors here do not enforce this, callers do (most
// rects in this package are derived from a width/height that is always
// non-negative at the call site).
type Rect struct {
	LL Coord
	UR Coord
}

// NewRect builds a Rect from a lower-left corner and a width/height.
func NewRect(ll Coord, width, height int64) Rect {
	return Rect{LL: ll, UR: Coord{X: ll.X + width, Y: ll.Y + height}}
}

// Width returns ur.x - ll.x.
func (r Rect) Width() int64 { return r.UR.X - r.LL.X }

// Height returns ur.y - ll.y.
func (r Rect) Height() int64 { return r.UR.Y - r.LL.Y }

// Area returns width*height as a float64 in nm^2 (callers convert to
// µm^2 where that unit is required).
func (r Rect) Area() float64 {
	return float64(r.Width()) * float64(r.Height())
}

// Center returns the rectangle's center point (integer-truncated).
func (r Rect) Center() Coord {
	return Coord{X: (r.LL.X + r.UR.X) / 2, Y: (r.LL.Y + r.UR.Y) / 2}
}

// Translate returns r shifted by delta.
func (r Rect) Translate(delta Coord) Rect {
	return Rect{LL: r.LL.Add(delta), UR: r.UR.Add(delta)}
}

// Expand returns r grown outward by the given margins on each side.
func (r Rect) Expand(m Margins) Rect {
	return Rect{
		LL: Coord{X: r.LL.X - m.Left, Y: r.LL.Y - m.Bottom},
		UR: Coord{X: r.UR.X + m.Right, Y: r.UR.Y + m.Top},
	}
}

// Contains reports whether other lies entirely within r (inclusive).
func (r Rect) Contains(other Rect) bool {
	return other.LL.X >= r.LL.X && other.LL.Y >= r.LL.Y &&
		other.UR.X <= r.UR.X && other.UR.Y <= r.UR.Y
}

// ContainsPoint reports whether p lies within r (inclusive).
func (r Rect) ContainsPoint(p Coord) bool {
	return p.X >= r.LL.X && p.X <= r.UR.X && p.Y >= r.LL.Y && p.Y <= r.UR.Y
}

// Intersect returns the overlapping rectangle of r and other, if any.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	ll := Coord{X: max64(r.LL.X, other.LL.X), Y: max64(r.LL.Y, other.LL.Y)}
	ur := Coord{X: min64(r.UR.X, other.UR.X), Y: min64(r.UR.Y, other.UR.Y)}
	if ll.X >= ur.X || ll.Y >= ur.Y {
		return Rect{}, false
	}
	return Rect{LL: ll, UR: ur}, true
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
