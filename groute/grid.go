package groute

// CellFlags packs the per-GCell state flags the maze search and caller
// bookkeeping consult.
type CellFlags uint8

const (
	FlagBlocked CellFlags = 1 << iota
	FlagMarked
	FlagSource
	FlagTarget
	FlagReached
)

// GCell is one coarse routing cell: a capacity budget consumed by
// routed wires crossing it, and the transient flags a maze search uses
// while it runs.
type GCell struct {
	Capacity int
	Used     int

	flags CellFlags

	// bestCost and cameFrom are scratch fields reset at the start of
	// every maze search; they are not meaningful between searches.
	bestCost int
	cameFrom int
	valid    bool
}

// HasFlag reports whether f is set on this cell.
func (c *GCell) HasFlag(f CellFlags) bool { return c.flags&f != 0 }

func (c *GCell) setFlag(f CellFlags)   { c.flags |= f }
func (c *GCell) clearFlag(f CellFlags) { c.flags &^= f }

// Available reports whether the cell has any spare capacity and is not
// permanently blocked.
func (c *GCell) Available() bool {
	return !c.HasFlag(FlagBlocked) && c.Used < c.Capacity
}

// Grid is a width*height array of GCells in row-major order.
type Grid struct {
	Width, Height int
	cells         []GCell
}

// NewGrid returns a Width*Height grid with every cell given the same
// starting capacity.
func NewGrid(width, height, capacity int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, grouteErrorf("NewGrid", ErrEmptyGrid)
	}
	g := &Grid{Width: width, Height: height, cells: make([]GCell, width*height)}
	for i := range g.cells {
		g.cells[i] = GCell{Capacity: capacity, valid: true}
	}
	return g, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// At returns the cell at (x, y). ok is false for an out-of-bounds
// coordinate, mirroring the source grid's invalid-cell-on-OOB-access
// contract rather than panicking.
func (g *Grid) At(x, y int) (*GCell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[g.index(x, y)], true
}

// Block marks the cell at (x, y) permanently unroutable.
func (g *Grid) Block(x, y int) {
	if c, ok := g.At(x, y); ok {
		c.setFlag(FlagBlocked)
	}
}

// resetSearchState clears every cell's transient search flags and
// scratch fields, called once before each maze search.
func (g *Grid) resetSearchState() {
	for i := range g.cells {
		g.cells[i].flags &^= FlagMarked | FlagSource | FlagTarget | FlagReached
		g.cells[i].bestCost = 0
		g.cells[i].cameFrom = -1
	}
}

// neighborOffsets4 are the four Manhattan-adjacent grid offsets, in a
// fixed order so maze-search tie-breaking stays deterministic.
var neighborOffsets4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
