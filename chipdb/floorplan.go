package chipdb

// Row is one placement row within a Region: a site-height strip of
// fixed width, aligned to the owning Region's site.
type Row struct {
	Name   string
	Rect   Rect
	Region ObjectKey // ObjectKeyNotFound once added via Region.AddRow
}

// GetName implements Named.
func (r *Row) GetName() string { return r.Name }

// Region is a named placement area within the floorplan: a Rect, an
// optional halo margin reserved around it, a reference to the site
// definition its Rows are built from, and the ordered Rows themselves.
type Region struct {
	Name    string
	Extents Rect
	Halo    Margins
	Site    ObjectKey // SiteInfo key

	Rows []*Row
}

// GetName implements Named.
func (r *Region) GetName() string { return r.Name }

// AddRow appends a row to the region, in row order (bottom to top, by
// convention; the type does not enforce ordering, callers building from
// a die scan do). It sets row.Region to ObjectKeyNotFound: a Region does
// not hold its own container key.
func (r *Region) AddRow(row *Row) {
	row.Region = ObjectKeyNotFound
	r.Rows = append(r.Rows, row)
}

// HaloedExtents returns the region's extents grown by its halo.
func (r *Region) HaloedExtents() Rect {
	return r.Extents.Expand(r.Halo)
}

// Floorplan is the chip-level physical envelope: the die outline, IO
// keepout margins, and the set of placement Regions carved out of the
// resulting core area.
type Floorplan struct {
	DieSize  Coord // die rect is always (0,0)-DieSize
	IOMargin Margins

	Regions *Container[*Region]

	coreRect    Rect
	coreCached  bool
}

// NewFloorplan returns a Floorplan with the given die size and IO
// keepout margins. Regions must be added via f.Regions.Add.
func NewFloorplan(dieSize Coord, ioMargin Margins) *Floorplan {
	f := &Floorplan{
		DieSize:  dieSize,
		IOMargin: ioMargin,
		Regions:  NewContainer[*Region](),
	}
	f.Regions.AddListener(ListenerFunc(func(ObjectKey, ChangeKind) {
		f.coreCached = false
	}))
	return f
}

// DieRect returns the full die outline, (0,0) to DieSize.
func (f *Floorplan) DieRect() Rect {
	return Rect{LL: Coord{}, UR: f.DieSize}
}

// CoreRect returns the die outline shrunk by the IO margins. The result
// is cached and recomputed lazily; the cache is invalidated whenever a
// Region is added or removed (DieSize/IOMargin are immutable after
// construction, so nothing else can change the result).
func (f *Floorplan) CoreRect() Rect {
	if !f.coreCached {
		f.coreRect = f.DieRect().Expand(Margins{
			Top:    -f.IOMargin.Top,
			Bottom: -f.IOMargin.Bottom,
			Left:   -f.IOMargin.Left,
			Right:  -f.IOMargin.Right,
		})
		f.coreCached = true
	}
	return f.coreRect
}
