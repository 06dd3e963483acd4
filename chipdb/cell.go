package chipdb

// PinIOType classifies a cell pin's electrical direction.
type PinIOType int

const (
	PinInput PinIOType = iota
	PinOutput
	PinInOut
	PinPower
	PinGround
)

// PinGeometry is one pin shape on one layer: either a rectangle or, for
// non-rectangular pin shapes, a polygon (stored as an ordered vertex
// list). Exactly one of Rect/Polygon is meaningful, selected by
// IsPolygon.
type PinGeometry struct {
	Layer     string
	IsPolygon bool
	Rect      Rect
	Polygon   []Coord
}

// PinInfo describes one pin on a Cell archetype. Pin index is stable for
// the lifetime of the owning Cell: PinInfo entries are appended in
// load order and never reordered or removed individually.
type PinInfo struct {
	Name string

	IOType PinIOType
	Clock  bool

	CapacitanceIn float64 // F
	MaxCap        float64 // F
	MaxFanout     int

	Function string // boolean function string, e.g. "(A&B)|C"

	Geometry []PinGeometry
}

// IsOutput reports whether this pin can drive a net.
func (p *PinInfo) IsOutput() bool { return p.IOType == PinOutput || p.IOType == PinInOut }

// IsInput reports whether this pin can sink a net.
func (p *PinInfo) IsInput() bool { return p.IOType == PinInput || p.IOType == PinInOut }

// CellClass is the coarse placement class of a Cell.
type CellClass int

const (
	CellCore CellClass = iota
	CellPad
	CellEndcap
)

// CellSubclass refines CellClass for cells with special placement rules.
type CellSubclass int

const (
	SubclassNone CellSubclass = iota
	SubclassSpacer
	SubclassFeedthrough
	SubclassTieHigh
	SubclassTieLow
	SubclassWellTap
	SubclassAntenna
)

// Obstruction is a per-layer blockage rectangle within a Cell's bounding
// box (metal that routing must avoid).
type Obstruction struct {
	Layer string
	Rect  Rect
}

// pinTable is the ordered-pin-list-with-stable-index behavior shared by
// Cell and Module archetypes (instances mirror the i-th pin of whichever
// archetype they reference).
type pinTable struct {
	Pins           []PinInfo
	pinIndexByName map[string]int
}

// AddPin appends a pin, keeping the name→index map current. Returns
// ErrDuplicateName if a pin of that name already exists.
func (t *pinTable) AddPin(pin PinInfo) (int, error) {
	if t.pinIndexByName == nil {
		t.pinIndexByName = make(map[string]int)
	}
	if _, exists := t.pinIndexByName[pin.Name]; exists {
		return -1, ErrDuplicateName
	}
	idx := len(t.Pins)
	t.Pins = append(t.Pins, pin)
	t.pinIndexByName[pin.Name] = idx
	return idx, nil
}

// PinByName resolves a pin by name. Complexity: amortized O(1).
func (t *pinTable) PinByName(name string) (int, *PinInfo, bool) {
	if t.pinIndexByName == nil {
		return -1, nil, false
	}
	idx, ok := t.pinIndexByName[name]
	if !ok {
		return -1, nil, false
	}
	return idx, &t.Pins[idx], true
}

// PinByIndex resolves a pin by its stable index.
func (t *pinTable) PinByIndex(idx int) (*PinInfo, bool) {
	if idx < 0 || idx >= len(t.Pins) {
		return nil, false
	}
	return &t.Pins[idx], true
}

// NumPins returns the number of pins on this archetype.
func (t *pinTable) NumPins() int { return len(t.Pins) }

// Cell is a standard-cell library archetype: fixed geometry, an ordered
// pin list, and the metadata the placer/CTS/router passes consume.
type Cell struct {
	pinTable

	Name string

	SizeX int64
	SizeY int64

	OriginOffset Coord
	SiteName     string
	Symmetry     SiteSymmetry
	Class        CellClass
	Subclass     CellSubclass

	AreaUM2      float64
	LeakagePower float64 // W

	Obstructions []Obstruction
}

// GetName implements Named.
func (c *Cell) GetName() string { return c.Name }
