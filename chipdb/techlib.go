package chipdb

// RoutingDirection is the preferred wiring direction of a routing layer.
type RoutingDirection int

const (
	DirectionNone RoutingDirection = iota
	DirectionHorizontal
	DirectionVertical
)

// LayerType classifies a technology layer.
type LayerType int

const (
	LayerCut LayerType = iota
	LayerRouting
	LayerMasterslice
	LayerOther
)

// LayerInfo describes one technology layer (routing or cut).
type LayerInfo struct {
	Name      string
	Direction RoutingDirection
	Type      LayerType

	// PitchX, PitchY are the routing grid pitch in nm.
	PitchX int64
	PitchY int64

	// OffsetX, OffsetY are the grid origin offset in nm.
	OffsetX int64
	OffsetY int64

	MinWidth   int64
	MaxWidth   int64
	MinSpacing int64
	MinArea    int64 // nm^2

	Resistance  float64 // Ohm/square
	Capacitance float64 // F/um^2
}

// GetName implements Named.
func (l *LayerInfo) GetName() string { return l.Name }

// SiteSymmetry flags the symmetries a site supports.
type SiteSymmetry struct {
	X   bool
	Y   bool
	R90 bool
}

// SiteClass classifies a placement site.
type SiteClass int

const (
	SiteCore SiteClass = iota
	SitePad
	SiteOther
)

// SiteInfo describes one placement site definition.
type SiteInfo struct {
	Name      string
	Width     int64
	Height    int64
	Symmetry  SiteSymmetry
	Class     SiteClass
}

// GetName implements Named.
func (s *SiteInfo) GetName() string { return s.Name }
