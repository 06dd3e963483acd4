package placer

// NodeID indexes into a Netlist's Nodes slice.
type NodeID int

// NetID indexes into a Netlist's Nets slice.
type NetID int

// Point is an integer nanometer position. The math in this package
// stays chipdb-free so B2B/legalization can be tested in isolation;
// package integrate converts to/from chipdb.Coord at the boundary and
// writes solved positions back onto chipdb.Instance.
type Point struct{ X, Y int64 }

// Size is an integer nanometer width/height pair.
type Size struct{ W, H int64 }

// NodeKind distinguishes movable placer nodes from fixed ones.
type NodeKind int

const (
	Movable NodeKind = iota
	Fixed
)

// Node is one placeable unit: a netlist instance's footprint and
// current position, reduced to what the B2B spring assembly and
// legalizer need.
type Node struct {
	Kind   NodeKind
	Pos    Point
	Size   Size
	Weight float64

	// Ref is an opaque caller payload (e.g. a chipdb.ObjectKey),
	// carried through so callers can map a placed Node back to its
	// source instance.
	Ref any
}

// IsFixed reports whether this node's position is an input rather than
// an unknown to solve for.
func (n *Node) IsFixed() bool { return n.Kind == Fixed }

// Net is a placer net: the set of node indices it connects, with a
// weight applied uniformly to every spring derived from it.
type Net struct {
	Nodes  []NodeID
	Weight float64
}

// Netlist is the placer's working graph: nodes with positions, and the
// nets connecting them. It is entirely decoupled from chipdb so the
// B2B/legalization math can be tested without a full chip database;
// package integrate projects a chipdb.Netlist into one and writes
// solved positions back.
type Netlist struct {
	Nodes []Node
	Nets  []Net
}

// NewNetlist returns an empty Netlist.
func NewNetlist() *Netlist {
	return &Netlist{}
}

// AddNode appends a node and returns its id.
func (nl *Netlist) AddNode(n Node) NodeID {
	nl.Nodes = append(nl.Nodes, n)
	return NodeID(len(nl.Nodes) - 1)
}

// AddNet appends a net and returns its id.
func (nl *Netlist) AddNet(n Net) NetID {
	nl.Nets = append(nl.Nets, n)
	return NetID(len(nl.Nets) - 1)
}
