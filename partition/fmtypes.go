package partition

// NodeID indexes into a Container's Nodes slice.
type NodeID int

// NetID indexes into a Container's Nets slice.
type NetID int

// GainType is the signed change in cut cost a node's move would cause.
type GainType int64

const noNode = NodeID(-1)

// nodeFlags packs the locked/fixed bits a Node carries, mirroring the
// source partitioner's bitfield.
type nodeFlags uint8

const (
	flagLocked nodeFlags = 1 << iota
	flagFixed
)

// Node is one movable (or fixed) unit in the partitioning problem: a
// netlist instance reduced to a weight, a partition assignment, a gain,
// and the bucket-list links used to extract the highest-gain free node
// in O(1). This package has no chipdb import of its own; package
// integrate builds a Container by projecting a chipdb.Netlist's
// instances and nets.
type Node struct {
	Nets []NetID

	PartitionID     int // 0 or 1, or -1 if not yet assigned
	BestPartitionID int
	Weight          int64
	Gain            GainType

	// Ref is an opaque caller payload (e.g. a chipdb.ObjectKey) carried
	// through so callers can map a Node back to its source instance
	// without this package depending on chipdb.
	Ref any

	// FixedPos is non-nil when the node corresponds to an instance that
	// is already placed-and-fixed; init assigns it to whichever
	// partition half is closer to this position, fixes, and locks it.
	// Left nil for ordinary movable nodes.
	FixedPos *Point

	self  NodeID
	flags nodeFlags

	// bucket list links; -1 when not linked into a bucket.
	next NodeID
	prev NodeID
}

func (n *Node) isLinked() bool { return n.next != noNode || n.prev != noNode }

// IsLocked reports whether the node is locked for the remainder of the
// current pass (already moved once).
func (n *Node) IsLocked() bool { return n.flags&flagLocked != 0 }

// IsFixed reports whether the node is permanently fixed to its
// partition (never moves, never contributes a bucket entry).
func (n *Node) IsFixed() bool { return n.flags&flagFixed != 0 }

func (n *Node) lock()   { n.flags |= flagLocked }
func (n *Node) fix()    { n.flags |= flagFixed }
func (n *Node) unlock() { n.flags &^= flagLocked }

func (n *Node) resetLinks() {
	n.next = noNode
	n.prev = noNode
}

// Net is a hyperedge over a set of Nodes, weighted for cut-cost
// accounting (e.g. a pin-net weight bonus, or a caller-assigned clock
// net bonus).
type Net struct {
	Nodes  []NodeID
	Weight int64

	// nodesInPartition[p] counts how many of this net's nodes currently
	// sit in partition p.
	nodesInPartition [2]int32
}
