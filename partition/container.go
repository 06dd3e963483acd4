package partition

// Region is an axis-aligned partitioning region in the same nanometer
// coordinate space as the placer/floorplan. Kept local to this package;
// package integrate converts from chipdb.Rect at the boundary.
type Region struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

func (r Region) width() int64  { return r.MaxX - r.MinX }
func (r Region) height() int64 { return r.MaxY - r.MinY }

// Point is a 2D integer position, kept local for the same reason as
// Region.
type Point struct{ X, Y int64 }

// partitionState is the per-side bucket set and running weight for one
// of the two partitions.
type partitionState struct {
	Region       Region
	totalWeight  int64
	bucketHeads  map[GainType]NodeID
	maxGainSeen  GainType
	minGainSeen  GainType
}

func newPartitionState() *partitionState {
	return &partitionState{bucketHeads: make(map[GainType]NodeID)}
}

// Container holds the full FM problem instance: all nodes, all nets,
// and the two partitions' bucket state.
type Container struct {
	Nodes []Node
	Nets  []Net

	Region Region

	partitions [2]*partitionState
}

// NewContainer returns an empty Container sized for the given node and
// net counts. Callers populate Nodes/Nets (including each Node's Nets
// list and each Net's Nodes list) before calling Run.
func NewContainer(numNodes, numNets int, region Region) *Container {
	c := &Container{
		Nodes:  make([]Node, numNodes),
		Nets:   make([]Net, numNets),
		Region: region,
	}
	for i := range c.Nodes {
		c.Nodes[i].self = NodeID(i)
		c.Nodes[i].PartitionID = -1
		c.Nodes[i].resetLinks()
	}
	c.partitions[0] = newPartitionState()
	c.partitions[1] = newPartitionState()
	return c
}

func (c *Container) addNodeToBucket(id NodeID) {
	node := &c.Nodes[id]
	p := c.partitions[node.PartitionID]
	empty := len(p.bucketHeads) == 0
	head, exists := p.bucketHeads[node.Gain]
	node.next = noNode
	node.prev = noNode
	if exists {
		c.Nodes[head].prev = id
		node.next = head
	}
	p.bucketHeads[node.Gain] = id
	if empty || node.Gain > p.maxGainSeen {
		p.maxGainSeen = node.Gain
	}
	if empty || node.Gain < p.minGainSeen {
		p.minGainSeen = node.Gain
	}
}

func (c *Container) removeNodeFromBucket(id NodeID) {
	node := &c.Nodes[id]
	if !node.isLinked() {
		p := c.partitions[node.PartitionID]
		if head, ok := p.bucketHeads[node.Gain]; ok && head == id {
			delete(p.bucketHeads, node.Gain)
		}
		return
	}
	p := c.partitions[node.PartitionID]
	if node.prev != noNode {
		c.Nodes[node.prev].next = node.next
	} else {
		if node.next != noNode {
			p.bucketHeads[node.Gain] = node.next
		} else {
			delete(p.bucketHeads, node.Gain)
		}
	}
	if node.next != noNode {
		c.Nodes[node.next].prev = node.prev
	}
	node.resetLinks()
}

// popHighestGain removes and returns the highest-gain free node in
// partition p, or noNode if the partition's bucket set is empty.
// maxGainSeen and minGainSeen bound every populated gain level, so the
// scan walks down from maxGainSeen to the first populated level; its
// cost is the distance between the two.
func (c *Container) popHighestGain(p int) NodeID {
	part := c.partitions[p]
	for gain := part.maxGainSeen; gain >= part.minGainSeen; gain-- {
		if head, ok := part.bucketHeads[gain]; ok {
			part.maxGainSeen = gain
			c.removeNodeFromBucket(head)
			return head
		}
	}
	return noNode
}
