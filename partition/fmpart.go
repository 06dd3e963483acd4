package partition

import (
	"math/rand"

	"github.com/edacore/pnrcore/runctx"
)

// Options configures a partitioning run.
type Options struct {
	// Rand supplies the randomness used for the initial assignment of
	// movable nodes; callers own seeding so a run can be made
	// reproducible.
	Rand *rand.Rand

	// MaxStaleCycles is the number of consecutive non-improving cycles
	// Run tolerates before stopping. The source partitioner hardcodes 3.
	MaxStaleCycles int

	// PinNetBonus is added to a net's weight when any of its nodes is a
	// pin/boundary terminal (an instance with no movable footprint of
	// its own). The source partitioner hardcodes +4.
	PinNetBonus int64

	// ClockNetBonus is added to a net's weight when the caller marks it
	// a clock net. Left as a tunable knob (default 0): the source
	// treats clock-net weighting inconsistently, so this package makes
	// it an explicit, caller-controlled choice instead.
	ClockNetBonus int64
}

// DefaultOptions returns the package defaults, seeded with a
// caller-supplied source so runs stay reproducible.
func DefaultOptions(rng *rand.Rand) Options {
	return Options{
		Rand:           rng,
		MaxStaleCycles: 3,
		PinNetBonus:    4,
		ClockNetBonus:  0,
	}
}

// Result reports the outcome of a Run.
type Result struct {
	CutCost    int64
	CycleCosts []int64
}

// Run partitions c's nodes into two sides, minimizing weighted cut
// cost, and returns the final cost. Node.PartitionID and
// Node.BestPartitionID both hold the winning assignment on return: Run
// rolls PartitionID back to the best cycle's assignment before
// returning, even if later (non-improving) cycles moved nodes further.
//
// ctx is polled between cycles; a nil ctx never cancels. If ctx
// cancels mid-run, Run returns ErrCancelled and Result reflects the
// best cycle found before cancellation, with PartitionID already
// rolled back to match.
func Run(c *Container, opts Options, ctx *runctx.Context) (Result, error) {
	if len(c.Nodes) == 0 || len(c.Nets) == 0 {
		return Result{}, partitionErrorf("Run", ErrEmptyContainer)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.MaxStaleCycles <= 0 {
		opts.MaxStaleCycles = 3
	}

	if err := initPartitions(c, opts); err != nil {
		return Result{}, err
	}
	for i := range c.Nodes {
		c.Nodes[i].BestPartitionID = c.Nodes[i].PartitionID
	}

	var cycleCosts []int64
	minCost := int64(1<<63 - 1)
	staleCycles := 0
	cancelled := false
	for staleCycles < opts.MaxStaleCycles {
		if ctx.Cancelled() {
			cancelled = true
			break
		}
		cost := runCycle(c, opts)
		cycleCosts = append(cycleCosts, cost)
		ctx.Log("partition: cycle %d cost=%d", len(cycleCosts), cost)
		if cost < minCost {
			minCost = cost
			staleCycles = 0
			for i := range c.Nodes {
				c.Nodes[i].BestPartitionID = c.Nodes[i].PartitionID
			}
		} else {
			staleCycles++
		}
	}

	for i := range c.Nodes {
		c.Nodes[i].PartitionID = c.Nodes[i].BestPartitionID
	}
	for i := range c.Nets {
		net := &c.Nets[i]
		net.nodesInPartition[0], net.nodesInPartition[1] = 0, 0
		for _, nodeID := range net.Nodes {
			net.nodesInPartition[c.Nodes[nodeID].PartitionID]++
		}
	}

	result := Result{CutCost: minCost, CycleCosts: cycleCosts}
	if cancelled {
		return result, partitionErrorf("Run", ErrCancelled)
	}
	return result, nil
}

// initPartitions cuts the region along its longer axis, fixes each
// fixed node to whichever half is closer to its position, assigns
// movable nodes a random side, tallies nodesInPartition, and seeds
// the gain buckets.
func initPartitions(c *Container, opts Options) error {
	left, right := c.Region, c.Region
	if c.Region.width() >= c.Region.height() {
		cut := c.Region.MinX + c.Region.width()/2
		left.MaxX = cut
		right.MinX = cut
	} else {
		cut := c.Region.MinY + c.Region.height()/2
		left.MaxY = cut
		right.MinY = cut
	}
	c.partitions[0].Region = left
	c.partitions[1].Region = right
	c.partitions[0].totalWeight = 0
	c.partitions[1].totalWeight = 0

	for i := range c.Nodes {
		node := &c.Nodes[i]
		if node.FixedPos != nil {
			d0 := distanceToRegion(left, *node.FixedPos)
			d1 := distanceToRegion(right, *node.FixedPos)
			if d0 < d1 {
				node.PartitionID = 0
			} else {
				node.PartitionID = 1
			}
			node.fix()
			node.lock()
			continue
		}
		if opts.Rand.Intn(2) == 1 {
			node.PartitionID = 1
		} else {
			node.PartitionID = 0
		}
	}

	for i := range c.Nets {
		net := &c.Nets[i]
		net.nodesInPartition[0] = 0
		net.nodesInPartition[1] = 0
		for _, nodeID := range net.Nodes {
			if int(nodeID) < 0 || int(nodeID) >= len(c.Nodes) {
				return partitionErrorf("Run", ErrInvalidNodeRef)
			}
			p := c.Nodes[nodeID].PartitionID
			net.nodesInPartition[p]++
		}
	}

	for i := range c.Nodes {
		c.partitions[c.Nodes[i].PartitionID].totalWeight += c.Nodes[i].Weight
	}

	for i := range c.Nodes {
		calcAndSetNodeGain(c, NodeID(i))
	}
	for i := range c.Nodes {
		if !c.Nodes[i].IsFixed() {
			c.addNodeToBucket(NodeID(i))
		}
	}
	return nil
}

// distanceToRegion is the Manhattan distance from pos to the nearest
// point of r, 0 if pos lies inside r.
func distanceToRegion(r Region, pos Point) int64 {
	dx := maxI64(r.MinX-pos.X, 0)
	dx = maxI64(dx, pos.X-r.MaxX)
	dy := maxI64(r.MinY-pos.Y, 0)
	dy = maxI64(dy, pos.Y-r.MaxY)
	return dx + dy
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func calcAndSetNodeGain(c *Container, id NodeID) {
	node := &c.Nodes[id]
	node.Gain = 0
	if node.IsLocked() || node.IsFixed() {
		return
	}

	from, to := 0, 1
	if node.PartitionID == 1 {
		from, to = 1, 0
	}

	for _, netID := range node.Nets {
		net := &c.Nets[netID]
		if net.nodesInPartition[from] == 1 {
			node.Gain += GainType(net.Weight)
		}
		if net.nodesInPartition[to] == 0 {
			node.Gain -= GainType(net.Weight)
		}
	}
}

// freeListEntry records one node's move and the cumulative gain of the
// pass up to and including that move, so runCycle can rewind to the
// best-scoring prefix.
type freeListEntry struct {
	node        NodeID
	totalGain   GainType
}

// runCycle performs one full FM pass: repeatedly moves the highest-gain
// free node from the heavier partition, locking it, until both
// partitions' buckets are exhausted; then rewinds to the prefix with
// the best cumulative gain and recomputes gains for the next pass.
func runCycle(c *Container, opts Options) int64 {
	var freeList []freeListEntry
	var totalGain GainType

	for {
		side := 0
		if c.partitions[1].totalWeight > c.partitions[0].totalWeight {
			side = 1
		}
		nodeID := c.popHighestGain(side)
		if nodeID == noNode {
			nodeID = c.popHighestGain(1 - side)
		}
		if nodeID == noNode {
			break
		}
		from := c.Nodes[nodeID].PartitionID
		c.partitions[from].totalWeight -= c.Nodes[nodeID].Weight
		c.partitions[1-from].totalWeight += c.Nodes[nodeID].Weight
		totalGain += c.Nodes[nodeID].Gain
		freeList = append(freeList, freeListEntry{node: nodeID, totalGain: totalGain})
		moveNodeAndUpdateNeighbours(c, nodeID)
	}

	bestIdx := -1
	var bestGain GainType
	for i, entry := range freeList {
		if entry.totalGain > bestGain {
			bestGain = entry.totalGain
			bestIdx = i
		}
	}

	for i := bestIdx + 1; i < len(freeList); i++ {
		node := &c.Nodes[freeList[i].node]
		from, to := 0, 1
		if node.PartitionID == 0 {
			from, to = 0, 1
		} else {
			from, to = 1, 0
		}
		node.PartitionID = to
		for _, netID := range node.Nets {
			net := &c.Nets[netID]
			net.nodesInPartition[from]--
			net.nodesInPartition[to]++
		}
	}

	for _, entry := range freeList {
		node := &c.Nodes[entry.node]
		if node.IsFixed() {
			node.lock()
		} else {
			node.unlock()
		}
		calcAndSetNodeGain(c, entry.node)
		if !node.IsFixed() {
			c.addNodeToBucket(entry.node)
		}
	}

	c.partitions[0].totalWeight, c.partitions[1].totalWeight = 0, 0
	for i := range c.Nodes {
		c.partitions[c.Nodes[i].PartitionID].totalWeight += c.Nodes[i].Weight
	}

	return CutCost(c)
}

// moveNodeAndUpdateNeighbours moves nodeID to its other partition,
// locks it, and applies the FM incremental gain update to every
// neighbour reachable through nodeID's nets, re-bucketing each as its
// gain changes.
func moveNodeAndUpdateNeighbours(c *Container, nodeID NodeID) {
	node := &c.Nodes[nodeID]
	from, to := 0, 1
	if node.PartitionID == 1 {
		from, to = 1, 0
	}
	node.lock()
	node.PartitionID = to

	for _, netID := range node.Nets {
		net := &c.Nets[netID]

		if net.nodesInPartition[to] == 0 {
			for _, nb := range net.Nodes {
				if !c.Nodes[nb].IsLocked() {
					c.removeNodeFromBucket(nb)
					c.Nodes[nb].Gain += GainType(net.Weight)
					c.addNodeToBucket(nb)
				}
			}
		} else if net.nodesInPartition[to] == 1 {
			for _, nb := range net.Nodes {
				if c.Nodes[nb].PartitionID == to && !c.Nodes[nb].IsLocked() {
					c.removeNodeFromBucket(nb)
					c.Nodes[nb].Gain -= GainType(net.Weight)
					c.addNodeToBucket(nb)
				}
			}
		}

		net.nodesInPartition[to]++
		net.nodesInPartition[from]--

		if net.nodesInPartition[from] == 0 {
			for _, nb := range net.Nodes {
				if !c.Nodes[nb].IsLocked() {
					c.removeNodeFromBucket(nb)
					c.Nodes[nb].Gain -= GainType(net.Weight)
					c.addNodeToBucket(nb)
				}
			}
		} else if net.nodesInPartition[from] == 1 {
			for _, nb := range net.Nodes {
				if c.Nodes[nb].PartitionID == from && !c.Nodes[nb].IsLocked() {
					c.removeNodeFromBucket(nb)
					c.Nodes[nb].Gain += GainType(net.Weight)
					c.addNodeToBucket(nb)
				}
			}
		}
	}
}

// CutCost returns the weighted number of net crossings in c's current
// partition assignment: for each net, its weight times the smaller of
// its two per-side node counts.
func CutCost(c *Container) int64 {
	var cost int64
	for i := range c.Nets {
		net := &c.Nets[i]
		n0, n1 := int64(net.nodesInPartition[0]), int64(net.nodesInPartition[1])
		if n0 < n1 {
			cost += net.Weight * n0
		} else {
			cost += net.Weight * n1
		}
	}
	return cost
}
