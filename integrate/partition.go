package integrate

import (
	"github.com/edacore/pnrcore/chipdb"
	"github.com/edacore/pnrcore/partition"
)

// regionFromRect converts a chipdb.Rect into a partition.Region in the
// same nanometer coordinate space.
func regionFromRect(r chipdb.Rect) partition.Region {
	return partition.Region{MinX: r.LL.X, MinY: r.LL.Y, MaxX: r.UR.X, MaxY: r.UR.Y}
}

// ProjectPartitionContainer builds a partition.Container from nl's
// instances and nets within region: every non-Ignore instance becomes a
// node, weighted by its archetype cell's x-size (1 for an archetype
// with no geometry of its own, e.g. a module-level pin proxy) and given
// a FixedPos if its status is Placed or PlacedAndFixed; every net with
// two or more distinct connected nodes becomes a partition net.
//
// A net's weight gets opts.PinNetBonus added if any connected instance
// is ArchetypeAbstract (this package's stand-in for a module-level pin
// proxy, the one instance kind with no cell geometry of its own) and
// opts.ClockNetBonus added if chipdb marked it a clock net. partition
// itself has no chipdb import to recognize either case, so the bonus
// is applied here, at the projection boundary, using opts as a shared
// weighting config between this function and partition.Run.
//
// This is a two-pass projection: partition.NewContainer requires exact
// node/net counts up front, so degenerate nets (fewer than two distinct
// connected nodes) must be counted out before the container is sized.
func ProjectPartitionContainer(nl *chipdb.Netlist, cellLib *chipdb.Container[*chipdb.Cell], region chipdb.Rect, opts partition.Options) (*partition.Container, []chipdb.ObjectKey, error) {
	instKeys := sortedKeys(nl.Instances)

	refs := make([]chipdb.ObjectKey, 0, len(instKeys))
	nodeIndex := make(map[chipdb.ObjectKey]partition.NodeID, len(instKeys))
	for _, instKey := range instKeys {
		inst, _ := nl.Instances.Lookup(instKey)
		if inst.Status == chipdb.Ignore {
			continue
		}
		nodeIndex[instKey] = partition.NodeID(len(refs))
		refs = append(refs, instKey)
	}
	if len(refs) == 0 {
		return nil, nil, integrateErrorf("ProjectPartitionContainer", ErrNoInstances)
	}

	type filteredNet struct {
		net   *chipdb.Net
		nodes []partition.NodeID
	}
	var filtered []filteredNet
	for _, netKey := range sortedKeys(nl.Nets) {
		net, _ := nl.Nets.Lookup(netKey)
		nodes := distinctPartitionNodes(net, nodeIndex)
		if len(nodes) < 2 {
			continue
		}
		filtered = append(filtered, filteredNet{net: net, nodes: nodes})
	}

	c := partition.NewContainer(len(refs), len(filtered), regionFromRect(region))

	for i, instKey := range refs {
		inst, _ := nl.Instances.Lookup(instKey)
		c.Nodes[i].Ref = instKey
		c.Nodes[i].Weight = instanceXSize(inst, cellLib)
		if inst.Status == chipdb.Placed || inst.Status == chipdb.PlacedAndFixed {
			pos := partition.Point{X: inst.Position.X, Y: inst.Position.Y}
			c.Nodes[i].FixedPos = &pos
		}
	}

	for ni, fn := range filtered {
		weight := int64(fn.net.Weight)
		if netTouchesAbstractInstance(nl, fn.net) {
			weight += opts.PinNetBonus
		}
		if fn.net.IsClockNet {
			weight += opts.ClockNetBonus
		}
		c.Nets[ni].Nodes = fn.nodes
		c.Nets[ni].Weight = weight
		for _, nodeID := range fn.nodes {
			c.Nodes[nodeID].Nets = append(c.Nodes[nodeID].Nets, partition.NetID(ni))
		}
	}

	return c, refs, nil
}

func distinctPartitionNodes(net *chipdb.Net, nodeIndex map[chipdb.ObjectKey]partition.NodeID) []partition.NodeID {
	var nodes []partition.NodeID
	seen := make(map[partition.NodeID]bool)
	for i := 0; i < net.NumConnections(); i++ {
		instKey, _, _ := net.Connection(i)
		id, ok := nodeIndex[instKey]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		nodes = append(nodes, id)
	}
	return nodes
}

// netTouchesAbstractInstance reports whether any of net's connected
// instances is ArchetypeAbstract.
func netTouchesAbstractInstance(nl *chipdb.Netlist, net *chipdb.Net) bool {
	for i := 0; i < net.NumConnections(); i++ {
		instKey, _, _ := net.Connection(i)
		inst, ok := nl.Instances.Lookup(instKey)
		if ok && inst.Archetype == chipdb.ArchetypeAbstract {
			return true
		}
	}
	return false
}

// instanceXSize returns inst's archetype cell width, the FM weight the
// source partitioner uses, or 1 for an archetype with no geometry of
// its own (ArchetypeAbstract, or a CellKey that fails to resolve).
func instanceXSize(inst *chipdb.Instance, cellLib *chipdb.Container[*chipdb.Cell]) int64 {
	if inst.Archetype != chipdb.ArchetypeCell {
		return 1
	}
	cell, ok := cellLib.Lookup(inst.CellKey)
	if !ok || cell.SizeX <= 0 {
		return 1
	}
	return cell.SizeX
}
