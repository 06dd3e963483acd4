package integrate

import (
	"github.com/edacore/pnrcore/chipdb"
	"github.com/edacore/pnrcore/placer"
)

// ProjectPlacerNetlist builds a placer.Netlist from nl: every instance
// that is not Ignore becomes a node (Fixed if its status is
// PlacedAndFixed, Movable otherwise), sized from its archetype cell in
// cellLib; every net with two or more distinct connected nodes becomes
// a placer net (degenerate nets are skipped per §4.D Stage 1). The
// returned slice maps each placer.NodeID back to the chipdb.ObjectKey
// it was projected from, for WriteBackPositions.
func ProjectPlacerNetlist(nl *chipdb.Netlist, cellLib *chipdb.Container[*chipdb.Cell]) (*placer.Netlist, []chipdb.ObjectKey, error) {
	instKeys := sortedKeys(nl.Instances)

	pnl := placer.NewNetlist()
	refs := make([]chipdb.ObjectKey, 0, len(instKeys))
	nodeIndex := make(map[chipdb.ObjectKey]placer.NodeID, len(instKeys))

	for _, instKey := range instKeys {
		inst, _ := nl.Instances.Lookup(instKey)
		if inst.Status == chipdb.Ignore {
			continue
		}

		size := placer.Size{}
		if inst.Archetype == chipdb.ArchetypeCell {
			cell, ok := cellLib.Lookup(inst.CellKey)
			if !ok {
				return nil, nil, integrateErrorf("ProjectPlacerNetlist", ErrUnknownArchetype)
			}
			size = placer.Size{W: cell.SizeX, H: cell.SizeY}
		}

		kind := placer.Movable
		if inst.Status == chipdb.PlacedAndFixed {
			kind = placer.Fixed
		}

		weight := float64(size.W)
		if weight <= 0 {
			weight = 1
		}

		id := pnl.AddNode(placer.Node{
			Kind:   kind,
			Pos:    placer.Point{X: inst.Position.X, Y: inst.Position.Y},
			Size:   size,
			Weight: weight,
			Ref:    instKey,
		})
		nodeIndex[instKey] = id
		refs = append(refs, instKey)
	}
	if len(refs) == 0 {
		return nil, nil, integrateErrorf("ProjectPlacerNetlist", ErrNoInstances)
	}

	for _, netKey := range sortedKeys(nl.Nets) {
		net, _ := nl.Nets.Lookup(netKey)
		nodes := distinctConnectedNodes(net, nodeIndex)
		if len(nodes) < 2 {
			continue
		}
		pnl.AddNet(placer.Net{Nodes: nodes, Weight: net.Weight})
	}

	return pnl, refs, nil
}

// distinctConnectedNodes returns the distinct placer node ids net's
// connections reach, in first-occurrence order (net.connections is a
// plain slice, so this order is already deterministic without sorting).
func distinctConnectedNodes(net *chipdb.Net, nodeIndex map[chipdb.ObjectKey]placer.NodeID) []placer.NodeID {
	var nodes []placer.NodeID
	seen := make(map[placer.NodeID]bool)
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

// WriteBackPositions applies pnl's solved positions onto nl: every
// movable node's position is copied onto its originating Instance and
// the instance is marked Placed. refs must be the slice
// ProjectPlacerNetlist returned alongside pnl. Fixed nodes are left
// untouched (their position was the input, not an output).
func WriteBackPositions(nl *chipdb.Netlist, pnl *placer.Netlist, refs []chipdb.ObjectKey) error {
	for i, node := range pnl.Nodes {
		if node.IsFixed() {
			continue
		}
		instKey := refs[i]
		inst, ok := nl.Instances.Lookup(instKey)
		if !ok {
			return integrateErrorf("WriteBackPositions", ErrUnresolvedRef)
		}
		inst.Position = chipdb.Coord{X: node.Pos.X, Y: node.Pos.Y}
		inst.Status = chipdb.Placed
		nl.Instances.Touch(instKey)
	}
	return nil
}
