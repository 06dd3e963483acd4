package integrate

import (
	"github.com/edacore/pnrcore/chipdb"
	"github.com/edacore/pnrcore/groute"
)

// GCellOf maps a nanometer position to the GCell grid coordinate it
// falls within, given the grid's origin (its lower-left corner, usually
// a floorplan region's extents) and per-axis GCell size.
func GCellOf(pos, origin chipdb.Coord, cellSize chipdb.Coord) groute.Coord {
	x := int((pos.X - origin.X) / cellSize.X)
	y := int((pos.Y - origin.Y) / cellSize.Y)
	return groute.Coord{X: x, Y: y}
}

// ProjectRouteTerminals builds the terminal set for the net at netKey:
// one groute.Terminal per distinct connected instance that is Placed or
// PlacedAndFixed, at the GCell its position maps to under origin and
// cellSize. Terminal.Ref carries the instance's ObjectKey.
func ProjectRouteTerminals(nl *chipdb.Netlist, netKey chipdb.ObjectKey, origin, cellSize chipdb.Coord) ([]groute.Terminal, error) {
	net, ok := nl.Nets.Lookup(netKey)
	if !ok {
		return nil, integrateErrorf("ProjectRouteTerminals", ErrNetNotFound)
	}

	var terminals []groute.Terminal
	seen := make(map[chipdb.ObjectKey]bool)
	for i := 0; i < net.NumConnections(); i++ {
		instKey, _, _ := net.Connection(i)
		if seen[instKey] {
			continue
		}
		inst, ok := nl.Instances.Lookup(instKey)
		if !ok || (inst.Status != chipdb.Placed && inst.Status != chipdb.PlacedAndFixed) {
			continue
		}
		seen[instKey] = true
		gc := GCellOf(inst.Position, origin, cellSize)
		terminals = append(terminals, groute.Terminal{X: gc.X, Y: gc.Y, Ref: instKey})
	}
	return terminals, nil
}
