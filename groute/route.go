package groute

import "github.com/edacore/pnrcore/runctx"

// NetRoute is the routed result for one net: the Steiner skeleton's
// edges paired with the maze path realizing each one.
type NetRoute struct {
	Edges []SteinerEdge
	Paths []Path
}

// RouteNet decomposes terminals into a Steiner skeleton and routes each
// skeleton edge over g, in skeleton order. Every cell already routed by
// an earlier edge of this same net is offered to Route as an extra
// source alongside the edge's own "from" terminal, so a later edge can
// branch onto the growing net instead of being forced back to its
// single nominal endpoint; this mirrors how the skeleton itself is a
// tree rooted at terminal 0, not a set of independent point pairs. If
// any edge fails to route, the edges and capacity consumed by the
// edges routed before it are left in place (partial progress is not
// rolled back) and the first failure is returned.
//
// ctx is polled once per skeleton edge; a nil ctx never cancels. A
// cancelled run returns the edges routed so far alongside ErrCancelled.
func RouteNet(g *Grid, terminals []Terminal, ctx *runctx.Context) (NetRoute, error) {
	edges, err := DecomposeSteiner(terminals)
	if err != nil {
		return NetRoute{}, err
	}

	result := NetRoute{Edges: edges, Paths: make([]Path, 0, len(edges))}

	var routedCells []Coord
	seen := make(map[Coord]bool)
	recordRouted := func(path Path) {
		for _, c := range path {
			if !seen[c] {
				seen[c] = true
				routedCells = append(routedCells, c)
			}
		}
	}

	for i, e := range edges {
		if ctx.Cancelled() {
			result.Edges = edges[:i]
			return result, grouteErrorf("RouteNet", ErrCancelled)
		}
		from := terminals[e.From]
		to := terminals[e.To]
		fromCoord := Coord{X: from.X, Y: from.Y}
		toCoord := Coord{X: to.X, Y: to.Y}

		sources := routedCells
		if !seen[fromCoord] {
			sources = append(append([]Coord{}, routedCells...), fromCoord)
		}

		path, err := Route(g, sources, toCoord)
		if err != nil {
			return result, err
		}
		result.Paths = append(result.Paths, path)
		recordRouted(path)
		ctx.Log("groute: routed edge %d/%d", i+1, len(edges))
	}
	return result, nil
}
