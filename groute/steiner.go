package groute

// Terminal is one pin position a net must connect to.
type Terminal struct {
	X, Y int
	Ref  any
}

// SteinerEdge is one edge of a net's MST skeleton: the indices (into
// the Terminal slice passed to DecomposeSteiner) of its two endpoints.
type SteinerEdge struct {
	From, To int
}

func manhattan(a, b Terminal) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DecomposeSteiner reduces a net's terminal set to a Steiner-tree
// skeleton: a minimum spanning tree over the terminals' pairwise
// Manhattan distance, grown with Prim's algorithm from terminal 0.
//
// Grown densely (O(n^2)) rather than via a priority queue over a
// pre-built edge list: a net's terminal count is small relative to grid
// size, and the dense form keeps tie-breaking trivially deterministic
// (lowest terminal index wins ties), matching the fixed iteration order
// the source's terminal list is built in.
func DecomposeSteiner(terminals []Terminal) ([]SteinerEdge, error) {
	n := len(terminals)
	if n < 2 {
		return nil, grouteErrorf("DecomposeSteiner", ErrNoTerminals)
	}

	inTree := make([]bool, n)
	bestDist := make([]int, n)
	bestFrom := make([]int, n)
	for i := range bestDist {
		bestDist[i] = -1
		bestFrom[i] = -1
	}

	inTree[0] = true
	for j := 1; j < n; j++ {
		bestDist[j] = manhattan(terminals[0], terminals[j])
		bestFrom[j] = 0
	}

	edges := make([]SteinerEdge, 0, n-1)

	for added := 1; added < n; added++ {
		next := -1
		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			if next == -1 || bestDist[j] < bestDist[next] {
				next = j
			}
		}

		edges = append(edges, SteinerEdge{From: bestFrom[next], To: next})
		inTree[next] = true

		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			d := manhattan(terminals[next], terminals[j])
			if d < bestDist[j] {
				bestDist[j] = d
				bestFrom[j] = next
			}
		}
	}

	return edges, nil
}
