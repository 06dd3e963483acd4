package groute

import "container/heap"

// Path is a sequence of grid coordinates from source to target,
// inclusive, in travel order.
type Path []Coord

// Coord is a grid cell coordinate.
type Coord struct{ X, Y int }

// pqEntry is one frontier entry in the maze search's open set.
type pqEntry struct {
	x, y      int
	priority  int // cost-so-far + Manhattan heuristic to target
	costSoFar int
	seq       int // insertion order, breaks priority ties deterministically
}

type mazePQ []pqEntry

func (pq mazePQ) Len() int { return len(pq) }
func (pq mazePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq mazePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *mazePQ) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }
func (pq *mazePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}

func heuristic(x, y, tx, ty int) int {
	dx := x - tx
	if dx < 0 {
		dx = -dx
	}
	dy := y - ty
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Route searches g with A* for a capacity-respecting path from any of
// sources to target, each step costing 1 plus the Manhattan distance
// heuristic to target. Every source is seeded into the frontier at cost
// 0, so the search ends as soon as it reaches target from whichever
// source is nearest; passing the cells of an already-routed net as
// extra sources lets a later segment branch onto that net instead of
// being forced back to its original terminal. On success it increments
// Used on every cell along the returned path (the reached source and
// target included) and returns the path. On failure it leaves g
// unmodified and returns ErrNoRoute.
func Route(g *Grid, sources []Coord, target Coord) (Path, error) {
	if !g.InBounds(target.X, target.Y) {
		return nil, grouteErrorf("Route", ErrOutOfBounds)
	}
	for _, s := range sources {
		if !g.InBounds(s.X, s.Y) {
			return nil, grouteErrorf("Route", ErrOutOfBounds)
		}
	}

	g.resetSearchState()

	pq := &mazePQ{}
	heap.Init(pq)

	seq := 0
	push := func(x, y, cost int) {
		cell, _ := g.At(x, y)
		if cell.HasFlag(FlagReached) && cost >= cell.bestCost {
			return
		}
		cell.bestCost = cost
		cell.setFlag(FlagReached)
		heap.Push(pq, pqEntry{x: x, y: y, costSoFar: cost, priority: cost + heuristic(x, y, target.X, target.Y), seq: seq})
		seq++
	}

	isSource := make(map[Coord]bool, len(sources))
	cameFrom := make(map[Coord]Coord)
	for _, s := range sources {
		isSource[s] = true
		srcCell, _ := g.At(s.X, s.Y)
		srcCell.setFlag(FlagSource)
		push(s.X, s.Y, 0)
	}

	found := false
	for pq.Len() > 0 {
		entry := heap.Pop(pq).(pqEntry)
		cur := Coord{X: entry.x, Y: entry.y}
		cell, _ := g.At(cur.X, cur.Y)
		if entry.costSoFar > cell.bestCost {
			continue
		}
		if cur == target {
			found = true
			break
		}
		for _, off := range neighborOffsets4 {
			nx, ny := cur.X+off[0], cur.Y+off[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ncell, _ := g.At(nx, ny)
			isTarget := nx == target.X && ny == target.Y
			if !ncell.Available() && !isTarget {
				continue
			}
			nextCost := entry.costSoFar + 1
			if !ncell.HasFlag(FlagReached) || nextCost < ncell.bestCost {
				cameFrom[Coord{X: nx, Y: ny}] = cur
				push(nx, ny, nextCost)
			}
		}
	}

	if !found {
		return nil, grouteErrorf("Route", ErrNoRoute)
	}

	path := []Coord{target}
	cur := target
	for !isSource[cur] {
		prev, ok := cameFrom[cur]
		if !ok {
			return nil, grouteErrorf("Route", ErrNoRoute)
		}
		path = append(path, prev)
		cur = prev
	}
	reverse(path)

	for _, c := range path {
		cell, _ := g.At(c.X, c.Y)
		cell.Used++
	}

	return path, nil
}

func reverse(path Path) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
