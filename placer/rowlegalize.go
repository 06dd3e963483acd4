package placer

import "sort"

// Row is one legalization row: a site-height strip at a fixed Y,
// spanning [MinX, MaxX), aligned to a site width (so valid positions
// are MinX + k*SiteWidth).
type Row struct {
	Y         int64
	MinX      int64
	MaxX      int64
	SiteWidth int64
}

// LegalizeRows snaps every movable node to the row whose Y is closest
// to the node's current Y, then packs that row's nodes left to right in
// their relative X order, aligned to the row's site grid. Returns the
// total legalization displacement cost, sum of weight*|Δx|, useful only
// for comparing candidate legalizations against each other.
func LegalizeRows(nl *Netlist, rows []Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	byRow := make(map[int][]NodeID)
	for i := range nl.Nodes {
		if nl.Nodes[i].IsFixed() {
			continue
		}
		r := closestRow(rows, nl.Nodes[i].Pos.Y)
		byRow[r] = append(byRow[r], NodeID(i))
	}

	var cost float64
	for rowIdx, ids := range byRow {
		row := rows[rowIdx]
		sort.Slice(ids, func(i, j int) bool {
			return nl.Nodes[ids[i]].Pos.X < nl.Nodes[ids[j]].Pos.X
		})

		cursor := row.MinX
		for _, id := range ids {
			node := &nl.Nodes[id]
			origX := node.Pos.X

			x := alignToSite(cursor, row.MinX, row.SiteWidth)
			if x < cursor {
				x += row.SiteWidth
			}
			if x+node.Size.W > row.MaxX {
				x = alignToSite(row.MaxX-node.Size.W, row.MinX, row.SiteWidth)
			}

			cost += node.Weight * absF(float64(x-origX))
			node.Pos = Point{X: x, Y: row.Y}
			cursor = x + node.Size.W
		}
	}
	return cost
}

func closestRow(rows []Row, y int64) int {
	best, bestDist := 0, absI64(rows[0].Y-y)
	for i := 1; i < len(rows); i++ {
		if d := absI64(rows[i].Y - y); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// alignToSite rounds x (at or right of origin) down to the nearest site
// boundary origin + k*siteWidth.
func alignToSite(x, origin, siteWidth int64) int64 {
	if siteWidth <= 0 {
		return x
	}
	return origin + ((x-origin)/siteWidth)*siteWidth
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
