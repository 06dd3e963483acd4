package groute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/groute"
)

// TestRoute_StraightVerticalLine mirrors an open 100x100 grid: with no
// obstacles, the shortest path from (49,0) to (49,49) is a straight
// vertical run of 49 steps (50 cells total).
func TestRoute_StraightVerticalLine(t *testing.T) {
	g, err := groute.NewGrid(100, 100, 1)
	require.NoError(t, err)

	path, err := groute.Route(g, []groute.Coord{{X: 49, Y: 0}}, groute.Coord{X: 49, Y: 49})
	require.NoError(t, err)
	require.Len(t, path, 50)
	for _, c := range path {
		require.Equal(t, 49, c.X)
	}
}

// TestRoute_DetoursAroundBlockage blocks three cells at y=10 spanning
// x in [48,50], forcing the straight vertical path at x=49 to detour to
// column 47 or 51, two columns off its straight line.
func TestRoute_DetoursAroundBlockage(t *testing.T) {
	g, err := groute.NewGrid(100, 100, 1)
	require.NoError(t, err)
	g.Block(48, 10)
	g.Block(49, 10)
	g.Block(50, 10)

	path, err := groute.Route(g, []groute.Coord{{X: 49, Y: 0}}, groute.Coord{X: 49, Y: 49})
	require.NoError(t, err)

	// the blockage spans columns 48-50 at y=10, so the shortest detour
	// swings out to column 47 or 51: one column past the blocked edge.
	maxDX := 0
	for _, c := range path {
		if d := c.X - 49; d > maxDX {
			maxDX = d
		} else if -d > maxDX {
			maxDX = -d
		}
	}
	require.Equal(t, 2, maxDX)

	for _, c := range path {
		require.False(t, c.X == 48 && c.Y == 10)
		require.False(t, c.X == 49 && c.Y == 10)
		require.False(t, c.X == 50 && c.Y == 10)
	}
}

func TestRoute_NoRouteLeavesCapacityUnchanged(t *testing.T) {
	g, err := groute.NewGrid(3, 3, 1)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		g.Block(x, 1)
	}

	_, err = groute.Route(g, []groute.Coord{{X: 1, Y: 0}}, groute.Coord{X: 1, Y: 2})
	require.ErrorIs(t, err, groute.ErrNoRoute)

	cell, ok := g.At(1, 0)
	require.True(t, ok)
	require.Equal(t, 0, cell.Used)
}

func TestRoute_OutOfBounds(t *testing.T) {
	g, err := groute.NewGrid(5, 5, 1)
	require.NoError(t, err)
	_, err = groute.Route(g, []groute.Coord{{X: -1, Y: 0}}, groute.Coord{X: 2, Y: 2})
	require.ErrorIs(t, err, groute.ErrOutOfBounds)
}

func TestRoute_ConsumesCapacity(t *testing.T) {
	g, err := groute.NewGrid(5, 5, 1)
	require.NoError(t, err)
	path, err := groute.Route(g, []groute.Coord{{X: 0, Y: 0}}, groute.Coord{X: 0, Y: 2})
	require.NoError(t, err)
	require.Len(t, path, 3)

	for _, c := range path {
		cell, ok := g.At(c.X, c.Y)
		require.True(t, ok)
		require.Equal(t, 1, cell.Used)
	}
}

// TestRoute_MultiSourceBranchesOntoNearestOne exercises the multi-source
// case used to grow a net onto its own already-routed cells: two
// sources straddle the target column, and the search must pick the one
// already closer rather than being forced back to a single fixed
// origin.
func TestRoute_MultiSourceBranchesOntoNearestOne(t *testing.T) {
	g, err := groute.NewGrid(20, 20, 1)
	require.NoError(t, err)

	far := groute.Coord{X: 0, Y: 0}
	near := groute.Coord{X: 10, Y: 10}
	target := groute.Coord{X: 10, Y: 15}

	path, err := groute.Route(g, []groute.Coord{far, near}, target)
	require.NoError(t, err)
	require.Len(t, path, 6) // |10-10| + |15-10| + 1 endpoints, branching from near
	require.Equal(t, near, path[0])
	require.Equal(t, target, path[len(path)-1])
}
