package groute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/groute"
	"github.com/edacore/pnrcore/runctx"
)

// TestRouteNet_SixtyFiveTerminals mirrors a wide fanout net decomposed
// onto a coarse 30x30 GCell grid: routing every Steiner MST edge in
// order succeeds, no GCell's usage ever exceeds its capacity, and every
// terminal's own GCell is used by the routed tree.
func TestRouteNet_SixtyFiveTerminals(t *testing.T) {
	const gridDim = 30
	const capacity = 4 // headroom for the handful of cells shared by more than one MST edge (terminal junctions)

	g, err := groute.NewGrid(gridDim, gridDim, capacity)
	require.NoError(t, err)

	var terminals []groute.Terminal
	seq := 0
	for x := 0; x < gridDim && seq < 65; x++ {
		for y := 0; y < gridDim && seq < 65; y++ {
			terminals = append(terminals, groute.Terminal{X: x, Y: y, Ref: seq})
			seq++
		}
	}
	require.Len(t, terminals, 65)

	result, err := groute.RouteNet(g, terminals, nil)
	require.NoError(t, err)
	require.Len(t, result.Edges, len(terminals)-1)
	require.Len(t, result.Paths, len(result.Edges))

	for y := 0; y < gridDim; y++ {
		for x := 0; x < gridDim; x++ {
			cell, ok := g.At(x, y)
			require.True(t, ok)
			require.LessOrEqual(t, cell.Used, cell.Capacity, "cell (%d,%d) over capacity", x, y)
		}
	}

	for _, term := range terminals {
		cell, ok := g.At(term.X, term.Y)
		require.True(t, ok)
		require.Greater(t, cell.Used, 0, "terminal at (%d,%d) never routed through", term.X, term.Y)
	}
}

// TestRouteNet_BranchesOntoAlreadyRoutedCells checks that a later
// skeleton edge can terminate its search early by reaching a cell
// routed by an earlier edge of the same net, not just its own nominal
// "from" terminal.
func TestRouteNet_BranchesOntoAlreadyRoutedCells(t *testing.T) {
	g, err := groute.NewGrid(10, 10, 2)
	require.NoError(t, err)

	terminals := []groute.Terminal{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 5, Y: 5},
	}

	result, err := groute.RouteNet(g, terminals, nil)
	require.NoError(t, err)
	require.Len(t, result.Edges, 2)
	require.Len(t, result.Paths, 2)

	// the first edge runs along y=0 from (0,0) to (5,0); the second
	// edge climbs column x=5 from (5,0) to (5,5), so it never revisits
	// (0,0).
	for _, c := range result.Paths[1] {
		require.False(t, c.X == 0 && c.Y == 0)
	}
}

func TestRouteNet_CancelledReportsErrCancelled(t *testing.T) {
	g, err := groute.NewGrid(30, 30, 1)
	require.NoError(t, err)

	var terminals []groute.Terminal
	for i := 0; i < 5; i++ {
		terminals = append(terminals, groute.Terminal{X: i * 5, Y: i * 5})
	}

	_, err = groute.RouteNet(g, terminals, &runctx.Context{ShouldCancel: func() bool { return true }})
	require.ErrorIs(t, err, groute.ErrCancelled)
}
