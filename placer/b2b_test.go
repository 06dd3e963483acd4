package placer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/placer"
)

// TestSolveB2B_FourNodeSpringString chains two movable nodes between a
// fixed endpoint at (0,0) and a fixed endpoint at (100,300) with unit
// two-pin springs. The equilibrium positions are the linear
// interpolation points at 1/3 and 2/3 along the chain.
func TestSolveB2B_FourNodeSpringString(t *testing.T) {
	nl := placer.NewNetlist()
	a := nl.AddNode(placer.Node{Kind: placer.Fixed, Pos: placer.Point{X: 0, Y: 0}})
	n1 := nl.AddNode(placer.Node{Kind: placer.Movable})
	n2 := nl.AddNode(placer.Node{Kind: placer.Movable})
	b := nl.AddNode(placer.Node{Kind: placer.Fixed, Pos: placer.Point{X: 100, Y: 300}})

	nl.AddNet(placer.Net{Nodes: []placer.NodeID{a, n1}, Weight: 1})
	nl.AddNet(placer.Net{Nodes: []placer.NodeID{n1, n2}, Weight: 1})
	nl.AddNet(placer.Net{Nodes: []placer.NodeID{n2, b}, Weight: 1})

	err := placer.SolveB2B(nl, placer.Options{})
	require.NoError(t, err)

	require.InDelta(t, 33, nl.Nodes[n1].Pos.X, 1)
	require.InDelta(t, 100, nl.Nodes[n1].Pos.Y, 1)
	require.InDelta(t, 66, nl.Nodes[n2].Pos.X, 1)
	require.InDelta(t, 200, nl.Nodes[n2].Pos.Y, 1)
}

func TestSolveB2B_EmptyNetlist(t *testing.T) {
	nl := placer.NewNetlist()
	err := placer.SolveB2B(nl, placer.Options{})
	require.ErrorIs(t, err, placer.ErrEmptyNetlist)
}

func TestSolveB2B_BothFixedNodesUnmoved(t *testing.T) {
	nl := placer.NewNetlist()
	a := nl.AddNode(placer.Node{Kind: placer.Fixed, Pos: placer.Point{X: 10, Y: 20}})
	b := nl.AddNode(placer.Node{Kind: placer.Fixed, Pos: placer.Point{X: 50, Y: 60}})
	nl.AddNet(placer.Net{Nodes: []placer.NodeID{a, b}, Weight: 1})

	require.NoError(t, placer.SolveB2B(nl, placer.Options{}))
	require.Equal(t, placer.Point{X: 10, Y: 20}, nl.Nodes[a].Pos)
	require.Equal(t, placer.Point{X: 50, Y: 60}, nl.Nodes[b].Pos)
}

func TestHPWL_SingleNetBoundingBox(t *testing.T) {
	nl := placer.NewNetlist()
	a := nl.AddNode(placer.Node{Pos: placer.Point{X: 0, Y: 0}})
	b := nl.AddNode(placer.Node{Pos: placer.Point{X: 10, Y: 5}})
	c := nl.AddNode(placer.Node{Pos: placer.Point{X: 3, Y: 20}})
	nl.AddNet(placer.Net{Nodes: []placer.NodeID{a, b, c}})

	require.Equal(t, float64(10+20), placer.HPWL(nl))
}
