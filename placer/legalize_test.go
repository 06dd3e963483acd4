package placer_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/placer"
	"github.com/edacore/pnrcore/runctx"
)

// TestPlace_MultiplierLikeRegion mirrors a small multiplier: inputs
// pinned on the left edge, outputs pinned on the right edge of a
// 65µm x 65µm region, with movable logic in between. Every movable node
// must end inside the region.
func TestPlace_MultiplierLikeRegion(t *testing.T) {
	region := placer.Region{MinX: 0, MinY: 0, MaxX: 65000, MaxY: 65000}
	nl := placer.NewNetlist()

	var inputs, outputs, logic []placer.NodeID
	for i := 0; i < 4; i++ {
		inputs = append(inputs, nl.AddNode(placer.Node{
			Kind: placer.Fixed,
			Pos:  placer.Point{X: 0, Y: int64(i) * 1000},
			Size: placer.Size{W: 100, H: 100},
		}))
	}
	for i := 0; i < 4; i++ {
		outputs = append(outputs, nl.AddNode(placer.Node{
			Kind: placer.Fixed,
			Pos:  placer.Point{X: 65000, Y: int64(i) * 1000},
			Size: placer.Size{W: 100, H: 100},
		}))
	}
	for i := 0; i < 20; i++ {
		logic = append(logic, nl.AddNode(placer.Node{
			Kind:   placer.Movable,
			Size:   placer.Size{W: 400, H: 400},
			Weight: 1,
		}))
	}

	for i, in := range inputs {
		nl.AddNet(placer.Net{Nodes: []placer.NodeID{in, logic[i]}, Weight: 1})
	}
	for i, out := range outputs {
		nl.AddNet(placer.Net{Nodes: []placer.NodeID{logic[len(logic)-1-i], out}, Weight: 1})
	}
	for i := 0; i+1 < len(logic); i++ {
		nl.AddNet(placer.Net{Nodes: []placer.NodeID{logic[i], logic[i+1]}, Weight: 1})
	}

	var iterations int
	opts := placer.DefaultOptions(rand.New(rand.NewSource(3)), 200)
	opts.OnIteration = func(*placer.Netlist) { iterations++ }
	_, err := placer.Place(nl, region, opts, nil)
	require.NoError(t, err)
	require.Greater(t, iterations, 0)

	for _, id := range logic {
		pos := nl.Nodes[id].Pos
		require.True(t, region.Contains(pos), "node %d at %+v escaped region %+v", id, pos, region)
	}
}

func TestPlace_RejectsDegenerateRegion(t *testing.T) {
	nl := placer.NewNetlist()
	nl.AddNode(placer.Node{Kind: placer.Movable})
	_, err := placer.Place(nl, placer.Region{MinX: 0, MaxX: 0, MinY: 0, MaxY: 100}, placer.Options{Rand: rand.New(rand.NewSource(1))}, nil)
	require.ErrorIs(t, err, placer.ErrDegenerateRegion)
}

func TestPlace_RejectsAllFixed(t *testing.T) {
	nl := placer.NewNetlist()
	nl.AddNode(placer.Node{Kind: placer.Fixed, Pos: placer.Point{X: 10, Y: 10}})
	region := placer.Region{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	_, err := placer.Place(nl, region, placer.DefaultOptions(rand.New(rand.NewSource(1)), 10), nil)
	require.ErrorIs(t, err, placer.ErrAllNodesFixed)
}

// TestPlace_CancelledStopsAtNextRound exercises the *runctx.Context
// cancellation path: ShouldCancel reports true from its second poll on,
// so Place returns ErrCancelled after the second round instead of
// running to convergence.
func TestPlace_CancelledStopsAtNextRound(t *testing.T) {
	region := placer.Region{MinX: 0, MinY: 0, MaxX: 10000, MaxY: 10000}
	nl := placer.NewNetlist()
	a := nl.AddNode(placer.Node{Kind: placer.Movable, Size: placer.Size{W: 100, H: 100}, Weight: 1})
	b := nl.AddNode(placer.Node{Kind: placer.Movable, Size: placer.Size{W: 100, H: 100}, Weight: 1})
	nl.AddNet(placer.Net{Nodes: []placer.NodeID{a, b}, Weight: 1})

	opts := placer.DefaultOptions(rand.New(rand.NewSource(1)), 100)
	opts.MaxOuterIterations = 1000
	opts.ConvergenceTol = 0
	calls := 0
	_, err := placer.Place(nl, region, opts, &runctx.Context{ShouldCancel: func() bool {
		calls++
		return calls > 1
	}})
	require.ErrorIs(t, err, placer.ErrCancelled)
}
