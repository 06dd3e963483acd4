package cts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/cts"
)

func TestGenerateTree_NoDriver(t *testing.T) {
	_, err := cts.GenerateTree(cts.ClockNet{Sinks: []cts.Sink{{Pos: cts.Point{X: 1, Y: 1}}}})
	require.ErrorIs(t, err, cts.ErrNoDriver)
}

func TestGenerateTree_NoSinks(t *testing.T) {
	_, err := cts.GenerateTree(cts.ClockNet{DriverRef: "drv"})
	require.ErrorIs(t, err, cts.ErrNoSinks)
}

func TestGenerateTree_SingleSinkIsOneLeaf(t *testing.T) {
	cn := cts.ClockNet{
		DriverRef: "drv",
		DriverPos: cts.Point{X: 0, Y: 0},
		Sinks:     []cts.Sink{{Ref: "s0", Pos: cts.Point{X: 10, Y: 10}, Capacitance: 1}},
	}
	tree, err := cts.GenerateTree(cn)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())

	leaf := tree.At(1)
	require.True(t, leaf.HasSink())
	require.Equal(t, "s0", leaf.Terminal.Ref)
}

func TestGenerateTree_EverySinkReachableAsLeaf(t *testing.T) {
	sinks := []cts.Sink{
		{Ref: "a", Pos: cts.Point{X: 0, Y: 0}, Capacitance: 1},
		{Ref: "b", Pos: cts.Point{X: 100, Y: 0}, Capacitance: 1},
		{Ref: "c", Pos: cts.Point{X: 0, Y: 100}, Capacitance: 1},
		{Ref: "d", Pos: cts.Point{X: 100, Y: 100}, Capacitance: 1},
		{Ref: "e", Pos: cts.Point{X: 50, Y: 50}, Capacitance: 1},
	}
	cn := cts.ClockNet{DriverRef: "drv", DriverPos: cts.Point{X: 50, Y: 50}, Sinks: sinks}

	tree, err := cts.GenerateTree(cn)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < tree.Len(); i++ {
		seg := tree.At(cts.SegmentIndex(i))
		if seg.HasSink() {
			seen[seg.Terminal.Ref.(string)] = true
		}
	}
	require.Len(t, seen, len(sinks))
	for _, s := range sinks {
		require.True(t, seen[s.Ref.(string)], "sink %v not reachable as a leaf", s.Ref)
	}
}

func TestGenerateTree_RootStartsAtDriver(t *testing.T) {
	cn := cts.ClockNet{
		DriverRef: "drv",
		DriverPos: cts.Point{X: 5, Y: 5},
		Sinks: []cts.Sink{
			{Ref: "a", Pos: cts.Point{X: 0, Y: 0}, Capacitance: 1},
			{Ref: "b", Pos: cts.Point{X: 10, Y: 10}, Capacitance: 1},
		},
	}
	tree, err := cts.GenerateTree(cn)
	require.NoError(t, err)
	require.Equal(t, cts.Point{X: 5, Y: 5}, tree.At(0).Start)
}
