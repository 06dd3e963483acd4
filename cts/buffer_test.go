package cts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/cts"
)

// TestInsertBuffers_AllSinksReachableUnderCap builds a clock tree with
// several sinks whose total capacitance exceeds maxCap, then checks
// that buffering leaves the load reaching the root at or below maxCap,
// and every original sink is carried by some buffer request.
func TestInsertBuffers_AllSinksReachableUnderCap(t *testing.T) {
	sinks := []cts.Sink{
		{Ref: "a", Pos: cts.Point{X: 0, Y: 0}, Capacitance: 0.08e-12},
		{Ref: "b", Pos: cts.Point{X: 100, Y: 0}, Capacitance: 0.08e-12},
		{Ref: "c", Pos: cts.Point{X: 0, Y: 100}, Capacitance: 0.08e-12},
		{Ref: "d", Pos: cts.Point{X: 100, Y: 100}, Capacitance: 0.08e-12},
	}
	cn := cts.ClockNet{DriverRef: "drv", DriverPos: cts.Point{X: 50, Y: 50}, Sinks: sinks}
	tree, err := cts.GenerateTree(cn)
	require.NoError(t, err)

	info := cts.BufferInfo{MaxCap: 0.2e-12, InputPinCap: 0.01e-12}

	nextID := 0
	var requests []cts.BufferRequest
	_, totalCap := cts.InsertBuffers(tree, 0, info, func() int {
		id := nextID
		nextID++
		return id
	}, func(req cts.BufferRequest) any {
		requests = append(requests, req)
		return req.UniqueID
	})

	require.LessOrEqual(t, totalCap, info.MaxCap+1e-15)

	seenSinks := map[string]bool{}
	for _, req := range requests {
		require.LessOrEqual(t, len(req.Sinks), len(sinks))
		for _, s := range req.Sinks {
			if ref, ok := s.Ref.(string); ok {
				seenSinks[ref] = true
			}
		}
	}
	require.Len(t, seenSinks, len(sinks))
	// every buffered request's unique ID is distinct.
	ids := map[int]bool{}
	for _, req := range requests {
		require.False(t, ids[req.UniqueID], "duplicate buffer id %d", req.UniqueID)
		ids[req.UniqueID] = true
	}
}

func TestInsertBuffers_UnderCapNeverBuffers(t *testing.T) {
	sinks := []cts.Sink{
		{Ref: "a", Pos: cts.Point{X: 0, Y: 0}, Capacitance: 0.01e-12},
		{Ref: "b", Pos: cts.Point{X: 10, Y: 10}, Capacitance: 0.01e-12},
	}
	cn := cts.ClockNet{DriverRef: "drv", DriverPos: cts.Point{X: 5, Y: 5}, Sinks: sinks}
	tree, err := cts.GenerateTree(cn)
	require.NoError(t, err)

	info := cts.BufferInfo{MaxCap: 1.0, InputPinCap: 0.01}
	calls := 0
	_, totalCap := cts.InsertBuffers(tree, 0, info, func() int { return 0 }, func(cts.BufferRequest) any { calls++; return nil })

	require.Equal(t, 0, calls)
	require.InDelta(t, 0.02e-12, totalCap, 1e-15)
}
