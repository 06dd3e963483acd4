package cts

// BufferInfo describes the library cell used for clock buffering: its
// input pin capacitance (what a fed sink's driver now sees) and the
// maximum load capacitance a single driver stage may carry before a
// buffer must be inserted.
type BufferInfo struct {
	MaxCap      float64
	InputPinCap float64
}

// BufferRequest is emitted by InsertBuffers each time a segment's
// accumulated load reaches MaxCap: the caller creates the buffer
// instance and net and rewires every sink in Sinks onto it, then
// returns a Ref identifying the buffer's own input pin. That Ref is
// what replaces Sinks in the collapsed subtree (matching the source's
// "replace the current sink list with (buffer, buffer.input)" reset),
// so an ancestor segment that buffers again can rewire this buffer's
// input the same way it rewires an original sink.
type BufferRequest struct {
	Level    int
	UniqueID int
	Sinks    []Sink
	Position Point
}

// bufferResult is the bottom-up accumulator insertBuffers returns per
// segment.
type bufferResult struct {
	sinks               []Sink
	totalCapacitance    float64
}

// InsertBuffers walks segments bottom-up from root, accumulating load
// capacitance per segment, and emits one BufferRequest each time a
// segment's accumulated capacitance reaches info.MaxCap. uniqueID is
// called once per inserted buffer to mint unique instance/net name
// suffixes. emit returns the Ref of the buffer's input pin, carried
// forward as the collapsed subtree's single virtual sink. Returns the
// sink list and total capacitance reaching root (useful for a caller
// wanting the driver-stage load).
func InsertBuffers(segments *SegmentList, root SegmentIndex, info BufferInfo, uniqueID func() int, emit func(BufferRequest) any) (sinks []Sink, totalCap float64) {
	res := insertBuffersRec(segments, root, info, uniqueID, emit)
	return res.sinks, res.totalCapacitance
}

func insertBuffersRec(segments *SegmentList, idx SegmentIndex, info BufferInfo, uniqueID func() int, emit func(BufferRequest) any) bufferResult {
	seg := segments.At(idx)

	if seg.HasSink() {
		return bufferResult{sinks: []Sink{*seg.Terminal}, totalCapacitance: seg.Terminal.Capacitance}
	}

	var acc bufferResult
	for _, child := range seg.Children {
		sub := insertBuffersRec(segments, child, info, uniqueID, emit)
		acc.totalCapacitance += sub.totalCapacitance
		acc.sinks = append(acc.sinks, sub.sinks...)
	}

	if acc.totalCapacitance >= info.MaxCap && len(acc.sinks) > 0 {
		id := uniqueID()
		req := BufferRequest{
			Level:    seg.Level,
			UniqueID: id,
			Sinks:    acc.sinks,
			Position: seg.End,
		}
		ref := emit(req)

		acc.sinks = []Sink{{Ref: ref, Pos: seg.End, Capacitance: info.InputPinCap}}
		acc.totalCapacitance = info.InputPinCap
	}

	return acc
}
