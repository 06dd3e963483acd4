package integrate

import (
	"fmt"

	"github.com/edacore/pnrcore/chipdb"
	"github.com/edacore/pnrcore/cts"
)

// sinkRef is the Ref carried on every cts.Sink and cts.ClockNet.DriverRef
// this package builds: enough to Connect/Disconnect the (instance, pin)
// it came from. ApplyClockTree also uses it as the Ref of a buffer's
// own input pin, so a buffer swallowed by an ancestor segment rewires
// exactly like an original sink.
type sinkRef struct {
	inst chipdb.ObjectKey
	pin  int
}

// ProjectClockNet builds a cts.ClockNet from the net at clockNetKey:
// exactly one connection must sit on an output pin (the driver), every
// other connection must sit on an input pin, and every connected
// instance must already be Placed or PlacedAndFixed. Only ArchetypeCell
// instances are supported, since pin direction and capacitance are
// read from the cell library.
func ProjectClockNet(nl *chipdb.Netlist, cellLib *chipdb.Container[*chipdb.Cell], clockNetKey chipdb.ObjectKey) (cts.ClockNet, error) {
	net, ok := nl.Nets.Lookup(clockNetKey)
	if !ok {
		return cts.ClockNet{}, integrateErrorf("ProjectClockNet", cts.ErrClockNetNotFound)
	}

	var haveDriver bool
	var driverRef sinkRef
	var driverPos cts.Point
	var sinks []cts.Sink

	for i := 0; i < net.NumConnections(); i++ {
		instKey, pinIdx, _ := net.Connection(i)
		inst, ok := nl.Instances.Lookup(instKey)
		if !ok {
			return cts.ClockNet{}, integrateErrorf("ProjectClockNet", ErrUnresolvedRef)
		}
		if inst.Status != chipdb.Placed && inst.Status != chipdb.PlacedAndFixed {
			return cts.ClockNet{}, integrateErrorf("ProjectClockNet", cts.ErrInstanceNotPlaced)
		}
		if inst.Archetype != chipdb.ArchetypeCell {
			return cts.ClockNet{}, integrateErrorf("ProjectClockNet", cts.ErrInvalidPin)
		}
		cell, ok := cellLib.Lookup(inst.CellKey)
		if !ok {
			return cts.ClockNet{}, integrateErrorf("ProjectClockNet", ErrUnknownArchetype)
		}
		pin, ok := cell.PinByIndex(pinIdx)
		if !ok {
			return cts.ClockNet{}, integrateErrorf("ProjectClockNet", cts.ErrInvalidPin)
		}

		ref := sinkRef{inst: instKey, pin: pinIdx}
		pos := cts.Point{X: inst.Position.X, Y: inst.Position.Y}

		if pin.IsOutput() {
			if haveDriver {
				return cts.ClockNet{}, integrateErrorf("ProjectClockNet", cts.ErrMultipleDrivers)
			}
			haveDriver = true
			driverRef = ref
			driverPos = pos
			continue
		}
		if !pin.IsInput() {
			return cts.ClockNet{}, integrateErrorf("ProjectClockNet", cts.ErrInvalidPin)
		}
		sinks = append(sinks, cts.Sink{Ref: ref, Pos: pos, Capacitance: pin.CapacitanceIn})
	}

	cn := cts.ClockNet{DriverPos: driverPos, Sinks: sinks}
	if haveDriver {
		cn.DriverRef = driverRef
	}
	return cn, nil
}

// ApplyClockTree runs GenerateTree and InsertBuffers over the clock net
// at clockNetKey and realizes every inserted buffer on nl: a new
// ArchetypeCell instance of bufferCellKey, placed at the buffer's tree
// position; a new clock net driven by the buffer's output pin; every
// sink InsertBuffers assigns it (an original sink, or an
// already-inserted buffer's input pin) disconnected from clockNetKey
// and reconnected onto the new net. Returns the number of buffers
// inserted.
func ApplyClockTree(nl *chipdb.Netlist, cellLib *chipdb.Container[*chipdb.Cell], bufferCellKey, clockNetKey chipdb.ObjectKey, maxCap float64) (int, error) {
	clockNet, ok := nl.Nets.Lookup(clockNetKey)
	if !ok {
		return 0, integrateErrorf("ApplyClockTree", cts.ErrClockNetNotFound)
	}

	cn, err := ProjectClockNet(nl, cellLib, clockNetKey)
	if err != nil {
		return 0, err
	}
	tree, err := cts.GenerateTree(cn)
	if err != nil {
		return 0, integrateErrorf("ApplyClockTree", err)
	}

	bufCell, ok := cellLib.Lookup(bufferCellKey)
	if !ok {
		return 0, integrateErrorf("ApplyClockTree", ErrBufferCellNotFound)
	}
	inPinIdx, inPin, ok := bufCell.PinByName("IN")
	if !ok {
		return 0, integrateErrorf("ApplyClockTree", ErrBufferPinLayout)
	}
	outPinIdx, _, ok := bufCell.PinByName("OUT")
	if !ok {
		return 0, integrateErrorf("ApplyClockTree", ErrBufferPinLayout)
	}

	info := cts.BufferInfo{MaxCap: maxCap, InputPinCap: inPin.CapacitanceIn}

	count := 0
	nextID := 0
	uniqueID := func() int {
		id := nextID
		nextID++
		return id
	}

	var emitErr error
	emit := func(req cts.BufferRequest) any {
		if emitErr != nil {
			return nil
		}

		bufInstKey, err := nl.AddInstance(fmt.Sprintf("%s_buf%d", clockNet.Name, req.UniqueID), chipdb.ArchetypeCell, bufferCellKey)
		if err != nil {
			emitErr = integrateErrorf("ApplyClockTree", err)
			return nil
		}
		bufInst, _ := nl.Instances.Lookup(bufInstKey)
		bufInst.Position = chipdb.Coord{X: req.Position.X, Y: req.Position.Y}
		bufInst.Status = chipdb.Placed
		nl.Instances.Touch(bufInstKey)

		newNetKey, err := nl.AddNet(fmt.Sprintf("%s_net%d", clockNet.Name, req.UniqueID), clockNet.Weight, true)
		if err != nil {
			emitErr = integrateErrorf("ApplyClockTree", err)
			return nil
		}

		if err := nl.Connect(bufInstKey, outPinIdx, newNetKey); err != nil {
			emitErr = integrateErrorf("ApplyClockTree", err)
			return nil
		}
		if err := nl.Connect(bufInstKey, inPinIdx, clockNetKey); err != nil {
			emitErr = integrateErrorf("ApplyClockTree", err)
			return nil
		}

		for _, s := range req.Sinks {
			ref, ok := s.Ref.(sinkRef)
			if !ok {
				emitErr = integrateErrorf("ApplyClockTree", ErrUnresolvedRef)
				return nil
			}
			if err := nl.Disconnect(ref.inst, ref.pin); err != nil {
				emitErr = integrateErrorf("ApplyClockTree", err)
				return nil
			}
			if err := nl.Connect(ref.inst, ref.pin, newNetKey); err != nil {
				emitErr = integrateErrorf("ApplyClockTree", err)
				return nil
			}
		}

		count++
		return sinkRef{inst: bufInstKey, pin: inPinIdx}
	}

	cts.InsertBuffers(tree, 0, info, uniqueID, emit)
	if emitErr != nil {
		return count, emitErr
	}
	return count, nil
}
