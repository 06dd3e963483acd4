package cts

import (
	"errors"
	"fmt"
)

var (
	// ErrClockNetNotFound indicates the requested clock net does not
	// exist in the chipdb netlist (returned by integrate.ProjectClockNet
	// and integrate.ApplyClockTree).
	ErrClockNetNotFound = errors.New("cts: clock net not found")

	// ErrInstanceNotPlaced indicates a sink (or the driver) on the
	// clock net has not yet been placed.
	ErrInstanceNotPlaced = errors.New("cts: instance on clock net is not placed")

	// ErrInvalidPin indicates a connection on the clock net is not on a
	// usable pin: the pin index does not exist on the instance's
	// archetype, the archetype is not a cell, or a non-driver connection
	// is not on an input pin.
	ErrInvalidPin = errors.New("cts: invalid pin on clock net connection")

	// ErrNoDriver indicates the clock net has zero output-pin
	// connections.
	ErrNoDriver = errors.New("cts: clock net has no driver")

	// ErrMultipleDrivers indicates the clock net has more than one
	// output-pin connection.
	ErrMultipleDrivers = errors.New("cts: clock net has more than one driver")

	// ErrNoSinks indicates the clock net has a driver but no input-pin
	// connections to route to.
	ErrNoSinks = errors.New("cts: clock net has no sinks")
)

func ctsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
