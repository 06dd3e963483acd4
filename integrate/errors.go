package integrate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInstances indicates a projection found no eligible instances
	// in the netlist (every instance is Ignore status, or the netlist is
	// empty).
	ErrNoInstances = errors.New("integrate: netlist has no eligible instances")

	// ErrUnknownArchetype indicates an instance's CellKey does not
	// resolve against the supplied cell library.
	ErrUnknownArchetype = errors.New("integrate: instance archetype not found in cell library")

	// ErrNetNotFound indicates a requested net key does not resolve in
	// the netlist.
	ErrNetNotFound = errors.New("integrate: net not found")

	// ErrBufferCellNotFound indicates the supplied buffer cell key does
	// not resolve in the cell library.
	ErrBufferCellNotFound = errors.New("integrate: buffer cell not found in cell library")

	// ErrBufferPinLayout indicates the buffer cell does not expose the
	// "IN"/"OUT" pins ApplyClockTree rewires through.
	ErrBufferPinLayout = errors.New("integrate: buffer cell has no IN/OUT pin pair")

	// ErrUnresolvedRef indicates a write-back result referenced an
	// ObjectKey that no longer resolves in the netlist (e.g. the
	// instance was removed between projection and write-back).
	ErrUnresolvedRef = errors.New("integrate: result references an unresolved instance")
)

func integrateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
