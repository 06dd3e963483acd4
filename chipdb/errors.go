package chipdb

import "errors"

// Sentinel errors returned by chipdb containers and netlist operations.
//
// These are user-level failures: duplicate name, unknown name,
// type mismatch. Structural-invariant violations (connection mirroring
// gone stale, a removed key reused) are bugs and have no sentinel error
// of their own.
var (
	// ErrDuplicateName indicates an Add with a name already present in
	// the same container.
	ErrDuplicateName = errors.New("chipdb: duplicate name in container")

	// ErrNotFound indicates a lookup (by key or by name) found nothing.
	ErrNotFound = errors.New("chipdb: entity not found")

	// ErrInvalidKey indicates an operation was given ObjectKeyNotFound
	// where a resolved key was required.
	ErrInvalidKey = errors.New("chipdb: invalid object key")

	// ErrArchetypeMismatch indicates an Instance's archetype reference
	// does not resolve to a Cell or Module of the expected kind.
	ErrArchetypeMismatch = errors.New("chipdb: instance archetype mismatch")

	// ErrPinIndexOutOfRange indicates a pin index beyond an archetype's
	// pin count.
	ErrPinIndexOutOfRange = errors.New("chipdb: pin index out of range")

	// ErrAlreadyConnected indicates a connect attempt on a pin slot that
	// is already bound to a net; callers must disconnect first.
	ErrAlreadyConnected = errors.New("chipdb: pin already connected to a net")

	// ErrNotConnected indicates a disconnect attempt on a pin slot that
	// has no net bound.
	ErrNotConnected = errors.New("chipdb: pin is not connected")
)
