package linalg

import (
	"errors"
	"fmt"
)

// Sentinel error set for the linalg package. Every public entry point
// returns one of these (wrapped via linalgErrorf with an operation tag)
// rather than panicking on a user-triggered condition.
var (
	// ErrInvalidDimensions indicates a requested matrix/vector dimension
	// is non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates a (row, col) or vector index outside valid
	// bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates an operand's shape does not match
	// what the operation requires (e.g. b's length != A's row count).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotFinalized indicates Solve was called on a matrix that has
	// not had Finalize called since its last coefficient mutation.
	ErrNotFinalized = errors.New("linalg: matrix not finalized")

	// ErrZeroDiagonal indicates a Jacobi-preconditioned solve encountered
	// a zero diagonal entry, which the preconditioner cannot invert.
	ErrZeroDiagonal = errors.New("linalg: zero diagonal entry")
)

// linalgErrorf wraps an underlying sentinel with an operation tag.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
