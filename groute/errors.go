package groute

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a grid was requested with zero width or
	// height.
	ErrEmptyGrid = errors.New("groute: grid has zero width or height")

	// ErrOutOfBounds indicates a GCell coordinate outside the grid.
	ErrOutOfBounds = errors.New("groute: coordinate out of grid bounds")

	// ErrNoTerminals indicates a net was submitted for decomposition
	// with fewer than two terminals.
	ErrNoTerminals = errors.New("groute: net has fewer than two terminals")

	// ErrNoRoute indicates the maze search exhausted its frontier
	// without reaching the target; grid capacity is left unmodified.
	ErrNoRoute = errors.New("groute: no route found between source and target")

	// ErrCancelled indicates a *runctx.Context's ShouldCancel returned
	// true before RouteNet finished every skeleton edge.
	ErrCancelled = errors.New("groute: run cancelled")
)

func grouteErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
