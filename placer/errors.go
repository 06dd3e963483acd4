package placer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyNetlist indicates Place was called with zero nodes.
	ErrEmptyNetlist = errors.New("placer: netlist has no nodes")

	// ErrDegenerateRegion indicates the placement region has zero or
	// negative width/height.
	ErrDegenerateRegion = errors.New("placer: region has non-positive width or height")

	// ErrAllNodesFixed indicates every node in the netlist is fixed,
	// leaving nothing for the solver to place.
	ErrAllNodesFixed = errors.New("placer: every node is fixed, nothing to place")

	// ErrCancelled indicates a *runctx.Context's ShouldCancel returned
	// true before Place converged or exhausted its iteration budget.
	ErrCancelled = errors.New("placer: run cancelled")
)

func placerErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
