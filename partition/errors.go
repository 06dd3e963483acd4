package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContainer indicates Run was called with no nodes or no
	// nets set up.
	ErrEmptyContainer = errors.New("partition: container has no nodes or nets")

	// ErrInvalidNodeRef indicates a Net referenced a node index outside
	// the container's node slice.
	ErrInvalidNodeRef = errors.New("partition: net references an out-of-range node")

	// ErrBadPartitionID indicates a node's partition assignment was
	// neither 0 nor 1 when a partition-relative operation needed it.
	ErrBadPartitionID = errors.New("partition: node has no valid partition assignment")

	// ErrCancelled indicates a *runctx.Context's ShouldCancel returned
	// true before Run reached its stale-cycle limit.
	ErrCancelled = errors.New("partition: run cancelled")
)

func partitionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
