package integrate

import (
	"sort"

	"github.com/edacore/pnrcore/chipdb"
)

// sortedKeys returns c's keys in ascending ObjectKey order. Every
// projection in this package walks a chipdb.Container through this
// helper rather than Each/Keys directly, since both document
// unspecified (Go map) iteration order and this package's node/terminal
// assignment order must be reproducible.
func sortedKeys[T chipdb.Named](c *chipdb.Container[T]) []chipdb.ObjectKey {
	keys := c.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
