package placer

import "math/rand"

// Options configures a placement run.
type Options struct {
	// Rand supplies randomness for initial scatter and extrema tie
	// breaks; callers own seeding for reproducibility.
	Rand *rand.Rand

	// MaxOuterIterations bounds how many solve/legalize rounds Place
	// runs before stopping even if HPWL hasn't converged.
	MaxOuterIterations int

	// ConvergenceTol stops the outer loop early once HPWL changes by
	// less than this fraction between rounds.
	ConvergenceTol float64

	// BlockMinWidth/BlockMinHeight are the smallest legalization block
	// dimensions the recursive bisection will still split further. The
	// source hardcodes 4x the min row height for width and 1x for
	// height; this package takes them as inputs so callers can derive
	// them from the technology's site size instead.
	BlockMinWidth  int64
	BlockMinHeight int64

	// OnIteration, if set, is invoked with the current netlist after
	// every solve/legalize round (including the final one), so a caller
	// can inspect or snapshot intermediate placements. Place never
	// mutates nl concurrently with this call.
	OnIteration func(*Netlist)
}

// DefaultOptions returns package defaults given a row height (site
// height) to derive the legalization block minimums from, matching the
// source's blockMinHeight/blockMinWidth=4*blockMinHeight relationship.
func DefaultOptions(rng *rand.Rand, rowHeight int64) Options {
	return Options{
		Rand:               rng,
		MaxOuterIterations: 10,
		ConvergenceTol:     0.01,
		BlockMinHeight:     rowHeight,
		BlockMinWidth:      4 * rowHeight,
	}
}
