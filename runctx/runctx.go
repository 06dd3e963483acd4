// Package runctx carries the two things a long-running pass needs from
// its caller that are not part of the pass's own data: a cooperative
// cancellation check and an optional progress log. Both are explicit
// parameters threaded through partition.Run, placer.Place, and
// groute.RouteNet rather than package-level state, so a pass stays
// reproducible and callable from a goroutine pool without hidden
// coupling between runs.
package runctx

// Context is passed by pointer into a pass's outer loop. A nil *Context
// is valid everywhere a Context is accepted: it never cancels and never
// logs, so existing callers that don't need either can pass nil.
type Context struct {
	// Logf, if set, receives progress messages (e.g. one per outer
	// iteration/cycle). Never called concurrently by a single pass.
	Logf func(format string, args ...any)

	// ShouldCancel, if set, is polled between outer-loop iterations. A
	// pass observing true stops at the next safe point, leaving
	// whatever it already committed in place, and reports ErrCancelled.
	ShouldCancel func() bool
}

// Log forwards to c.Logf if set. Safe to call on a nil *Context.
func (c *Context) Log(format string, args ...any) {
	if c != nil && c.Logf != nil {
		c.Logf(format, args...)
	}
}

// Cancelled reports whether the caller has asked the current pass to
// stop. Safe to call on a nil *Context, which never cancels.
func (c *Context) Cancelled() bool {
	return c != nil && c.ShouldCancel != nil && c.ShouldCancel()
}
