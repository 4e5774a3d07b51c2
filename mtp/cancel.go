package mtp

import "go.uber.org/atomic"

// CancelToken is a sticky, shared cancellation flag (§3 "Cancellation
// token", §9 "Cancellation as shared state"). Once set it stays set;
// several stream wrappers (e.g. the two sides of a JoinedInputStream) can
// hold the same token so cancelling the outer stream propagates to both
// children without either owning the other.
type CancelToken struct {
	flag atomic.Bool
}

// NewCancelToken returns a fresh, unset token.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel sets the sticky flag. Safe to call more than once or from
// another goroutine than the one driving the stream.
func (c *CancelToken) Cancel() {
	if c == nil {
		return
	}
	c.flag.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (c *CancelToken) Cancelled() bool {
	return c != nil && c.flag.Load()
}

// checkCancelled is the hook every stream implementation calls at the
// start of Read/Write, per §4.2's Cancellable contract.
func (c *CancelToken) checkCancelled() error {
	if c.Cancelled() {
		return &CancelledError{}
	}
	return nil
}
