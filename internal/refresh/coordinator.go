// Package refresh coordinates list reloads. A monotonic ticket guards
// visible state against stale responses: when loads overlap, only the
// most recently initiated one may commit. Superseded loads are
// discarded at commit time, never aborted mid-flight.
package refresh

import "sync/atomic"

// Ticket identifies one load attempt.
type Ticket uint64

// Coordinator hands out monotonically increasing tickets. The zero
// value is ready to use.
type Coordinator struct {
	seq atomic.Uint64
}

// Begin registers a new load attempt and supersedes all earlier ones.
func (c *Coordinator) Begin() Ticket {
	return Ticket(c.seq.Add(1))
}

// Current reports whether t is still the latest issued ticket. Callers
// must hold the same lock that protects the state they are about to
// commit.
func (c *Coordinator) Current(t Ticket) bool {
	return uint64(t) == c.seq.Load()
}
