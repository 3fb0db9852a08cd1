// Package search implements fail-hard alpha-beta search with quiescence and
// iterative deepening over the pkg/board grid representation.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/eval"
	"go.uber.org/atomic"
)

// checkTimeMask bounds how often a running search samples the clock: every
// 1024th node, matching the reference engine's CHECK_TIME_MASK.
const checkTimeMask = 1023

// Control is the process-wide state a single "go" search shares across every
// recursive call: a node counter and a cancellation flag, both atomics. Only
// the search's own call stack reads and sets them; the UCI driver never
// touches a running search. There is deliberately no transposition table or
// worker pool here: search is single-threaded and synchronous end to end.
type Control struct {
	Deadline time.Time

	nodes  atomic.Uint64
	halted atomic.Bool
}

// NewControl returns a Control with the given wall-clock search deadline.
func NewControl(deadline time.Time) *Control {
	return &Control{Deadline: deadline}
}

// Node records a visited node and returns true if the search should stop:
// either because it was halted externally (Stop, or a prior time-out) or
// because this node's time check found the deadline has passed.
func (c *Control) Node() bool {
	n := c.nodes.Inc()
	if c.halted.Load() {
		return true
	}
	if n&checkTimeMask == 0 && !c.Deadline.IsZero() && time.Now().After(c.Deadline) {
		c.halted.Store(true)
	}
	return c.halted.Load()
}

// Stop halts the search at the next node check. Idempotent, safe to call
// concurrently with a running search.
func (c *Control) Stop() {
	c.halted.Store(true)
}

// Halted reports whether the search has been stopped.
func (c *Control) Halted() bool {
	return c.halted.Load()
}

// Nodes returns the number of nodes visited so far.
func (c *Control) Nodes() uint64 {
	return c.nodes.Load()
}

// PV is the principal variation produced by one completed iterative
// deepening pass.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Moves)
}

// Options configures a Run. Noise, if non-zero, nudges each root move's
// score to avoid deterministic play between identical engine instances.
type Options struct {
	DepthLimit int // 0 == MaxSearchPly
	Deadline   time.Time
	Noise      eval.Random

	// Seed drives the uniform-random tie-break among root moves with equal
	// scores. Same seed, same position and same depth always pick the same
	// move among the tied candidates.
	Seed int64

	// Info, if set, is called synchronously after every completed
	// iterative-deepening depth, before Run considers starting the next
	// one. The protocol adapter uses this to emit "info" lines.
	Info func(ctx context.Context, pv PV)
}
