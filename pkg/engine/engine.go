// Package engine wires board state, evaluation and search into the
// game-playing object the UCI driver talks to.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/kestrelchess/tempo/pkg/eval"
	"github.com/kestrelchess/tempo/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation and runtime options.
type Options struct {
	// Noise adds some centipawn randomness to each root move's score, so that
	// otherwise-identical engine instances don't always play the same game.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{noise=%v}", o.Noise)
}

// Engine encapsulates game-playing logic: the master board state plus the
// evaluator and search driver operating on it. Unlike the teacher's
// goroutine-backed engine, there is no active search handle to track: Go
// blocks its caller until the search completes or the deadline passes, per
// the single-threaded, synchronous design this spec calls for. There is
// also no transposition table or Zobrist table, since this spec has none.
type Engine struct {
	name, author string

	seed int64
	opts Options

	b     board.State
	ev    eval.Evaluator
	noise eval.Random

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithSeed configures the engine to use the given random seed for move
// tie-breaking and noise, instead of the default seed of zero.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithEvaluator overrides the default Classic evaluator. Exposed for tests.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) {
		e.ev = ev
	}
}

// New constructs an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		ev:     eval.Classic{},
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Options returns the engine's current runtime options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// Position returns the current master position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b)
}

// SideToMove returns the color on move in the master position.
func (e *Engine) SideToMove() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.SideToMove
}

// GameEndStatus returns the master position's game-end status string, or ""
// if the game is ongoing. See board.State.GameEndStatus.
func (e *Engine) GameEndStatus() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.GameEndStatus()
}

// Reset resets the engine's master state to the position in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.b = s

	e.noise = eval.Random{}
	if e.opts.Noise > 0 {
		e.noise = eval.NewRandom(int(e.opts.Noise), e.seed)
	}

	logw.Infof(ctx, "Reset %v, noise=%vcp", position, e.opts.Noise)
	return nil
}

// Move plays the given UCI move (e.g. "e2e4" or "a7a8q") on the master
// state via MasterApply, usually an opponent move relayed by the GUI. The
// candidate must match one of the current legal moves exactly, recovering
// castling/en-passant/promotion metadata from the match.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %v", err)
	}

	for _, m := range e.b.LegalMoves(false) {
		if m.Equals(candidate) {
			e.b.MasterApply(m)
			logw.Infof(ctx, "Move %v: %v", m, fen.Encode(e.b))
			return nil
		}
	}
	return fmt.Errorf("invalid move: %v", candidate)
}

// Go runs iterative-deepening search synchronously from the current master
// state to completion (deadline, depth limit, or proven mate), and returns
// the final principal variation. It does not mutate the master state; the
// caller applies the chosen move itself via Move, like any other move.
func (e *Engine) Go(ctx context.Context, opt search.Options) search.PV {
	e.mu.Lock()
	s := e.b
	noise := e.noise
	e.mu.Unlock()

	opt.Noise = noise
	opt.Seed = e.seed

	logw.Infof(ctx, "Go %v, opt=%v", s.Key(), opt)
	return search.Run(ctx, e.ev, s, opt)
}
