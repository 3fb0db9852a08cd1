// Package uci contains a synchronous driver for using the engine under the
// UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/kestrelchess/tempo/pkg/engine"
	"github.com/kestrelchess/tempo/pkg/eval"
	"github.com/kestrelchess/tempo/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

const ProtocolName = "uci"

// timeBudgetBuffer is subtracted from every derived time budget to leave
// room for GUI/OS overhead between the budget expiring and bestmove
// actually reaching the GUI.
const timeBudgetBuffer = 100 * time.Millisecond

// defaultMovesToGo is assumed when the GUI hasn't told us how many moves
// remain to the next time control.
const defaultMovesToGo = 35

// Driver implements a synchronous UCI driver for an engine: one goroutine
// reads commands and writes replies, running each search to completion (or
// until its deadline) before reading the next line. There is no "stop"
// that can interrupt an in-flight search: by the time a line after "go" is
// read, the prior search has already finished, per this engine's
// single-threaded, synchronous design.
type Driver struct {
	e   *engine.Engine
	in  *bufio.Scanner
	out io.Writer

	depthLimit    int           // 0 == no cap beyond eval.MaxSearchPly
	defaultBudget time.Duration // used when "go" carries no time control at all
}

// Option configures a Driver.
type Option func(*Driver)

// WithDepthLimit caps every search at n plies, unless a "go" command gives
// its own "depth" or "infinite", which replaces the cap for that search.
// Used to honor an engine-options file's max_search_ply.
func WithDepthLimit(n int) Option {
	return func(d *Driver) {
		d.depthLimit = n
	}
}

// WithDefaultBudget overrides the flat time budget used when a "go" command
// supplies no movetime and no clock at all. Used to honor an
// engine-options file's think_time_ms.
func WithDefaultBudget(budget time.Duration) Option {
	return func(d *Driver) {
		d.defaultBudget = budget
	}
}

// NewDriver returns a driver reading commands from in and writing replies
// to w.
func NewDriver(e *engine.Engine, in io.Reader, w io.Writer, opts ...Option) *Driver {
	d := &Driver{e: e, in: bufio.NewScanner(in), out: w}
	for _, fn := range opts {
		fn(d)
	}
	return d
}

// Run reads and processes commands until "quit" or EOF on the input.
func (d *Driver) Run(ctx context.Context) {
	logw.Infof(ctx, "UCI protocol initialized")

	for d.in.Scan() {
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		logw.Debugf(ctx, "<< %v", line)

		if !d.dispatch(ctx, line) {
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
	logw.Infof(ctx, "Input stream closed. Exiting")
}

func (d *Driver) writeln(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	logw.Debugf(context.Background(), ">> %v", line)
	_, _ = fmt.Fprintln(d.out, line)
}

// dispatch handles one command line. It returns false if the driver should
// stop reading further input.
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch strings.ToLower(cmd) {
	case "uci":
		// Identify, then acknowledge UCI mode. This engine exposes no
		// "option" lines: there is no hash size, no opening book toggle,
		// nothing the GUI needs to configure.
		d.writeln("id name %v", d.e.Name())
		d.writeln("id author %v", d.e.Author())
		d.writeln("uciok")

	case "isready":
		d.writeln("readyok")

	case "debug", "setoption", "register", "ponderhit":
		// Recognized but inert: no debug mode, no configurable options, no
		// registration, and ponder is never offered in the first place.

	case "ucinewgame":
		_ = d.e.Reset(ctx, fen.Initial)

	case "position":
		d.handlePosition(ctx, args, line)

	case "go":
		d.handleGo(ctx, args)

	case "stop":
		// No active search can be running while this line is read (see the
		// Driver doc comment); nothing to do.

	case "quit":
		return false

	default:
		logw.Warningf(ctx, "Unknown command %q: %v", cmd, args)
	}
	return true
}

// handlePosition implements "position (startpos | fen <FEN>) [moves ...]":
// reset the master state, then replay each move in order. A move that
// isn't in the current legal-move set stops further replay, per spec.
func (d *Driver) handlePosition(ctx context.Context, args []string, line string) {
	if len(args) == 0 {
		logw.Errorf(ctx, "Missing position arguments: %v", line)
		return
	}

	position := fen.Initial
	rest := args[1:]
	if args[0] == "fen" {
		fenEnd := 1
		for fenEnd < len(args) && args[fenEnd] != "moves" {
			fenEnd++
		}
		if fenEnd == 1 {
			logw.Errorf(ctx, "Invalid position: %v", line)
			return
		}
		position = strings.Join(args[1:fenEnd], " ")
		rest = args[fenEnd:]
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "Invalid position %q: %v", position, err)
		return
	}

	if len(rest) == 0 || rest[0] != "moves" {
		return
	}
	for _, mv := range rest[1:] {
		if err := d.e.Move(ctx, mv); err != nil {
			logw.Warningf(ctx, "Stopping move replay at %q: %v", mv, err)
			return
		}
	}
}

// handleGo implements "go [wtime N] [btime N] [winc N] [binc N]
// [movestogo N] [movetime N] [depth N] [infinite]": derive a deadline,
// search synchronously, and emit "info" lines and a final "bestmove".
func (d *Driver) handleGo(ctx context.Context, args []string) {
	var budget goOptions
	var depthArg lang.Optional[int]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "depth":
			key := args[i]
			i++
			if i == len(args) {
				logw.Errorf(ctx, "Missing argument for %v", key)
				return
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				logw.Errorf(ctx, "Invalid argument for %v: %v", key, err)
				return
			}
			if key == "depth" {
				depthArg = lang.Some(n)
				continue
			}
			budget.set(key, n)

		case "infinite":
			// No external cancellation is supported in this single-threaded
			// design (see pkg/search), so "infinite" just raises the depth
			// cap to the deepest depth this process supports; the time
			// budget below still applies.
			depthArg = lang.Some(eval.MaxSearchPly)

		default:
			// searchmoves, ponder, mate, nodes: silently ignored.
		}
	}

	// A depth explicit in this "go" command wins over the driver's own
	// configured cap, which wins over no limit at all (0).
	depthLimit := d.depthLimit
	if v, ok := depthArg.V(); ok {
		depthLimit = v
	}

	white := d.e.SideToMove() == board.White
	deadline := time.Now().Add(d.timeBudget(budget, white))

	opt := search.Options{
		DepthLimit: depthLimit,
		Deadline:   deadline,
		Info: func(ctx context.Context, pv search.PV) {
			d.writeln("%v", formatInfo(pv))
		},
	}

	pv := d.e.Go(ctx, opt)
	d.writeln("info string %v", engine.FormatNodeRate(pv.Nodes, pv.Time))

	if len(pv.Moves) == 0 {
		// No legal move: checkmate or stalemate at the root.
		d.writeln("bestmove 0000")
		return
	}
	d.writeln("bestmove %v", pv.Moves[0])
}

// goOptions holds the parsed time-control arguments of a "go" command.
type goOptions struct {
	wtime, btime, winc, binc, movestogo, movetime int
}

func (g *goOptions) set(key string, n int) {
	switch key {
	case "wtime":
		g.wtime = n
	case "btime":
		g.btime = n
	case "winc":
		g.winc = n
	case "binc":
		g.binc = n
	case "movestogo":
		g.movestogo = n
	case "movetime":
		g.movetime = n
	}
}

// timeBudget derives the search time budget from a "go" command's
// arguments, per the buffered formula: movetime wins outright; otherwise
// the side to move's clock and increment are divided by the moves
// remaining to the next time control (defaulting to 35 if movestogo is
// absent or out of [1,79]), capped at half the remaining clock; otherwise
// the driver's configured default (2 seconds less the buffer, unless
// overridden by WithDefaultBudget, whose value is used as is).
func (d *Driver) timeBudget(g goOptions, white bool) time.Duration {
	switch {
	case g.movetime > 0:
		b := time.Duration(g.movetime)*time.Millisecond - timeBudgetBuffer
		return maxDuration(10*time.Millisecond, b)

	case g.wtime > 0 || g.btime > 0:
		myTime, myInc := g.wtime, g.winc
		if !white {
			myTime, myInc = g.btime, g.binc
		}

		remaining := defaultMovesToGo
		if g.movestogo > 0 && g.movestogo < 80 {
			remaining = g.movestogo
		}

		b := time.Duration(myTime/remaining+myInc)*time.Millisecond - timeBudgetBuffer
		ceiling := time.Duration(myTime/2)*time.Millisecond - timeBudgetBuffer
		if b > ceiling {
			b = ceiling
		}
		return maxDuration(10*time.Millisecond, b)

	default:
		if d.defaultBudget > 0 {
			return d.defaultBudget
		}
		return 2000*time.Millisecond - timeBudgetBuffer
	}
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

// formatInfo renders one completed iterative-deepening depth as a UCI
// "info" line: "info depth 2 score cp 214 time 1242 nodes 2124 nps 1710
// pv e2e4".
func formatInfo(pv search.PV) string {
	parts := []string{"info", fmt.Sprintf("depth %v", pv.Depth)}

	if eval.IsMateScore(pv.Score) {
		n := eval.MateIn(pv.Score)
		if pv.Score < 0 {
			n = -n
		}
		parts = append(parts, fmt.Sprintf("score mate %v", n))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", int(pv.Score)))
	}

	parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
	parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))

	var nps uint64
	if pv.Time > 0 {
		nps = uint64(float64(pv.Nodes) / pv.Time.Seconds())
	}
	parts = append(parts, fmt.Sprintf("nps %v", nps))

	if len(pv.Moves) > 0 {
		moves := make([]string, len(pv.Moves))
		for i, m := range pv.Moves {
			moves[i] = m.String()
		}
		parts = append(parts, "pv "+strings.Join(moves, " "))
	}
	return strings.Join(parts, " ")
}
