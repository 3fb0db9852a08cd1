package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/eval"
)

// Run performs synchronous iterative deepening from s until Options.Deadline
// passes, Options.DepthLimit is reached, or a forced mate is found. Unlike a
// goroutine/channel search harness, this call blocks until done: it is
// reached through Engine.Go, which the UCI adapter calls from the one
// goroutine reading stdin.
//
// At each depth every root move is searched to that depth and the ones
// tying for best score (from the root side's perspective) are collected;
// the mover is picked uniformly at random among them, matching the
// reference engine's tie-breaking and keeping otherwise-identical engine
// instances from always playing the same game.
func Run(ctx context.Context, ev eval.Evaluator, s board.State, opt Options) PV {
	start := time.Now()
	ctrl := NewControl(opt.Deadline)

	rootMoves := s.LegalMoves(false)
	if len(rootMoves) == 0 {
		return PV{Time: time.Since(start)}
	}
	OrderMoves(&s, rootMoves)

	depthLimit := opt.DepthLimit
	if depthLimit <= 0 || depthLimit > eval.MaxSearchPly {
		depthLimit = eval.MaxSearchPly
	}

	rng := opt.rand()
	engineWhite := s.SideToMove == board.White

	best := rootMoves[0]
	bestScore := -eval.MateScore - 1
	lastDepth := 0

	for depth := 1; depth <= depthLimit; depth++ {
		iterStart := time.Now()
		nodesAtStart := ctrl.Nodes()

		iterBest := -eval.MateScore - 1
		var candidates []board.Move
		halted := false

		for _, m := range rootMoves {
			next := s.Apply(m)
			v := AlphaBeta(ctx, ctrl, ev, next, depth-1, -eval.MateScore-1, eval.MateScore+1, !engineWhite)
			if ctrl.Halted() {
				halted = true
				break
			}

			scoreForEngine := v
			if !engineWhite {
				scoreForEngine = -v
			}
			scoreForEngine += eval.Score(opt.Noise.Evaluate(ctx, next))

			switch {
			case scoreForEngine > iterBest:
				iterBest = scoreForEngine
				candidates = []board.Move{m}
			case scoreForEngine == iterBest:
				candidates = append(candidates, m)
			}
		}

		if halted || len(candidates) == 0 {
			break
		}

		best = candidates[rng.Intn(len(candidates))]
		bestScore = iterBest
		lastDepth = depth

		if opt.Info != nil {
			opt.Info(ctx, PV{
				Depth: depth,
				Moves: []board.Move{best},
				Score: bestScore,
				Nodes: ctrl.Nodes() - nodesAtStart,
				Time:  time.Since(iterStart),
			})
		}

		if !opt.Deadline.IsZero() && time.Now().After(opt.Deadline) {
			break
		}
		if eval.IsMateScore(bestScore) {
			break
		}
	}

	return PV{
		Depth: lastDepth,
		Moves: []board.Move{best},
		Score: bestScore,
		Nodes: ctrl.Nodes(),
		Time:  time.Since(start),
	}
}

func (o Options) rand() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}
