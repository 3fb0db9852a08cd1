package search

import (
	"context"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/eval"
)

// AlphaBeta is fail-hard alpha-beta search with an explicit maximizing
// flag rather than the negamax convention: at every node the caller states
// whether this node maximizes or minimizes the score, and recursive calls
// flip it explicitly instead of negating the returned score. depth counts
// down to zero, at which point search falls through to Quiescence.
func AlphaBeta(ctx context.Context, ctrl *Control, ev eval.Evaluator, s board.State, depth int, alpha, beta eval.Score, maximizing bool) eval.Score {
	if ctrl.Node() {
		return 0
	}

	moves := s.LegalMoves(false)
	if len(moves) == 0 {
		if s.IsKingInCheck(s.SideToMove == board.White) {
			if maximizing {
				return -(eval.MateScore + eval.Score(depth))
			}
			return eval.MateScore + eval.Score(depth)
		}
		return eval.DrawScore
	}
	if s.IsThreefoldRepetition() || s.IsFiftyMoveDraw() {
		return eval.DrawScore
	}

	if depth == 0 {
		return Quiescence(ctx, ctrl, ev, s, alpha, beta, maximizing, eval.MaxQuiescencePly)
	}

	OrderMoves(&s, moves)

	if maximizing {
		best := -eval.MateScore - 1
		for _, m := range moves {
			next := s.Apply(m)
			v := AlphaBeta(ctx, ctrl, ev, next, depth-1, alpha, beta, false)
			if ctrl.Halted() {
				return 0
			}
			best = eval.Max(best, v)
			alpha = eval.Max(alpha, v)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := eval.MateScore + 1
	for _, m := range moves {
		next := s.Apply(m)
		v := AlphaBeta(ctx, ctrl, ev, next, depth-1, alpha, beta, true)
		if ctrl.Halted() {
			return 0
		}
		best = eval.Min(best, v)
		beta = eval.Min(beta, v)
		if beta <= alpha {
			break
		}
	}
	return best
}
