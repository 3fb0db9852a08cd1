package search

import (
	"context"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/eval"
)

// Quiescence extends search past the main horizon along capture sequences
// (and, if the side to move is in check, along every legal reply) so the
// static evaluator is never trusted mid-exchange. maximizing tracks which
// side's score alpha/beta bound, independent of s.SideToMove.
func Quiescence(ctx context.Context, ctrl *Control, ev eval.Evaluator, s board.State, alpha, beta eval.Score, maximizing bool, ply int) eval.Score {
	if ctrl.Node() {
		return 0
	}
	if ply <= 0 {
		return ev.Evaluate(ctx, s)
	}

	standPat := ev.Evaluate(ctx, s)
	inCheck := s.IsKingInCheck(s.SideToMove == board.White)
	if inCheck {
		if maximizing {
			standPat -= eval.InCheckPenalty
		} else {
			standPat += eval.InCheckPenalty
		}
	}

	if maximizing {
		if standPat >= beta && !inCheck {
			return beta
		}
		alpha = eval.Max(alpha, standPat)
	} else {
		if standPat <= alpha && !inCheck {
			return alpha
		}
		beta = eval.Min(beta, standPat)
	}

	moves := s.LegalMoves(!inCheck)
	OrderMoves(&s, moves)

	if inCheck && len(moves) == 0 {
		if maximizing {
			return -(eval.MateScore + eval.MaxSearchPly + eval.Score(ply))
		}
		return eval.MateScore + eval.MaxSearchPly + eval.Score(ply)
	}
	if !inCheck && len(moves) == 0 {
		return standPat
	}

	if maximizing {
		for _, m := range moves {
			next := s.Apply(m)
			score := Quiescence(ctx, ctrl, ev, next, alpha, beta, false, ply-1)
			if ctrl.Halted() {
				return 0
			}
			alpha = eval.Max(alpha, score)
			if alpha >= beta {
				break
			}
		}
		return alpha
	}

	for _, m := range moves {
		next := s.Apply(m)
		score := Quiescence(ctx, ctrl, ev, next, alpha, beta, true, ply-1)
		if ctrl.Halted() {
			return 0
		}
		beta = eval.Min(beta, score)
		if alpha >= beta {
			break
		}
	}
	return beta
}
