// Package eval contains static position evaluation: material balance,
// piece-square tables and a king-safety table switch between middlegame and
// endgame.
package eval

import (
	"context"

	"github.com/kestrelchess/tempo/pkg/board"
)

// Evaluator is a static position evaluator, returning a White-relative
// centipawn score: positive favors White regardless of the side to move.
type Evaluator interface {
	Evaluate(ctx context.Context, s board.State) Score
}

// endgameMaterialThreshold is the total non-king material, in centipawns,
// below which the king piece-square tables switch from the middlegame table
// (favoring a castled, sheltered king) to the endgame table (favoring an
// active, centralized king).
const endgameMaterialThreshold = 1500

// Classic is a material-plus-piece-square-table evaluator.
type Classic struct{}

func (Classic) Evaluate(ctx context.Context, s board.State) Score {
	return Evaluate(s)
}

// Evaluate returns the White-relative centipawn score of s: material balance
// plus piece-square table bonuses, with the king table chosen by how much
// non-king material remains on the board.
func Evaluate(s board.State) Score {
	var totalMaterialNoKings Score
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if t := s.Grid[r][c].Type(); t != board.King {
				totalMaterialNoKings += NominalValue(t)
			}
		}
	}

	var score Score
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.Grid[r][c]
			if p.IsEmpty() {
				continue
			}

			t := p.Type()
			val := NominalValue(t)

			idx := r*8 + c
			blackIdx := (7-r)*8 + c

			if p.IsWhite() {
				score += val
				score += pstBonus(t, idx, totalMaterialNoKings)
			} else {
				score -= val
				score -= pstBonus(t, blackIdx, totalMaterialNoKings)
			}
		}
	}
	return score
}

func pstBonus(t board.PieceType, idx int, totalMaterialNoKings Score) Score {
	switch t {
	case board.Pawn:
		return Score(pawnPST[idx])
	case board.Knight:
		return Score(knightPST[idx])
	case board.Bishop:
		return Score(bishopPST[idx])
	case board.Rook:
		return Score(rookPST[idx])
	case board.Queen:
		return Score(queenPST[idx])
	case board.King:
		if totalMaterialNoKings < endgameMaterialThreshold {
			return Score(kingEndgamePST[idx])
		}
		return Score(kingMiddlegamePST[idx])
	default:
		return 0
	}
}

// NominalValue is the absolute material value of a piece type, in
// centipawns. The king has an arbitrary large value so it always dominates
// material comparisons; it never actually gets captured.
func NominalValue(t board.PieceType) Score {
	switch t {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddlegamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}
