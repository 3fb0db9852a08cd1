package search

import "github.com/kestrelchess/tempo/pkg/board"

// mvvLvaValue is a compressed piece value used only for move ordering, not
// evaluation: {pawn, knight, bishop, rook, queen, king} = {1, 3, 3, 5, 9, 10}.
func mvvLvaValue(t board.PieceType) int {
	switch t {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 10
	default:
		return 0
	}
}

// OrderMoves scores moves by MVV-LVA (most valuable victim, least valuable
// attacker) plus a promotion bonus, then sorts them descending by score.
// Quiet moves score 0 and keep their generation order (SortByScore is
// stable), which is a reasonable default ordering for pseudo-legal moves
// fresh off the grid scan.
func OrderMoves(s *board.State, moves []board.Move) {
	for i, m := range moves {
		var score int
		if s.IsCapture(m) {
			attacker := mvvLvaValue(s.At(m.From).Type())
			var victim int
			if m.IsEnPassant {
				victim = mvvLvaValue(board.Pawn)
			} else {
				victim = mvvLvaValue(s.At(m.To).Type())
			}
			score = victim*100 - attacker
		}
		if m.Promotion != board.NoPieceType {
			score += mvvLvaValue(m.Promotion) * 100
		}
		moves[i].Score = score
	}
	board.SortByScore(moves)
}
