// Package board contains the chess board representation, move generation,
// attack detection and move application used by the search.
package board

import (
	"strings"
)

// PositionKey canonically identifies a position (grid + side to move +
// castling rights + en-passant target) for threefold-repetition detection.
// Clocks and move numbers are deliberately excluded.
type PositionKey string

// State is the board state: an 8x8 piece grid, side to move, castling
// rights, en-passant target, clocks and repetition history. It is a value
// type: the search copies it by value at every ply and never mutates a
// caller's copy (see Apply). Only MasterApply, used by the protocol
// adapter at the root, mutates its receiver in place.
type State struct {
	Grid           [8][8]Piece
	SideToMove     Color
	Castling       Castling
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int

	// Repetitions counts occurrences of each position reached so far in the
	// game, keyed by PositionKey. Only MasterApply adds to it; Apply (used
	// inside search) never touches it, per the design note in SPEC_FULL.md.
	Repetitions map[PositionKey]int
}

// NewStartState returns the standard chess starting position.
func NewStartState() State {
	var s State
	s.Grid = [8][8]Piece{
		{BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook},
		{BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn},
		{}, {}, {}, {},
		{WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn},
		{WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook},
	}
	s.SideToMove = White
	s.Castling = FullCastlingRights
	s.EnPassant = NoSquare
	s.HalfmoveClock = 0
	s.FullmoveNumber = 1
	s.Repetitions = map[PositionKey]int{}
	s.Repetitions[s.Key()]++
	return s
}

// At returns the piece occupying the given square, or Empty if off-board.
func (s *State) At(sq Square) Piece {
	if !sq.IsValid() {
		return Empty
	}
	return s.Grid[sq.Row][sq.Col]
}

// Key returns the canonical position key for repetition detection.
func (s *State) Key() PositionKey {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sb.WriteString(s.Grid[r][c].String())
		}
	}
	sb.WriteString(s.SideToMove.String())
	sb.WriteString(s.Castling.String())
	sb.WriteString("-")
	sb.WriteString(s.EnPassant.String())
	return PositionKey(sb.String())
}

// King locates the king of the given color. ok is false if absent, a
// degenerate state that can arise from hand-constructed search positions.
func (s *State) King(white bool) (Square, bool) {
	want := WhiteKing
	if !white {
		want = BlackKing
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if s.Grid[r][c] == want {
				return Square{Row: r, Col: c}, true
			}
		}
	}
	return NoSquare, false
}

// IsSquareAttacked reports whether any piece of the given color attacks
// (r,c) in this state. It does not consider en passant or castling, and is
// independent of whose turn it actually is.
func (s *State) IsSquareAttacked(sq Square, byWhite bool) bool {
	pawnDir := -1
	if byWhite {
		pawnDir = 1
	}
	attackingPawn := WhitePawn
	if !byWhite {
		attackingPawn = BlackPawn
	}
	if s.At(Square{sq.Row + pawnDir, sq.Col - 1}) == attackingPawn {
		return true
	}
	if s.At(Square{sq.Row + pawnDir, sq.Col + 1}) == attackingPawn {
		return true
	}

	attackingKnight := WhiteKnight
	if !byWhite {
		attackingKnight = BlackKnight
	}
	for _, d := range knightDeltas {
		if s.At(Square{sq.Row + d[0], sq.Col + d[1]}) == attackingKnight {
			return true
		}
	}

	attackingRook, attackingBishop, attackingQueen := WhiteRook, WhiteBishop, WhiteQueen
	if !byWhite {
		attackingRook, attackingBishop, attackingQueen = BlackRook, BlackBishop, BlackQueen
	}
	for _, dir := range rookDirs {
		for i := 1; i < 8; i++ {
			next := Square{sq.Row + dir[0]*i, sq.Col + dir[1]*i}
			if !next.IsValid() {
				break
			}
			p := s.At(next)
			if p == attackingRook || p == attackingQueen {
				return true
			}
			if p != Empty {
				break
			}
		}
	}
	for _, dir := range bishopDirs {
		for i := 1; i < 8; i++ {
			next := Square{sq.Row + dir[0]*i, sq.Col + dir[1]*i}
			if !next.IsValid() {
				break
			}
			p := s.At(next)
			if p == attackingBishop || p == attackingQueen {
				return true
			}
			if p != Empty {
				break
			}
		}
	}

	attackingKing := WhiteKing
	if !byWhite {
		attackingKing = BlackKing
	}
	for _, d := range kingDeltas {
		if s.At(Square{sq.Row + d[0], sq.Col + d[1]}) == attackingKing {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether the given color's king is in check. Returns
// false if the king is absent.
func (s *State) IsKingInCheck(white bool) bool {
	k, ok := s.King(white)
	if !ok {
		return false
	}
	return s.IsSquareAttacked(k, !white)
}

var (
	knightDeltas = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDeltas   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs     = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)
