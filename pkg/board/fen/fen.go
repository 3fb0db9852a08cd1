// Package fen contains utilities for reading and writing board states in FEN
// notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kestrelchess/tempo/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a FEN string into a board.State. Halfmove and fullmove
// default to 0 and 1 if the FEN omits the last two fields.
func Decode(fenStr string) (board.State, error) {
	parts := strings.Fields(strings.TrimSpace(fenStr))
	if len(parts) < 4 || len(parts) > 6 {
		return board.State{}, fmt.Errorf("invalid number of fields in FEN: %q", fenStr)
	}

	var s board.State

	r, c := 0, 0
	for _, ch := range parts[0] {
		switch {
		case ch == '/':
			r++
			c = 0
		case unicode.IsDigit(ch):
			c += int(ch - '0')
		default:
			p, ok := board.ParsePiece(ch)
			if !ok {
				return board.State{}, fmt.Errorf("invalid piece %q in FEN: %q", ch, fenStr)
			}
			if r >= 8 || c >= 8 {
				return board.State{}, fmt.Errorf("invalid piece placement in FEN: %q", fenStr)
			}
			s.Grid[r][c] = p
			c++
		}
	}

	active, ok := parseColor(parts[1])
	if !ok {
		return board.State{}, fmt.Errorf("invalid active color in FEN: %q", fenStr)
	}
	s.SideToMove = active

	castling, ok := parseCastling(parts[2])
	if !ok {
		return board.State{}, fmt.Errorf("invalid castling in FEN: %q", fenStr)
	}
	s.Castling = castling

	s.EnPassant = board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return board.State{}, fmt.Errorf("invalid en passant in FEN: %q", fenStr)
		}
		s.EnPassant = sq
	}

	s.HalfmoveClock = 0
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return board.State{}, fmt.Errorf("invalid halfmove clock in FEN: %q", fenStr)
		}
		s.HalfmoveClock = n
	}

	s.FullmoveNumber = 1
	if len(parts) == 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 0 {
			return board.State{}, fmt.Errorf("invalid fullmove number in FEN: %q", fenStr)
		}
		s.FullmoveNumber = n
	}

	s.Repetitions = map[board.PositionKey]int{}
	s.Repetitions[s.Key()]++
	return s, nil
}

// Encode renders a board.State in FEN notation.
func Encode(s board.State) string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		blanks := 0
		for c := 0; c < 8; c++ {
			p := s.Grid[r][c]
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r < 7 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if !s.EnPassant.IsNone() {
		ep = s.EnPassant.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), s.SideToMove, s.Castling, ep, s.HalfmoveClock, s.FullmoveNumber)
}

func parseCastling(str string) (board.Castling, bool) {
	var c board.Castling
	if str == "-" {
		return c, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}
