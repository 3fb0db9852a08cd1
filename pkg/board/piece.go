package board

import "strings"

// PieceType represents a chess piece kind with no color: pawn, knight, etc.
// Used for promotions and material/positional lookups, where color is either
// implied or irrelevant.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of non-empty piece types, for iteration.
const NumPieceTypes = int(King)

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return ""
	}
}

// Piece represents an occupant of a board square: a colored piece, or Empty. An
// 8x8 grid of Piece is the entire piece-placement part of a BoardState.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NewPiece returns the colored piece of the given type and color.
func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType {
		return Empty
	}
	if c == White {
		return WhitePawn + Piece(t-Pawn)
	}
	return BlackPawn + Piece(t-Pawn)
}

// IsEmpty returns true iff the square holding this piece is unoccupied.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Type returns the piece type, or NoPieceType if empty.
func (p Piece) Type() PieceType {
	switch {
	case p == Empty:
		return NoPieceType
	case p <= WhiteKing:
		return Pawn + PieceType(p-WhitePawn)
	default:
		return Pawn + PieceType(p-BlackPawn)
	}
}

// Color returns the piece's color. The second return is false if empty.
func (p Piece) Color() (Color, bool) {
	switch {
	case p == Empty:
		return White, false
	case p <= WhiteKing:
		return White, true
	default:
		return Black, true
	}
}

func (p Piece) IsWhite() bool {
	c, ok := p.Color()
	return ok && c == White
}

func (p Piece) IsBlack() bool {
	c, ok := p.Color()
	return ok && c == Black
}

// ParsePiece parses a single FEN-style piece character: uppercase for white,
// lowercase for black.
func ParsePiece(r rune) (Piece, bool) {
	t, ok := ParsePieceType(r)
	if !ok {
		return Empty, false
	}
	if r >= 'a' && r <= 'z' {
		return NewPiece(t, Black), true
	}
	return NewPiece(t, White), true
}

// String renders the piece as a single FEN character, or " " if empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	s := p.Type().String()
	if p.IsWhite() {
		return strings.ToUpper(s)
	}
	return s
}
