package board

const (
	repetitionLimit   = 3
	noProgressLimit   = 100
)

// Apply returns the successor state after playing m, without mutating s or
// touching clocks and repetition history — those are the master update's
// job (see MasterApply). This is what the search calls at every node: the
// receiver is already a copy (Go passes it by value), so mutating it in
// place and returning it produces a fresh value with no visible side effect
// on the caller.
func (s State) Apply(m Move) State {
	s.applyRaw(m)
	return s
}

// applyRaw mutates the receiver in place: grid, castling rights, en-passant
// target and side to move. It does not touch HalfmoveClock, FullmoveNumber
// or Repetitions.
func (s *State) applyRaw(m Move) {
	white := s.SideToMove == White
	piece := s.Grid[m.From.Row][m.From.Col]
	captured := s.Grid[m.To.Row][m.To.Col]
	epCaptureRow := m.To.Row - 1
	if white {
		epCaptureRow = m.To.Row + 1
	}

	s.Grid[m.To.Row][m.To.Col] = piece
	s.Grid[m.From.Row][m.From.Col] = Empty

	switch {
	case m.Promotion != NoPieceType:
		s.Grid[m.To.Row][m.To.Col] = NewPiece(m.Promotion, s.SideToMove)
	case m.IsKingSideCastle:
		s.Grid[m.From.Row][5] = s.Grid[m.From.Row][7]
		s.Grid[m.From.Row][7] = Empty
	case m.IsQueenSideCastle:
		s.Grid[m.From.Row][3] = s.Grid[m.From.Row][0]
		s.Grid[m.From.Row][0] = Empty
	case m.IsEnPassant:
		s.Grid[epCaptureRow][m.To.Col] = Empty
	}

	s.EnPassant = NoSquare
	if piece.Type() == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		s.EnPassant = Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}

	switch piece {
	case WhiteKing:
		s.Castling = s.Castling.Clear(WhiteKingSideCastle | WhiteQueenSideCastle)
	case BlackKing:
		s.Castling = s.Castling.Clear(BlackKingSideCastle | BlackQueenSideCastle)
	case WhiteRook:
		if m.From == (Square{7, 0}) {
			s.Castling = s.Castling.Clear(WhiteQueenSideCastle)
		} else if m.From == (Square{7, 7}) {
			s.Castling = s.Castling.Clear(WhiteKingSideCastle)
		}
	case BlackRook:
		if m.From == (Square{0, 0}) {
			s.Castling = s.Castling.Clear(BlackQueenSideCastle)
		} else if m.From == (Square{0, 7}) {
			s.Castling = s.Castling.Clear(BlackKingSideCastle)
		}
	}
	switch captured {
	case WhiteRook:
		if m.To == (Square{7, 0}) {
			s.Castling = s.Castling.Clear(WhiteQueenSideCastle)
		} else if m.To == (Square{7, 7}) {
			s.Castling = s.Castling.Clear(WhiteKingSideCastle)
		}
	case BlackRook:
		if m.To == (Square{0, 0}) {
			s.Castling = s.Castling.Clear(BlackQueenSideCastle)
		} else if m.To == (Square{0, 7}) {
			s.Castling = s.Castling.Clear(BlackKingSideCastle)
		}
	}

	s.SideToMove = s.SideToMove.Opponent()
}

// MasterApply plays m at the root: it calls applyRaw, then resets the
// halfmove clock on a pawn move or capture (else increments it), increments
// the fullmove number when the side to move becomes White again, and
// records the resulting position in the repetition history. Only the
// protocol adapter calls this, on the one persistent master State.
func (s *State) MasterApply(m Move) {
	piece := s.Grid[m.From.Row][m.From.Col]
	isPawn := piece.Type() == Pawn
	isCapture := s.IsCapture(m)

	s.applyRaw(m)

	if isPawn || isCapture {
		s.HalfmoveClock = 0
	} else {
		s.HalfmoveClock++
	}
	if s.SideToMove == White {
		s.FullmoveNumber++
	}
	if s.Repetitions == nil {
		s.Repetitions = map[PositionKey]int{}
	}
	s.Repetitions[s.Key()]++
}

// IsThreefoldRepetition reports whether the current position has been seen
// at least three times.
func (s *State) IsThreefoldRepetition() bool {
	return s.Repetitions[s.Key()] >= repetitionLimit
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100 plies
// (fifty full moves) without a pawn move or capture.
func (s *State) IsFiftyMoveDraw() bool {
	return s.HalfmoveClock >= noProgressLimit
}

// IsCheckmate reports whether the side to move has no legal moves and is in
// check.
func (s *State) IsCheckmate() bool {
	return len(s.LegalMoves(false)) == 0 && s.IsKingInCheck(s.SideToMove == White)
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (s *State) IsStalemate() bool {
	return len(s.LegalMoves(false)) == 0 && !s.IsKingInCheck(s.SideToMove == White)
}

// GameEndStatus returns a human-readable game result string, or "" if the
// game is ongoing. Mirrors the UCI-adjacent checkGameEndStatus helper scenario
// 3 of the testable-properties section names directly.
func (s *State) GameEndStatus() string {
	switch {
	case s.IsCheckmate():
		if s.SideToMove == White {
			return "0-1 {Black mates}"
		}
		return "1-0 {White mates}"
	case s.IsStalemate():
		return "1/2-1/2 {Stalemate}"
	case s.IsThreefoldRepetition():
		return "1/2-1/2 {Draw by threefold repetition}"
	case s.IsFiftyMoveDraw():
		return "1/2-1/2 {Draw by fifty-move rule}"
	default:
		return ""
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
