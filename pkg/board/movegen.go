package board

// PseudoLegalMoves returns every move legal by piece-movement rules, ignoring
// whether it leaves the mover's own king in check. If capturesOnly, only
// captures and capture-promotions are generated (castling and quiet pawn
// pushes are suppressed).
func (s *State) PseudoLegalMoves(capturesOnly bool) []Move {
	var moves []Move
	white := s.SideToMove == White

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.Grid[r][c]
			if p.IsEmpty() || p.IsWhite() != white {
				continue
			}
			from := Square{r, c}
			switch p.Type() {
			case Pawn:
				s.genPawnMoves(from, &moves, capturesOnly)
			case Knight:
				s.genStepMoves(from, knightDeltas[:], &moves, capturesOnly)
			case Bishop:
				s.genSlidingMoves(from, bishopDirs[:], &moves, capturesOnly)
			case Rook:
				s.genSlidingMoves(from, rookDirs[:], &moves, capturesOnly)
			case Queen:
				s.genSlidingMoves(from, rookDirs[:], &moves, capturesOnly)
				s.genSlidingMoves(from, bishopDirs[:], &moves, capturesOnly)
			case King:
				s.genKingMoves(from, &moves, capturesOnly)
			}
		}
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves to those that do not leave the mover's
// own king in check.
func (s *State) LegalMoves(capturesOnly bool) []Move {
	pseudo := s.PseudoLegalMoves(capturesOnly)
	white := s.SideToMove == White

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := s.Apply(m)
		if !next.IsKingInCheck(white) {
			legal = append(legal, m)
		}
	}
	return legal
}

func canCapture(mover, target Piece) bool {
	if target.IsEmpty() {
		return false
	}
	return mover.IsWhite() != target.IsWhite()
}

func (s *State) addMove(from, to Square, moves *[]Move, promo PieceType, ksc, qsc, ep bool) {
	if !from.IsValid() || !to.IsValid() {
		return
	}
	mover := s.At(from)
	target := s.At(to)
	if mover.IsEmpty() {
		return
	}
	if !target.IsEmpty() && mover.IsWhite() == target.IsWhite() {
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Promotion: promo, IsKingSideCastle: ksc, IsQueenSideCastle: qsc, IsEnPassant: ep})
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (s *State) genPawnMoves(from Square, moves *[]Move, capturesOnly bool) {
	white := s.SideToMove == White
	dir := 1
	if white {
		dir = -1
	}
	promotionRank := 7
	if white {
		promotionRank = 0
	}
	startRank := 1
	if white {
		startRank = 6
	}

	push := Square{from.Row + dir, from.Col}
	if !capturesOnly && push.IsValid() && s.At(push).IsEmpty() {
		if push.Row == promotionRank {
			for _, promo := range promotionPieces {
				s.addMove(from, push, moves, promo, false, false, false)
			}
		} else {
			s.addMove(from, push, moves, NoPieceType, false, false, false)
		}

		doublePush := Square{from.Row + 2*dir, from.Col}
		if from.Row == startRank && doublePush.IsValid() && s.At(doublePush).IsEmpty() {
			s.addMove(from, doublePush, moves, NoPieceType, false, false, false)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := Square{from.Row + dir, from.Col + dc}
		if !to.IsValid() {
			continue
		}
		target := s.At(to)
		if canCapture(s.At(from), target) {
			if to.Row == promotionRank {
				for _, promo := range promotionPieces {
					s.addMove(from, to, moves, promo, false, false, false)
				}
			} else {
				s.addMove(from, to, moves, NoPieceType, false, false, false)
			}
		}
		if target.IsEmpty() && to == s.EnPassant {
			s.addMove(from, to, moves, NoPieceType, false, false, true)
		}
	}
}

func (s *State) genStepMoves(from Square, deltas [][2]int, moves *[]Move, capturesOnly bool) {
	for _, d := range deltas {
		to := Square{from.Row + d[0], from.Col + d[1]}
		if capturesOnly {
			if to.IsValid() && !s.At(to).IsEmpty() {
				s.addMove(from, to, moves, NoPieceType, false, false, false)
			}
			continue
		}
		s.addMove(from, to, moves, NoPieceType, false, false, false)
	}
}

func (s *State) genSlidingMoves(from Square, dirs [][2]int, moves *[]Move, capturesOnly bool) {
	for _, dir := range dirs {
		for i := 1; i < 8; i++ {
			to := Square{from.Row + dir[0]*i, from.Col + dir[1]*i}
			if !to.IsValid() {
				break
			}
			target := s.At(to)
			if target.IsEmpty() {
				if !capturesOnly {
					s.addMove(from, to, moves, NoPieceType, false, false, false)
				}
				continue
			}
			if target.IsWhite() != s.At(from).IsWhite() {
				s.addMove(from, to, moves, NoPieceType, false, false, false)
			}
			break
		}
	}
}

func (s *State) genKingMoves(from Square, moves *[]Move, capturesOnly bool) {
	s.genStepMoves(from, kingDeltas[:], moves, capturesOnly)
	if capturesOnly {
		return
	}

	white := s.SideToMove == White
	row := 7
	if !white {
		row = 0
	}
	kingSide, queenSide := WhiteKingSideCastle, WhiteQueenSideCastle
	if !white {
		kingSide, queenSide = BlackKingSideCastle, BlackQueenSideCastle
	}

	if s.Castling.IsAllowed(kingSide) &&
		s.Grid[row][5] == Empty && s.Grid[row][6] == Empty &&
		!s.IsSquareAttacked(Square{row, 4}, !white) &&
		!s.IsSquareAttacked(Square{row, 5}, !white) &&
		!s.IsSquareAttacked(Square{row, 6}, !white) {
		s.addMove(Square{row, 4}, Square{row, 6}, moves, NoPieceType, true, false, false)
	}
	if s.Castling.IsAllowed(queenSide) &&
		s.Grid[row][1] == Empty && s.Grid[row][2] == Empty && s.Grid[row][3] == Empty &&
		!s.IsSquareAttacked(Square{row, 4}, !white) &&
		!s.IsSquareAttacked(Square{row, 3}, !white) &&
		!s.IsSquareAttacked(Square{row, 2}, !white) {
		s.addMove(Square{row, 4}, Square{row, 2}, moves, NoPieceType, false, true, false)
	}
}

// IsCapture reports whether m is a capture (including en passant) in s.
func (s *State) IsCapture(m Move) bool {
	return m.IsEnPassant || !s.At(m.To).IsEmpty()
}
