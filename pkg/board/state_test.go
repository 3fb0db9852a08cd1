package board_test

import (
	"sort"
	"testing"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, f string) board.State {
	t.Helper()
	s, err := fen.Decode(f)
	require.NoError(t, err)
	return s
}

func TestNewStartStateLegalMoves(t *testing.T) {
	s := board.NewStartState()

	moves := s.LegalMoves(false)
	assert.Len(t, moves, 20)

	captures := s.LegalMoves(true)
	assert.Empty(t, captures)
}

// Every legal move must leave the mover's own king safe: this is the
// defining property of LegalMoves and is checked across a handful of
// tactically loaded positions, not just the opening.
func TestLegalMovesNeverSelfCheck(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/pppq1ppp/2n1bn2/3pp1B1/3PP1b1/2N1BN2/PPPQ1PPP/R3K2R w KQkq - 4 8",
		"8/8/8/3k4/8/3K4/3P4/8 w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}

	for _, p := range positions {
		s := mustDecode(t, p)
		white := s.SideToMove == board.White
		for _, m := range s.LegalMoves(false) {
			next := s.Apply(m)
			assert.False(t, next.IsKingInCheck(white), "move %v in %q left king in check", m, p)
		}
	}
}

// Captures-only generation is always a subset of the full legal move set.
func TestCapturesOnlyIsSubsetOfLegalMoves(t *testing.T) {
	s := mustDecode(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")

	full := s.LegalMoves(false)
	fullSet := map[string]bool{}
	for _, m := range full {
		fullSet[m.String()] = true
	}

	for _, m := range s.LegalMoves(true) {
		assert.True(t, fullSet[m.String()], "capture %v not found in full legal move set", m)
	}
}

func TestEnPassantCapture(t *testing.T) {
	s := mustDecode(t, "8/8/8/3pP3/8/8/8/4K2k w - d6 0 1")

	var ep *board.Move
	for _, m := range s.PseudoLegalMoves(false) {
		if m.IsEnPassant {
			mm := m
			ep = &mm
		}
	}
	require.NotNil(t, ep)
	assert.Equal(t, "e5d6", ep.String())

	next := s.Apply(*ep)
	assert.True(t, next.At(board.Square{Row: 3, Col: 3}).IsEmpty(), "captured pawn should be removed")
}

func TestCastlingForbiddenThroughCheck(t *testing.T) {
	// Black rook on e8's file attacks e1: White king may not castle either way.
	s := mustDecode(t, "4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	for _, m := range s.LegalMoves(false) {
		assert.False(t, m.IsKingSideCastle || m.IsQueenSideCastle, "castling %v allowed while king in check", m)
	}
}

func TestCastlingForbiddenThroughAttackedSquare(t *testing.T) {
	// Black rook on f8 covers f1, the square the king crosses kingside.
	s := mustDecode(t, "5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	for _, m := range s.LegalMoves(false) {
		assert.False(t, m.IsKingSideCastle, "kingside castle allowed through attacked transit square")
	}
}

func TestCastlingAllowedWhenClear(t *testing.T) {
	s := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	var sides []string
	for _, m := range s.LegalMoves(false) {
		if m.IsKingSideCastle {
			sides = append(sides, "K")
		}
		if m.IsQueenSideCastle {
			sides = append(sides, "Q")
		}
	}
	sort.Strings(sides)
	assert.Equal(t, []string{"K", "Q"}, sides)
}

func TestCheckmateFoolsMate(t *testing.T) {
	s := mustDecode(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	assert.True(t, s.IsCheckmate())
	assert.False(t, s.IsStalemate())
	assert.Equal(t, "0-1 {Black mates}", s.GameEndStatus())
}

func TestStalemate(t *testing.T) {
	s := mustDecode(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	assert.True(t, s.IsStalemate())
	assert.False(t, s.IsCheckmate())
	assert.Equal(t, "1/2-1/2 {Stalemate}", s.GameEndStatus())
}

func TestThreefoldRepetition(t *testing.T) {
	s := board.NewStartState()

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, str := range shuffle {
		m, err := board.ParseMove(str)
		require.NoError(t, err)

		var found *board.Move
		for _, lm := range s.LegalMoves(false) {
			if lm.Equals(m) {
				f := lm
				found = &f
				break
			}
		}
		require.NotNil(t, found, "move %v not legal", m)
		s.MasterApply(*found)
	}

	assert.True(t, s.IsThreefoldRepetition())
	assert.Equal(t, "1/2-1/2 {Draw by threefold repetition}", s.GameEndStatus())
}

func TestFiftyMoveDraw(t *testing.T) {
	s := mustDecode(t, "8/8/8/3k4/8/3K4/8/8 w - - 99 60")

	m, err := board.ParseMove("d3d4")
	require.NoError(t, err)
	s.MasterApply(m)

	assert.True(t, s.IsFiftyMoveDraw())
}

func TestKeyIgnoresClocksButNotPosition(t *testing.T) {
	a := mustDecode(t, "8/8/8/8/8/8/8/K6k w - - 0 1")
	b := mustDecode(t, "8/8/8/8/8/8/8/K6k w - - 12 7")
	c := mustDecode(t, "8/8/8/8/8/8/8/K6k b - - 0 1")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestIsSquareAttackedIndependentOfSideToMove(t *testing.T) {
	white := mustDecode(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	black := mustDecode(t, "4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")

	sq := board.Square{Row: 0, Col: 4}
	assert.True(t, white.IsSquareAttacked(sq, true))
	assert.True(t, black.IsSquareAttacked(sq, true))
}
