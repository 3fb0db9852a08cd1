package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/kestrelchess/tempo/pkg/eval"
	"github.com/kestrelchess/tempo/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	// White to move, Rh8 is back-rank mate.
	s, err := fen.Decode("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)

	ctrl := search.NewControl(time.Time{})
	v := search.AlphaBeta(ctx, ctrl, eval.Classic{}, s, 2, -eval.MateScore-1, eval.MateScore+1, true)

	assert.True(t, eval.IsMateScore(v))
	assert.True(t, v > 0)
}

func TestAlphaBetaStartPositionIsNotMateScore(t *testing.T) {
	ctx := context.Background()
	s := board.NewStartState()

	ctrl := search.NewControl(time.Time{})
	v := search.AlphaBeta(ctx, ctrl, eval.Classic{}, s, 1, -eval.MateScore-1, eval.MateScore+1, true)

	// A single ply from the balanced start position should be roughly even,
	// nowhere near a mate score.
	assert.False(t, eval.IsMateScore(v))
}

func TestRunReturnsALegalMove(t *testing.T) {
	ctx := context.Background()
	s := board.NewStartState()

	pv := search.Run(ctx, eval.Classic{}, s, search.Options{DepthLimit: 2})
	require.Len(t, pv.Moves, 1)

	legal := s.LegalMoves(false)
	found := false
	for _, m := range legal {
		if m.Equals(pv.Moves[0]) {
			found = true
		}
	}
	assert.True(t, found, "Run chose a move %v not in the legal move list", pv.Moves[0])
}

func TestRunFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	s, err := fen.Decode("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)

	pv := search.Run(ctx, eval.Classic{}, s, search.Options{DepthLimit: 3})
	require.Len(t, pv.Moves, 1)

	next := s.Apply(pv.Moves[0])
	assert.True(t, next.IsCheckmate(), "expected %v to be mate, got %v", pv.Moves[0], next.GameEndStatus())
}
