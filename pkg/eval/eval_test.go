package eval_test

import (
	"testing"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/kestrelchess/tempo/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	s := board.NewStartState()
	assert.Equal(t, eval.Score(0), eval.Evaluate(s))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a queen.
	s, err := fen.Decode("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, eval.Evaluate(s) > eval.NominalValue(board.Queen)-eval.Score(100))
}

func TestEvaluateIsAntisymmetricUnderColorMirror(t *testing.T) {
	white, err := fen.Decode("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Decode("4k3/4p3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, eval.Evaluate(white), -eval.Evaluate(black))
}

func TestNominalValues(t *testing.T) {
	assert.Equal(t, eval.Score(100), eval.NominalValue(board.Pawn))
	assert.Equal(t, eval.Score(320), eval.NominalValue(board.Knight))
	assert.Equal(t, eval.Score(330), eval.NominalValue(board.Bishop))
	assert.Equal(t, eval.Score(500), eval.NominalValue(board.Rook))
	assert.Equal(t, eval.Score(900), eval.NominalValue(board.Queen))
	assert.Equal(t, eval.Score(20000), eval.NominalValue(board.King))
}

func TestMateScoreConversion(t *testing.T) {
	assert.True(t, eval.IsMateScore(eval.MateScore-1))
	assert.False(t, eval.IsMateScore(eval.Score(500)))
	assert.Equal(t, 1, eval.MateIn(eval.MateScore-1))
}
