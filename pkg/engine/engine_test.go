package engine_test

import (
	"context"
	"testing"

	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/kestrelchess/tempo/pkg/engine"
	"github.com/kestrelchess/tempo/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtInitialPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "tempo", "kestrelchess")

	assert.Equal(t, fen.Initial, e.Position())
	assert.Equal(t, "", e.GameEndStatus())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "tempo", "kestrelchess")

	assert.Error(t, e.Move(ctx, "e2e5"))
	assert.Equal(t, fen.Initial, e.Position())
}

func TestMoveAppliesLegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "tempo", "kestrelchess")

	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.Contains(t, e.Position(), " b ")
}

func TestGoFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "tempo", "kestrelchess")
	require.NoError(t, e.Reset(ctx, "4k3/8/4K3/8/8/8/8/7R w - - 0 1"))

	pv := e.Go(ctx, search.Options{DepthLimit: 3})
	require.Len(t, pv.Moves, 1)
	assert.Equal(t, "h1h8", pv.Moves[0].String())
}

func TestGoReportsCheckmateAfterApplyingBestMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "tempo", "kestrelchess")
	require.NoError(t, e.Reset(ctx, "4k3/8/4K3/8/8/8/8/7R w - - 0 1"))

	pv := e.Go(ctx, search.Options{DepthLimit: 3})
	require.Len(t, pv.Moves, 1)
	require.NoError(t, e.Move(ctx, pv.Moves[0].String()))

	assert.Equal(t, "1-0 {White mates}", e.GameEndStatus())
}
