package perft_test

import (
	"context"
	"testing"

	"github.com/kestrelchess/tempo/pkg/board"
	"github.com/kestrelchess/tempo/pkg/engine/perft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known-good perft node counts from the standard starting position. See
// https://www.chessprogramming.org/Perft_Results.
func TestCountStartPosition(t *testing.T) {
	ctx := context.Background()
	s := board.NewStartState()

	want := []int64{1, 20, 400, 8902, 197281}
	for depth, n := range want {
		got, err := perft.Count(ctx, s, depth)
		require.NoError(t, err)
		assert.Equal(t, n, got, "perft(%d)", depth)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	ctx := context.Background()
	s := board.NewStartState()

	total, err := perft.Count(ctx, s, 3)
	require.NoError(t, err)

	div, err := perft.Divide(ctx, s, 3)
	require.NoError(t, err)

	var sum int64
	for _, c := range div {
		sum += c
	}
	assert.Equal(t, total, sum)
	assert.Len(t, div, 20)
}
