package uci_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kestrelchess/tempo/pkg/engine"
	"github.com/kestrelchess/tempo/pkg/engine/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, commands string) []string {
	t.Helper()

	ctx := context.Background()
	e := engine.New(ctx, "tempo", "kestrelchess")

	var out bytes.Buffer
	d := uci.NewDriver(e, strings.NewReader(commands), &out)
	d.Run(ctx)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	return lines
}

func TestUciHandshake(t *testing.T) {
	lines := run(t, "uci\nquit\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id name tempo"))
	assert.True(t, strings.HasPrefix(lines[1], "id author kestrelchess"))
	assert.Equal(t, "uciok", lines[2])
}

func TestIsReady(t *testing.T) {
	lines := run(t, "isready\nquit\n")
	assert.Equal(t, []string{"readyok"}, lines)
}

func TestGoFromCheckmateInOneEmitsBestMove(t *testing.T) {
	lines := run(t, "position fen 4k3/8/4K3/8/8/8/8/7R w - - 0 1\ngo depth 3\nquit\n")

	var bestmove string
	for _, l := range lines {
		if strings.HasPrefix(l, "bestmove") {
			bestmove = l
		}
	}
	assert.Equal(t, "bestmove h1h8", bestmove)
}

func TestGoWithNoLegalMoveEmitsNullMove(t *testing.T) {
	// Stalemate: Black to move, no legal moves, not in check.
	lines := run(t, "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\ngo depth 1\nquit\n")

	var bestmove string
	for _, l := range lines {
		if strings.HasPrefix(l, "bestmove") {
			bestmove = l
		}
	}
	assert.Equal(t, "bestmove 0000", bestmove)
}
