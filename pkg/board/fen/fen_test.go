package fen_test

import (
	"testing"

	"github.com/kestrelchess/tempo/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/3pP3/8/8/8/8 w - d6 0 1",
	}

	for _, tt := range tests {
		s, err := fen.Decode(tt)
		require.NoError(t, err)

		assert.Equal(t, tt, fen.Encode(s))
	}
}

func TestDecodeDefaultsClocks(t *testing.T) {
	s, err := fen.Decode("8/8/8/8/8/8/8/K6k w - -")
	require.NoError(t, err)

	assert.Equal(t, 0, s.HalfmoveClock)
	assert.Equal(t, 1, s.FullmoveNumber)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"invalid",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}

	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Error(t, err)
	}
}
