package eval

import (
	"fmt"

	"github.com/kestrelchess/tempo/pkg/board"
)

// Score is a signed centipawn value, positive favoring White.
type Score int

const (
	// MateScore is the magnitude assigned to a position where the side to
	// move has been checkmated, biased by remaining ply so a faster mate
	// always scores strictly better than a slower one.
	MateScore Score = 100000

	// DrawScore is returned for stalemate, repetition and other drawn
	// terminal nodes.
	DrawScore Score = 0

	// MaxSearchPly bounds iterative deepening.
	MaxSearchPly = 64

	// MaxQuiescencePly bounds quiescence search below the main search horizon.
	MaxQuiescencePly = 6

	// InCheckPenalty is applied to the stand-pat score in quiescence search
	// when the side to move is in check.
	InCheckPenalty Score = 50
)

func (s Score) String() string {
	return fmt.Sprintf("%d", int(s))
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	return Score(c.Unit())
}

// IsMateScore reports whether s reflects a forced mate rather than a
// material/positional evaluation: any score within MaxSearchPly*2 of
// MateScore in magnitude is a mate score.
func IsMateScore(s Score) bool {
	return abs(s) > MateScore-MaxSearchPly*2
}

// MateIn returns the number of full moves to mate implied by a mate score,
// the UCI "mate" conversion: ((MateScore - |s|) + 1) / 2.
func MateIn(s Score) int {
	return (int(MateScore-abs(s)) + 1) / 2
}

// Crop crops a Score into [-MateScore;MateScore].
func Crop(s Score) Score {
	switch {
	case s > MateScore:
		return MateScore
	case s < -MateScore:
		return -MateScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

func abs(s Score) Score {
	if s < 0 {
		return -s
	}
	return s
}
