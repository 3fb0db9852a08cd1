package eval

import (
	"context"
	"math/rand"

	"github.com/kestrelchess/tempo/pkg/board"
)

// Random is a randomized noise generator, added on top of another Evaluator
// to vary otherwise-identical engine instances. limit specifies the range
// in centipawns, [-limit/2; limit-limit/2). The zero value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, s board.State) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
