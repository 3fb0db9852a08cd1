// Package perft counts the leaf positions reachable from a board state in
// exactly N plies (see https://www.chessprogramming.org/Perft_Results),
// used to validate and benchmark move generation.
//
// Unlike the search itself, which is deliberately single-threaded, perft is
// pure test/benchmark tooling: root moves are independent subtrees, so they
// are fanned out across goroutines with golang.org/x/sync/errgroup.
package perft

import (
	"context"
	"sync"

	"github.com/kestrelchess/tempo/pkg/board"
	"golang.org/x/sync/errgroup"
)

// Count returns the number of leaf positions reachable from s after depth
// plies.
func Count(ctx context.Context, s board.State, depth int) (int64, error) {
	if depth == 0 {
		return 1, nil
	}

	moves := s.LegalMoves(false)
	counts := make([]int64, len(moves))

	g, _ := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			counts[i] = count(s.Apply(m), depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Divide returns, for each legal root move in UCI notation, the leaf count
// below it at depth-1 plies — the standard "perft divide" breakdown used
// to localize a move-generation bug against a reference engine's counts.
func Divide(ctx context.Context, s board.State, depth int) (map[string]int64, error) {
	moves := s.LegalMoves(false)
	result := make(map[string]int64, len(moves))

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	for _, m := range moves {
		m := m
		g.Go(func() error {
			c := count(s.Apply(m), depth-1)
			mu.Lock()
			result[m.String()] = c
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// count is the sequential perft recursion used below the fanned-out root.
func count(s board.State, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range s.LegalMoves(false) {
		nodes += count(s.Apply(m), depth-1)
	}
	return nodes
}
