package board

import "sort"

// SortByScore orders moves by descending Score, preserving relative order
// among moves with equal scores. Move.Score is populated by a move-ordering
// heuristic (see pkg/search's MVV-LVA ordering) before calling this.
func SortByScore(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}
