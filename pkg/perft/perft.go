// Package perft counts the legal move sequences of Ultimate Tic-Tac-Toe,
// the size of the game tree at a fixed depth from a given state.
//
// Counts only follow the occupancy and forced sub-board rules, won sub-boards
// and finished games are never detected. Up to MaxSupportedDepth plies this is
// the intended definition: count(d) is the number of distinct sequences of d
// legal moves.
package perft

import (
	"github.com/IlikeChooros/uttt-perft/pkg/uttt"
)

// Number of leaves 'depth' plies below the state. Depth 0 is the
// state itself, a single leaf.
func CountFrom(state uttt.State, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return count(state, depth)
}

// Number of move sequences of length 'depth' from the empty board
func Count(depth int) uint64 {
	return CountFrom(uttt.NewState(), depth)
}

func count(state uttt.State, depth int) uint64 {
	legal := state.Legal()

	// Every legal move is exactly one leaf, no need to make them
	if depth == 1 {
		return uint64(legal.OnesCount())
	}

	var nodes uint64
	for ; !legal.IsZero(); legal = legal.PopLowest() {
		nodes += count(state.Apply(legal.Lowest()), depth-1)
	}
	return nodes
}

// Cumulative node count of plies 1..depth from the empty board,
// the sum of Count(1) through Count(depth)
func Total(depth int) uint64 {
	var total uint64
	for d := 1; d <= depth; d++ {
		total += Count(d)
	}
	return total
}

type DivideEntry struct {
	Move  uttt.Cell
	Nodes uint64
}

// Subtree counts for every legal move of the state, in ascending cell order.
// The nodes sum up to CountFrom(state, depth). Returns nil for depth <= 0.
func Divide(state uttt.State, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	legal := state.Legal()
	entries := make([]DivideEntry, 0, legal.OnesCount())
	for ; !legal.IsZero(); legal = legal.PopLowest() {
		move := legal.Lowest()
		entries = append(entries, DivideEntry{
			Move:  move,
			Nodes: CountFrom(state.Apply(move), depth-1),
		})
	}
	return entries
}

// Every state reached after exactly 'plies' moves, one per move sequence,
// so len(Frontier(s, p)) == CountFrom(s, p)
func Frontier(state uttt.State, plies int) []uttt.State {
	if plies <= 0 {
		return []uttt.State{state}
	}

	frontier := make([]uttt.State, 0, CountFrom(state, plies))
	var walk func(s uttt.State, left int)
	walk = func(s uttt.State, left int) {
		if left == 0 {
			frontier = append(frontier, s)
			return
		}
		for legal := s.Legal(); !legal.IsZero(); legal = legal.PopLowest() {
			walk(s.Apply(legal.Lowest()), left-1)
		}
	}
	walk(state, plies)
	return frontier
}
