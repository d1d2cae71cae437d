package board

import "sort"

// MovePriority represents the move order priority used for move ordering.
type MovePriority int32

// MovePriorityFn assigns a priority to moves, higher sorts first under
// SortByPriorityDesc.
type MovePriorityFn func(move Move) MovePriority

// SortByPriorityDesc sorts the moves by descending priority, preserving
// relative order for moves of equal priority (first-seen wins ties).
func SortByPriorityDesc(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// SortByPriorityAsc sorts the moves by ascending priority, preserving
// relative order for moves of equal priority (first-seen wins ties).
func SortByPriorityAsc(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) < fn(moves[j])
	})
}
