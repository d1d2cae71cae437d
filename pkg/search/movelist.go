package search

import (
	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
)

// orderMoves sorts moves in place by the fast ordering key, descending for
// White and ascending for Black. If oracle is non-nil (the prior iterative-
// deepening iteration's transposition map), a move's key is the oracle's
// score for the resulting position when known, falling back to
// eval.OrderingKey otherwise.
func orderMoves(b *board.Board, side board.Color, moves []board.Move, oracle *TranspositionMap) {
	key := func(m board.Move) board.MovePriority {
		return board.MovePriority(100 * float32(orderingScore(b, m, oracle)))
	}
	if side == board.White {
		board.SortByPriorityDesc(moves, key)
	} else {
		board.SortByPriorityAsc(moves, key)
	}
}

func orderingScore(b *board.Board, m board.Move, oracle *TranspositionMap) eval.Score {
	if oracle != nil {
		u := b.Apply(m)
		entry, ok := oracle.Get(b)
		b.Undo(u)
		if ok {
			return entry.Score
		}
	}
	return eval.OrderingKey(b, m)
}
