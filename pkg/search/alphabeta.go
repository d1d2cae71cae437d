// Package search implements alpha-beta search with move ordering,
// transposition reuse, and iterative deepening under a wall-clock budget.
// Scheduling is single-threaded and synchronous: no operation suspends or
// yields, and no two operations may run reentrantly against the same board.
package search

import (
	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/herohde/chesscore/pkg/movegen"
)

// AlphaBeta implements negamax-style alpha-beta pruning with explicit
// maximize/minimize over color. Pseudo-code:
//
//	function alphabeta(node, depth, α, β, maximizingPlayer) is
//	   if depth = 0 or node is a terminal node then
//	       return the heuristic value of node
//	   if maximizingPlayer then
//	       value := −∞
//	       for each child of node do
//	           value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	           α := max(α, value)
//	           if α ≥ β then
//	               break (* β cutoff *)
//	       return value
//	   else
//	       value := +∞
//	       for each child of node do
//	           value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	           β := min(β, value)
//	           if β ≤ α then
//	               break (* α cutoff *)
//	       return value
//
// See: https://en.wikipedia.org/wiki/Alpha-beta_pruning.
type AlphaBeta struct {
	Eval eval.Evaluator

	// TT is written with this invocation's results. Must be non-nil.
	TT *TranspositionMap
	// Oracle is the previous iterative-deepening iteration's transposition
	// map, consulted read-only for move ordering. May be nil.
	Oracle *TranspositionMap
}

// Search returns (score, best move, principal variation, nodes visited) for
// b at depth, with side to move.
func (ab AlphaBeta) Search(b *board.Board, side board.Color, depth int) (eval.Score, board.Move, []board.Move, uint64) {
	score, variation, nodes := ab.search(b, side, depth, eval.NegInf, eval.Inf)
	var best board.Move
	if len(variation) > 0 {
		best = variation[0]
	}
	return score, best, variation, nodes
}

func (ab AlphaBeta) search(b *board.Board, side board.Color, depth int, alpha, beta eval.Score) (eval.Score, []board.Move, uint64) {
	if depth == 0 {
		return ab.Eval.Evaluate(b), nil, 1
	}

	moves := movegen.LegalMoves(b, side)
	if len(moves) == 0 {
		return ab.Eval.Evaluate(b), nil, 1
	}

	if depth > 1 {
		orderMoves(b, side, moves, ab.Oracle)
	}

	var nodes uint64 = 1
	var best eval.Score
	var variation []board.Move
	haveBest := false

	for _, m := range moves {
		u := b.Apply(m)

		var score eval.Score
		var rest []board.Move

		if entry, ok := ab.TT.Get(b); ok && entry.DepthSearched >= depth-1 {
			score, rest = entry.Score, entry.Variation
		} else {
			var childNodes uint64
			score, rest, childNodes = ab.search(b, side.Opponent(), depth-1, alpha, beta)
			nodes += childNodes
		}

		b.Undo(u)

		candidate := append([]board.Move{m}, rest...)

		switch {
		case !haveBest:
			haveBest, best, variation = true, score, candidate
		case side == board.White && score > best:
			best, variation = score, candidate
		case side == board.Black && (score < best || (score == best && len(candidate) > len(variation))):
			best, variation = score, candidate
		}

		if side == board.White {
			if best > alpha {
				alpha = best
			}
		} else {
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			variation = variation[:1] // cut: the deeper line is only a bound, not exact.
			break
		}
	}

	ab.TT.Put(b, TranspositionEntry{Score: best, Variation: variation, DepthSearched: depth})
	return best, variation, nodes
}
