package search

import (
	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/herohde/chesscore/pkg/movegen"
)

// Minimax is the naive, unpruned search: full-width, no transposition
// lookups, no move ordering. Used to validate that AlphaBeta's root score
// never diverges from the unpruned result at the same depth.
//
// Pseudo-code:
//
//	function minimax(node, depth, maximizingPlayer) is
//	   if depth = 0 or node is a terminal node then
//	       return the heuristic value of node
//	   if maximizingPlayer then
//	       value := −∞
//	       for each child of node do
//	           value := max(value, minimax(child, depth − 1, FALSE))
//	       return value
//	   else (* minimizing player *)
//	       value := +∞
//	       for each child of node do
//	           value := min(value, minimax(child, depth − 1, TRUE))
//	       return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	Eval eval.Evaluator
}

// Search returns the full-width score, best move, principal variation and
// node count for b at depth, with side to move.
func (m Minimax) Search(b *board.Board, side board.Color, depth int) (eval.Score, board.Move, []board.Move, uint64) {
	score, variation, nodes := m.search(b, side, depth)
	var best board.Move
	if len(variation) > 0 {
		best = variation[0]
	}
	return score, best, variation, nodes
}

func (m Minimax) search(b *board.Board, side board.Color, depth int) (eval.Score, []board.Move, uint64) {
	if depth == 0 {
		return m.Eval.Evaluate(b), nil, 1
	}

	moves := movegen.LegalMoves(b, side)
	if len(moves) == 0 {
		return m.Eval.Evaluate(b), nil, 1
	}

	var nodes uint64 = 1
	var best eval.Score
	var variation []board.Move
	haveBest := false

	for _, mv := range moves {
		u := b.Apply(mv)
		score, rest, childNodes := m.search(b, side.Opponent(), depth-1)
		b.Undo(u)
		nodes += childNodes

		candidate := append([]board.Move{mv}, rest...)

		switch {
		case !haveBest:
			haveBest, best, variation = true, score, candidate
		case side == board.White && score > best:
			best, variation = score, candidate
		case side == board.Black && (score < best || (score == best && len(candidate) > len(variation))):
			best, variation = score, candidate
		}
	}

	return best, variation, nodes
}
