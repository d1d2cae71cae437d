package search

import (
	"context"
	"time"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// TranspositionMapFactory constructs a fresh, empty transposition map for
// one iterative-deepening depth.
type TranspositionMapFactory func() *TranspositionMap

// IterativeDeepening runs AlphaBeta at increasing depths, starting at 2,
// until budget elapses, ctx is cancelled, or depthLimit (if set) is
// reached. It halts before starting a depth whose completion would exceed
// half the budget already spent, since a deeper iteration routinely costs
// several times the previous one. It does not interrupt a depth already in
// progress: cancellation and the budget are only checked between depths,
// never mid-depth, per the single-threaded scheduling model.
//
// Each completed iteration's transposition map is retained as the ordering
// oracle for the next; that next iteration always writes into its own
// fresh map, obtained from factory. A nil factory defaults to
// NewTranspositionMap (unbounded).
func IterativeDeepening(ctx context.Context, b *board.Board, side board.Color, e eval.Evaluator, budget time.Duration, depthLimit lang.Optional[int], factory TranspositionMapFactory) PV {
	if factory == nil {
		factory = NewTranspositionMap
	}

	start := time.Now()
	floor := 2
	if limit, ok := depthLimit.V(); ok {
		floor = mathx.Max(0, mathx.Min(floor, limit)) // a depth limit below 2 still runs once, at the limit.
	}

	var best PV
	var oracle *TranspositionMap

	for depth := floor; ; depth++ {
		if limit, ok := depthLimit.V(); ok && depth > limit {
			break
		}
		if depth > floor && (time.Since(start) > budget/2 || contextx.IsCancelled(ctx)) {
			break
		}

		tt := factory()
		ab := AlphaBeta{Eval: e, TT: tt, Oracle: oracle}

		score, _, variation, nodes := ab.Search(b, side, depth)
		elapsed := time.Since(start)

		best = PV{Depth: depth, Score: score, Variation: variation, Nodes: nodes, Time: elapsed}
		oracle = tt

		if elapsed >= budget {
			break
		}
	}
	return best
}
