package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/herohde/chesscore/pkg/movegen"
	"github.com/herohde/chesscore/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide defaults for ChooseMove.
type Options struct {
	// DepthLimit, if set, caps iterative deepening at the given ply depth.
	// Unset means deepen until the budget runs out.
	DepthLimit lang.Optional[int]
	// Budget is the default wall-clock search budget, used when ChooseMove is
	// called with a zero budget. Unset means ChooseMove must be given an
	// explicit budget.
	Budget lang.Optional[time.Duration]
	// Hash is the transposition table size in MB. Zero means unbounded.
	Hash uint
}

func (o Options) String() string {
	depth, _ := o.DepthLimit.V()
	budget, _ := o.Budget.V()
	return fmt.Sprintf("{depth=%v, budget=%v, hash=%vMB}", depth, budget, o.Hash)
}

// Engine encapsulates a single live board plus the evaluator, opening book
// and default options used to drive it. Per the single-threaded scheduling
// model, no two calls against the same Engine may run reentrantly; the
// mutex here only guards against accidental concurrent misuse, not to
// enable it.
type Engine struct {
	name, author string

	eval    eval.Evaluator
	book    Book
	opts    Options
	factory search.TranspositionMapFactory

	b  *board.Board
	mu sync.Mutex
}

// Option is an engine construction option.
type Option func(*Engine)

// WithEvaluator overrides the default Standard evaluator.
func WithEvaluator(e eval.Evaluator) Option {
	return func(e2 *Engine) {
		e2.eval = e
	}
}

// WithBook attaches an opening book. Defaults to NoBook.
func WithBook(b Book) Option {
	return func(e *Engine) {
		e.book = b
	}
}

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithTranspositionFactory overrides how each iterative-deepening depth's
// transposition map is constructed. Defaults to a factory driven by
// Options.Hash.
func WithTranspositionFactory(factory search.TranspositionMapFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// New returns an Engine positioned at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		eval:   eval.Standard{},
		book:   NoBook,
		b:      board.NewBoard(),
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.factory == nil {
		hash := e.opts.Hash
		e.factory = func() *search.TranspositionMap {
			if hash == 0 {
				return search.NewTranspositionMap()
			}
			return search.NewTranspositionMapWithHash(hash)
		}
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Board returns the live board. Callers must not mutate it except via
// Apply/Undo against the engine.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b
}

// Reset replaces the engine's board with a fresh starting position.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.b = board.NewBoard()
	logw.Infof(ctx, "New board: %v", e.b)
}

// LegalMoves returns color's fully legal moves in the current position.
func (e *Engine) LegalMoves(color board.Color) []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return movegen.LegalMoves(e.b, color)
}

// KingInCheck reports whether color's king is currently attacked.
func (e *Engine) KingInCheck(color board.Color) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return movegen.KingInCheck(e.b, color)
}

// Apply plays move on the live board, usually an opponent move, and returns
// its undo record. Apply does not itself validate legality; callers should
// check move against LegalMoves first.
func (e *Engine) Apply(ctx context.Context, move board.Move) board.UndoRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	u := e.b.Apply(move)
	logw.Infof(ctx, "Move %v: %v", move, e.b)
	return u
}

// Undo reverses the most recent Apply.
func (e *Engine) Undo(ctx context.Context, record board.UndoRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.b.Undo(record)
	logw.Infof(ctx, "Takeback %v", record.Move)
}

// ChooseMove selects a move for color under budget: a book move if one is
// available for the current position, otherwise iterative-deepening search
// bounded by Options.DepthLimit. A zero budget falls back to the engine's
// default. Cancelling ctx stops the search between depths, never mid-depth.
func (e *Engine) ChooseMove(ctx context.Context, color board.Color, budget time.Duration) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if move, ok := e.book.Lookup(ctx, e.b); ok {
		logw.Infof(ctx, "Book move for %v: %v", e.b, move)
		return move, nil
	}

	if budget <= 0 {
		v, ok := e.opts.Budget.V()
		if !ok {
			return board.Move{}, fmt.Errorf("no budget given and no default configured")
		}
		budget = v
	}

	pv := search.IterativeDeepening(ctx, e.b, color, e.eval, budget, e.opts.DepthLimit, e.factory)
	move, ok := pv.Move()
	if !ok {
		return board.Move{}, fmt.Errorf("no legal move for %v in %v", color, e.b)
	}

	logw.Infof(ctx, "Chose %v: %v", move, pv)
	return move, nil
}
