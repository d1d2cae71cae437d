package movegen_test

import (
	"strings"
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(moves []board.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.Algebraic())
	}
	return sb.String()
}

func contains(moves []board.Move, algebraic string) bool {
	for _, m := range moves {
		if m.Algebraic() == algebraic {
			return true
		}
	}
	return false
}

func movesFrom(moves []board.Move, prefix string) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if strings.HasPrefix(m.Algebraic(), prefix) {
			out = append(out, m)
		}
	}
	return out
}

// TestStartingPositionTwentyMoves pins down scenario 1: the starting
// position yields exactly 20 legal moves, in generator emission order.
func TestStartingPositionTwentyMoves(t *testing.T) {
	b := board.NewBoard()
	moves := movegen.LegalMoves(b, board.White)

	expected := "b1-c3 b1-a3 g1-h3 g1-f3 " +
		"a2-a3 a2-a4 b2-b3 b2-b4 c2-c3 c2-c4 d2-d3 d2-d4 " +
		"e2-e3 e2-e4 f2-f3 f2-f4 g2-g3 g2-g4 h2-h3 h2-h4"
	assert.Equal(t, expected, join(moves))
}

func applyAlgebraic(t *testing.T, b *board.Board, side board.Color, algebraic string) {
	t.Helper()
	for _, m := range movegen.LegalMoves(b, side) {
		if m.Algebraic() == algebraic {
			b.Apply(m)
			return
		}
	}
	require.Failf(t, "move not legal", "%v not in legal moves for %v", algebraic, side)
}

// TestFoolsMate exercises scenario 2.
func TestFoolsMate(t *testing.T) {
	b := board.NewBoard()
	applyAlgebraic(t, b, board.White, "f2-f3")
	applyAlgebraic(t, b, board.Black, "e7-e5")
	applyAlgebraic(t, b, board.White, "g2-g4")

	blackMoves := movegen.LegalMoves(b, board.Black)
	require.True(t, contains(blackMoves, "d8-h4"))

	applyAlgebraic(t, b, board.Black, "d8-h4")

	whiteMoves := movegen.LegalMoves(b, board.White)
	assert.Empty(t, whiteMoves)
	assert.True(t, movegen.KingInCheck(b, board.White))
}

// TestLonePawnPromotionOrder exercises scenario 3.
func TestLonePawnPromotionOrder(t *testing.T) {
	b := emptyBoard()
	b.SetSquare(board.Rank1, board.FileA, board.WhiteKing)
	b.SetSquare(board.Rank8, board.FileA, board.BlackKing)
	b.SetSquare(board.Rank7, board.FileH, board.WhitePawn)

	moves := movegen.LegalMoves(b, board.White)
	assert.Equal(t, "h7-h8=R h7-h8=B h7-h8=N h7-h8=Q", join(movesFrom(moves, "h7-")))
}

// TestPawnCaptureAvailable exercises scenario 4.
func TestPawnCaptureAvailable(t *testing.T) {
	b := board.NewBoard()
	applyAlgebraic(t, b, board.White, "e2-e4")
	applyAlgebraic(t, b, board.Black, "d7-d5")
	applyAlgebraic(t, b, board.White, "d2-d4")

	moves := movegen.LegalMoves(b, board.Black)
	assert.True(t, contains(moves, "d5-e4"))
}

// TestCastlingBothSidesAvailable exercises scenario 5: castling through an
// attacked transit square is not filtered in this core.
func TestCastlingBothSidesAvailable(t *testing.T) {
	b := emptyBoard()
	b.SetSquare(board.Rank1, board.FileE, board.WhiteKing)
	b.SetSquare(board.Rank1, board.FileA, board.WhiteRook)
	b.SetSquare(board.Rank1, board.FileH, board.WhiteRook)
	b.SetSquare(board.Rank8, board.FileE, board.BlackKing)

	moves := movegen.LegalMoves(b, board.White)
	assert.True(t, contains(moves, "e1-g1"))
	assert.True(t, contains(moves, "e1-c1"))

	for _, m := range moves {
		if m.Algebraic() == "e1-g1" {
			b.Apply(m)
			break
		}
	}
	assert.Equal(t, board.WhiteKing, b.GetSquare(board.Rank1, board.FileG))
	assert.Equal(t, board.WhiteRook, b.GetSquare(board.Rank1, board.FileF))
}

// TestKingInCheckSymmetric covers the board-swap symmetry invariant.
func TestKingInCheckSymmetric(t *testing.T) {
	b := emptyBoard()
	b.SetSquare(board.Rank1, board.FileE, board.WhiteKing)
	b.SetSquare(board.Rank8, board.FileE, board.BlackKing)
	b.SetSquare(board.Rank8, board.FileA, board.BlackRook)

	assert.False(t, movegen.KingInCheck(b, board.Black))
	assert.False(t, movegen.KingInCheck(b, board.White))

	b2 := emptyBoard()
	b2.SetSquare(board.Rank1, board.FileE, board.WhiteKing)
	b2.SetSquare(board.Rank1, board.FileA, board.WhiteRook)
	b2.SetSquare(board.Rank8, board.FileE, board.BlackKing)
	assert.Equal(t, movegen.KingInCheck(b, board.White), movegen.KingInCheck(b2, board.Black))
}

// TestApplyUndoRoundTripsOverLegalMoves covers the apply/undo invariant
// across every move the generator yields from the starting position.
func TestApplyUndoRoundTripsOverLegalMoves(t *testing.T) {
	b := board.NewBoard()
	before := b.String()

	for _, m := range movegen.LegalMovesIgnoringCheck(b, board.White) {
		u := b.Apply(m)
		b.Undo(u)
		assert.Equal(t, before, b.String(), "move %v did not round-trip", m)
	}
}

// TestLegalMovesFiltersSelfCheck ensures every move from legal_moves leaves
// the mover's own king safe.
func TestLegalMovesFiltersSelfCheck(t *testing.T) {
	b := emptyBoard()
	b.SetSquare(board.Rank1, board.FileE, board.WhiteKing)
	b.SetSquare(board.Rank2, board.FileE, board.WhiteRook)
	b.SetSquare(board.Rank8, board.FileE, board.BlackRook)
	b.SetSquare(board.Rank8, board.FileA, board.BlackKing)

	for _, m := range movegen.LegalMoves(b, board.White) {
		u := b.Apply(m)
		assert.False(t, movegen.KingInCheck(b, board.White))
		b.Undo(u)
	}
}

// TestInteriorRookEmissionOrder pins the ray order for a slider away from
// every edge, where all four directions are on board at once: up, right,
// down, left.
func TestInteriorRookEmissionOrder(t *testing.T) {
	b := emptyBoard()
	b.SetSquare(board.Rank4, board.FileD, board.WhiteRook)
	b.SetSquare(board.Rank1, board.FileA, board.WhiteKing)
	b.SetSquare(board.Rank8, board.FileA, board.BlackKing)

	moves := movegen.LegalMovesIgnoringCheck(b, board.White)
	expected := "d4-d5 d4-d6 d4-d7 d4-d8 d4-e4 d4-f4 d4-g4 d4-h4 " +
		"d4-d3 d4-d2 d4-d1 d4-c4 d4-b4 d4-a4"
	assert.Equal(t, expected, join(movesFrom(moves, "d4-")))
}

// TestInteriorKingEmissionOrder pins the step order for a king away from
// every edge: up, right, down, left, up-right, down-right, up-left,
// down-left.
func TestInteriorKingEmissionOrder(t *testing.T) {
	b := emptyBoard()
	b.SetSquare(board.Rank4, board.FileD, board.WhiteKing)
	b.SetSquare(board.Rank8, board.FileA, board.BlackKing)

	moves := movegen.LegalMovesIgnoringCheck(b, board.White)
	expected := "d4-d5 d4-e4 d4-d3 d4-c4 d4-e5 d4-e3 d4-c5 d4-c3"
	assert.Equal(t, expected, join(movesFrom(moves, "d4-")))
}

// TestPerftStartingPosition cross-checks the generator against the
// well-known perft node counts for the standard starting position.
func TestPerftStartingPosition(t *testing.T) {
	b := board.NewBoard()
	assert.Equal(t, uint64(20), movegen.Perft(b, board.White, 1))
	assert.Equal(t, uint64(400), movegen.Perft(b, board.White, 2))
	assert.Equal(t, uint64(8902), movegen.Perft(b, board.White, 3))
}

func emptyBoard() *board.Board {
	b := board.NewBoard()
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			b.SetSquare(r, f, board.Empty)
		}
	}
	return b
}
