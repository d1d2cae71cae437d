// Package movegen generates pseudo-legal and fully legal moves for a board,
// and answers check queries. Move order within a square and across squares
// is fixed so that repeated calls on equal boards agree, which search and
// its tests rely on.
package movegen

import (
	"github.com/herohde/chesscore/pkg/board"
)

// delta is a (rank, file) offset applied to a coordinate.
type delta struct {
	dr, df int
}

// Ray and step directions are listed rank-component-first: up, right, down,
// left, then (where applicable) the diagonals up-right, down-right,
// up-left, down-left. Emission order within a square follows this list.
var rookRayDirs = []delta{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
var bishopRayDirs = []delta{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

var knightOffsets = []delta{
	{1, 2}, {2, 1}, {1, -2}, {2, -1}, {-2, -1}, {-1, -2}, {-1, 2}, {-2, 1},
}

var kingOffsets = []delta{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

func step(r board.Rank, f board.File, d delta) (board.Rank, board.File, bool) {
	nr := int(r) + d.dr
	nf := int(f) + d.df
	if nr < int(board.Rank1) || nr > int(board.Rank8) || nf < int(board.FileA) || nf > int(board.FileH) {
		return 0, 0, false
	}
	return board.Rank(nr), board.File(nf), true
}

// LegalMovesIgnoringCheck returns every pseudo-legal move for the owned
// pieces of side, in the fixed emission order described above: squares in
// ascending (rank, file) order, and within a square a fixed per-kind order.
func LegalMovesIgnoringCheck(b *board.Board, side board.Color) []board.Move {
	var moves []board.Move

	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			sq := b.GetSquare(r, f)
			if sq.IsEmpty() || sq.ColorOf() != side {
				continue
			}

			switch sq.PieceKindOf() {
			case board.Rook:
				moves = appendRays(moves, b, side, r, f, rookRayDirs)
			case board.Bishop:
				moves = appendRays(moves, b, side, r, f, bishopRayDirs)
			case board.Queen:
				moves = appendRays(moves, b, side, r, f, rookRayDirs)
				moves = appendRays(moves, b, side, r, f, bishopRayDirs)
			case board.Knight:
				moves = appendSteps(moves, b, side, r, f, knightOffsets)
			case board.King:
				moves = appendSteps(moves, b, side, r, f, kingOffsets)
				moves = appendCastling(moves, b, side, r, f)
			case board.Pawn:
				moves = appendPawnMoves(moves, b, side, r, f)
			}
		}
	}
	return moves
}

func appendRays(moves []board.Move, b *board.Board, side board.Color, r board.Rank, f board.File, dirs []delta) []board.Move {
	for _, d := range dirs {
		cr, cf, ok := step(r, f, d)
		for ok {
			target := b.GetSquare(cr, cf)
			if target.IsEmpty() {
				moves = append(moves, board.NewMove(r, f, cr, cf))
			} else {
				if target.ColorOf() != side {
					moves = append(moves, board.NewMove(r, f, cr, cf))
				}
				break
			}
			cr, cf, ok = step(cr, cf, d)
		}
	}
	return moves
}

func appendSteps(moves []board.Move, b *board.Board, side board.Color, r board.Rank, f board.File, offsets []delta) []board.Move {
	for _, d := range offsets {
		cr, cf, ok := step(r, f, d)
		if !ok {
			continue
		}
		target := b.GetSquare(cr, cf)
		if target.IsEmpty() || target.ColorOf() != side {
			moves = append(moves, board.NewMove(r, f, cr, cf))
		}
	}
	return moves
}

func appendCastling(moves []board.Move, b *board.Board, side board.Color, r board.Rank, f board.File) []board.Move {
	if f != board.FileE {
		return moves
	}
	homeRank := board.Rank1
	if side == board.Black {
		homeRank = board.Rank8
	}
	if r != homeRank {
		return moves
	}

	kingSide, queenSide := b.CanCastle(side)
	if kingSide &&
		b.GetSquare(r, board.FileF).IsEmpty() && b.GetSquare(r, board.FileG).IsEmpty() &&
		b.GetSquare(r, board.FileH) == board.MakePiece(board.Rook, side) {
		moves = append(moves, board.NewMove(r, board.FileE, r, board.FileG))
	}
	if queenSide &&
		b.GetSquare(r, board.FileB).IsEmpty() && b.GetSquare(r, board.FileC).IsEmpty() && b.GetSquare(r, board.FileD).IsEmpty() &&
		b.GetSquare(r, board.FileA) == board.MakePiece(board.Rook, side) {
		moves = append(moves, board.NewMove(r, board.FileE, r, board.FileC))
	}
	return moves
}

func appendPawnMoves(moves []board.Move, b *board.Board, side board.Color, r board.Rank, f board.File) []board.Move {
	forward := 1
	homeRank := board.Rank2
	lastRank := board.Rank8
	if side == board.Black {
		forward = -1
		homeRank = board.Rank7
		lastRank = board.Rank1
	}

	limit := 1
	if r == homeRank {
		limit = 2
	}

	cr := r
	for i := 0; i < limit; i++ {
		nr := int(cr) + forward
		if nr < int(board.Rank1) || nr > int(board.Rank8) {
			break
		}
		cr = board.Rank(nr)
		if !b.GetSquare(cr, f).IsEmpty() {
			break
		}
		moves = appendPawnTarget(moves, r, f, cr, f, lastRank)
	}

	for _, df := range []int{-1, 1} {
		nf := int(f) + df
		if nf < int(board.FileA) || nf > int(board.FileH) {
			continue
		}
		nr := int(r) + forward
		if nr < int(board.Rank1) || nr > int(board.Rank8) {
			continue
		}
		tr, tf := board.Rank(nr), board.File(nf)
		target := b.GetSquare(tr, tf)
		if !target.IsEmpty() && target.ColorOf() != side {
			moves = appendPawnTarget(moves, r, f, tr, tf, lastRank)
		}
	}

	moves = appendEnPassant(moves, b, side, r, f, forward)
	return moves
}

func appendPawnTarget(moves []board.Move, sr board.Rank, sf board.File, tr board.Rank, tf board.File, lastRank board.Rank) []board.Move {
	if tr == lastRank {
		for _, k := range board.PromotionKinds {
			moves = append(moves, board.NewPromotion(sr, sf, tr, tf, k))
		}
		return moves
	}
	return append(moves, board.NewMove(sr, sf, tr, tf))
}

func appendEnPassant(moves []board.Move, b *board.Board, side board.Color, r board.Rank, f board.File, forward int) []board.Move {
	epRank := board.Rank5
	if side == board.Black {
		epRank = board.Rank4
	}
	if r != epRank {
		return moves
	}

	last, ok := b.LastMove()
	if !ok {
		return moves
	}

	opponentHome := board.Rank7
	if side == board.Black {
		opponentHome = board.Rank2
	}
	if last.SourceFile != last.TargetFile || last.SourceRank != opponentHome || last.TargetRank != r {
		return moves
	}

	for _, df := range []int{-1, 1} {
		nf := int(f) + df
		if nf != int(last.TargetFile) {
			continue
		}
		tr := board.Rank(int(r) + forward)
		moves = append(moves, board.NewMove(r, f, tr, board.File(nf)))
	}
	return moves
}

// KingInCheck reports whether side's king is currently attacked. Panics with
// a MissingKing error if side has no king on the board.
func KingInCheck(b *board.Board, side board.Color) bool {
	kr, kf := b.FindKing(side)
	enemy := side.Opponent()

	for _, d := range rookRayDirs {
		if rayHits(b, kr, kf, d, enemy, board.Rook, board.Queen) {
			return true
		}
	}
	for _, d := range bishopRayDirs {
		if rayHits(b, kr, kf, d, enemy, board.Bishop, board.Queen) {
			return true
		}
	}
	for _, d := range knightOffsets {
		if cr, cf, ok := step(kr, kf, d); ok {
			sq := b.GetSquare(cr, cf)
			if sq.ColorOf() == enemy && sq.PieceKindOf() == board.Knight {
				return true
			}
		}
	}

	pawnForward := 1
	if side == board.Black {
		pawnForward = -1
	}
	for _, df := range []int{-1, 1} {
		cr := int(kr) + pawnForward
		cf := int(kf) + df
		if cr < int(board.Rank1) || cr > int(board.Rank8) || cf < int(board.FileA) || cf > int(board.FileH) {
			continue
		}
		sq := b.GetSquare(board.Rank(cr), board.File(cf))
		if sq.ColorOf() == enemy && sq.PieceKindOf() == board.Pawn {
			return true
		}
	}

	for _, d := range kingOffsets {
		if cr, cf, ok := step(kr, kf, d); ok {
			sq := b.GetSquare(cr, cf)
			if sq.ColorOf() == enemy && sq.PieceKindOf() == board.King {
				return true
			}
		}
	}
	return false
}

func rayHits(b *board.Board, r board.Rank, f board.File, d delta, enemy board.Color, kinds ...board.Kind) bool {
	cr, cf, ok := step(r, f, d)
	for ok {
		sq := b.GetSquare(cr, cf)
		if !sq.IsEmpty() {
			if sq.ColorOf() == enemy {
				k := sq.PieceKindOf()
				for _, want := range kinds {
					if k == want {
						return true
					}
				}
			}
			return false
		}
		cr, cf, ok = step(cr, cf, d)
	}
	return false
}

// LegalMoves returns the subset of LegalMovesIgnoringCheck that leaves
// side's king safe, preserving the generator's emission order.
func LegalMoves(b *board.Board, side board.Color) []board.Move {
	candidates := LegalMovesIgnoringCheck(b, side)

	legal := make([]board.Move, 0, len(candidates))
	for _, m := range candidates {
		u := b.Apply(m)
		safe := !KingInCheck(b, side)
		b.Undo(u)
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}
