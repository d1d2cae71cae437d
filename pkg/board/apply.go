package board

// UndoRecord carries everything Undo needs to reverse an Apply: the move
// itself, the square content it displaced, the castling/last-move snapshot
// from just before the move, and the side-effect bookkeeping for castling
// rook relocation and en passant capture. Zero File values in the rook/en
// passant fields mean "no side effect of that kind occurred".
type UndoRecord struct {
	Move             Move
	Mover            Color
	CapturedContent  Square
	PreviousCastling Castling
	PreviousLastMove *Move

	CastledRookFrom, CastledRookTo File
	EnPassantRank                  Rank
	EnPassantFile                  File
}

// Apply plays move on the board, mutating it in place, and returns the
// record needed to undo it. Apply does not check legality: calling it with
// an illegal move leaves the board in an undefined state.
func (b *Board) Apply(m Move) UndoRecord {
	moving := b.GetSquare(m.SourceRank, m.SourceFile)
	mover := moving.ColorOf()
	kind := moving.PieceKindOf()

	placed := moving
	if m.IsPromotion() {
		placed = MakePiece(m.Promotion, mover)
	}

	captured := b.GetSquare(m.TargetRank, m.TargetFile)

	b.SetSquare(m.TargetRank, m.TargetFile, placed)
	b.SetSquare(m.SourceRank, m.SourceFile, Empty)

	var castledFrom, castledTo File
	if kind == King && m.SourceFile == FileE && m.TargetRank == m.SourceRank {
		switch m.TargetFile {
		case FileG:
			castledFrom, castledTo = FileH, FileF
		case FileC:
			castledFrom, castledTo = FileA, FileD
		}
	}
	if castledFrom != 0 {
		rook := b.GetSquare(m.SourceRank, castledFrom)
		b.SetSquare(m.SourceRank, castledTo, rook)
		b.SetSquare(m.SourceRank, castledFrom, Empty)
	}

	var epRank Rank
	var epFile File
	if kind == Pawn && m.SourceFile != m.TargetFile && captured == Empty {
		victim := b.GetSquare(m.SourceRank, m.TargetFile)
		if victim.PieceKindOf() == Pawn && victim.ColorOf() == mover.Opponent() {
			epRank, epFile = m.SourceRank, m.TargetFile
			b.SetSquare(epRank, epFile, Empty)
		}
	}

	prevCastling := b.castling
	prevLastMove := b.lastMove

	switch kind {
	case King:
		b.castling = b.castling.Without(KingSide(mover)).Without(QueenSide(mover))
	case Rook:
		homeRank := Rank1
		if mover == Black {
			homeRank = Rank8
		}
		if m.SourceRank == homeRank {
			switch m.SourceFile {
			case FileA:
				b.castling = b.castling.Without(QueenSide(mover))
			case FileH:
				b.castling = b.castling.Without(KingSide(mover))
			}
		}
	}

	moveCopy := m
	b.lastMove = &moveCopy
	b.turn = b.turn.Opponent()

	return UndoRecord{
		Move:             m,
		Mover:            mover,
		CapturedContent:  captured,
		PreviousCastling: prevCastling,
		PreviousLastMove: prevLastMove,
		CastledRookFrom:  castledFrom,
		CastledRookTo:    castledTo,
		EnPassantRank:    epRank,
		EnPassantFile:    epFile,
	}
}

// Undo reverses the effect of the Apply that produced u. u must be the
// record from the most recent Apply; undoing out of order leaves the board
// in an undefined state.
func (b *Board) Undo(u UndoRecord) {
	m := u.Move

	var restored Square
	if m.IsPromotion() {
		restored = MakePiece(Pawn, u.Mover)
	} else {
		restored = b.GetSquare(m.TargetRank, m.TargetFile)
	}
	b.SetSquare(m.SourceRank, m.SourceFile, restored)
	b.SetSquare(m.TargetRank, m.TargetFile, u.CapturedContent)

	if u.CastledRookFrom != 0 {
		rook := b.GetSquare(m.SourceRank, u.CastledRookTo)
		b.SetSquare(m.SourceRank, u.CastledRookFrom, rook)
		b.SetSquare(m.SourceRank, u.CastledRookTo, Empty)
	}

	if u.EnPassantFile != 0 {
		b.SetSquare(u.EnPassantRank, u.EnPassantFile, MakePiece(Pawn, u.Mover.Opponent()))
	}

	b.castling = u.PreviousCastling
	b.lastMove = u.PreviousLastMove
	b.turn = b.turn.Opponent()
}
