package search

import (
	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
)

// TranspositionEntry is a cached search result for one position: the score
// and principal variation found, and the depth at which they were found. An
// entry is usable to answer a query at depth <= DepthSearched.
type TranspositionEntry struct {
	Score         eval.Score
	Variation     []board.Move
	DepthSearched int
}

// key additionally folds in the side to move. board.PositionKey alone does
// not (by design, see board.PositionKey); two otherwise-identical positions
// with a different side to move must not collide here.
type key struct {
	pos  board.PositionKey
	turn board.Color
}

func keyOf(b *board.Board) key {
	return key{pos: b.CanonicalKey(), turn: b.Turn()}
}

// TranspositionMap is a single search invocation's transposition cache. A
// fresh map is created per Search call; under iterative deepening, the map
// from a completed iteration is retained and consulted read-only as the
// ordering oracle for the next iteration, which writes into its own fresh
// map (see IterativeDeepening). Not safe for concurrent use: the scheduling
// model is single-threaded (see package doc).
type TranspositionMap struct {
	entries  map[key]TranspositionEntry
	capacity int // -1 means unbounded.
}

// NewTranspositionMap returns an empty, unbounded transposition map.
func NewTranspositionMap() *TranspositionMap {
	return &TranspositionMap{entries: make(map[key]TranspositionEntry), capacity: -1}
}

// bytesPerEntry approximates a TranspositionEntry's map-resident footprint,
// used only to translate a hash-size budget in MB into an entry count.
const bytesPerEntry = 200

// NewTranspositionMapWithHash returns a transposition map that stops
// accepting new positions once it holds roughly sizeMB megabytes worth of
// entries. Positions already present are still overwritten. A sizeMB of
// zero accepts no entries at all.
func NewTranspositionMapWithHash(sizeMB uint) *TranspositionMap {
	capacity := int(uint64(sizeMB) << 20 / bytesPerEntry)
	return &TranspositionMap{entries: make(map[key]TranspositionEntry), capacity: capacity}
}

// Get returns the entry for the board's current position, if present.
func (m *TranspositionMap) Get(b *board.Board) (TranspositionEntry, bool) {
	if m == nil {
		return TranspositionEntry{}, false
	}
	e, ok := m.entries[keyOf(b)]
	return e, ok
}

// Put stores (or overwrites) the entry for the board's current position. If
// the map is at capacity and the position is not already present, Put is a
// no-op: full tables keep whatever they already found rather than evicting.
func (m *TranspositionMap) Put(b *board.Board, e TranspositionEntry) {
	k := keyOf(b)
	if _, ok := m.entries[k]; !ok && m.capacity >= 0 && len(m.entries) >= m.capacity {
		return
	}
	m.entries[k] = e
}

// Len returns the number of entries currently stored.
func (m *TranspositionMap) Len() int {
	return len(m.entries)
}
