package search_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/eval"
	"github.com/herohde/chesscore/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionMapGetPut(t *testing.T) {
	tt := search.NewTranspositionMap()
	b := board.NewBoard()

	_, ok := tt.Get(b)
	assert.False(t, ok)

	entry := search.TranspositionEntry{
		Score:         1.5,
		Variation:     []board.Move{board.NewMove(board.Rank2, board.FileE, board.Rank4, board.FileE)},
		DepthSearched: 3,
	}
	tt.Put(b, entry)

	got, ok := tt.Get(b)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, tt.Len())
}

func TestTranspositionMapOverwrite(t *testing.T) {
	tt := search.NewTranspositionMap()
	b := board.NewBoard()

	tt.Put(b, search.TranspositionEntry{Score: 1, DepthSearched: 2})
	tt.Put(b, search.TranspositionEntry{Score: 2, DepthSearched: 4})

	got, ok := tt.Get(b)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(2), got.Score)
	assert.Equal(t, 4, got.DepthSearched)
	assert.Equal(t, 1, tt.Len())
}
