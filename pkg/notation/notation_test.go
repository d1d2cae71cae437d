package notation_test

import (
	"testing"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveRoundTrip(t *testing.T) {
	tests := []string{"e2e4", "g1f3", "a7a8q", "h7h8n"}
	for _, s := range tests {
		m, err := notation.ParseMove(s)
		require.NoError(t, err)
		assert.Equal(t, s, notation.FormatMove(m))
	}
}

func TestParseMoveValues(t *testing.T) {
	m, err := notation.ParseMove("e2e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewMove(board.Rank2, board.FileE, board.Rank4, board.FileE), m)
}

func TestParseMoveInvalid(t *testing.T) {
	tests := []string{"", "e2e", "z2e4", "e2e9", "e7e8x"}
	for _, s := range tests {
		_, err := notation.ParseMove(s)
		assert.Error(t, err, s)
	}
}
