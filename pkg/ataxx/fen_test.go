package ataxx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFEN(t *testing.T) {
	t.Run("pieces, gaps and obstacles", func(t *testing.T) {
		board, err := ParseFEN("X3O/1-1-1/5/5/O2RX")
		require.NoError(t, err)

		require.Equal(t, 5, board.Size())
		require.Equal(t, Piece("X"), board.at(Square{0, 0}))
		require.Equal(t, Obstacle, board.at(Square{1, 1}))
		require.Equal(t, Piece("R"), board.at(Square{4, 3}))
		require.Equal(t, 2, board.Count("X"))
		require.Equal(t, 2, board.Count("O"))
		require.Equal(t, 1, board.Count("R"))
		require.Zero(t, board.Count(Obstacle))
	})

	t.Run("multi digit gaps", func(t *testing.T) {
		board, err := ParseFEN("X10/11/11/11/11/11/11/11/11/11/10O")
		require.NoError(t, err)
		require.Equal(t, 11, board.Size())
		require.Equal(t, Piece("O"), board.at(Square{10, 10}))

		fen, err := board.FEN()
		require.NoError(t, err)
		require.Equal(t, "X10/11/11/11/11/11/11/11/11/11/10O", fen)
	})

	for _, fen := range []string{
		"",
		"5/5/5/5",
		"6/5/5/5/5",
		"4/5/5/5/5",
		"XXXXXX/5/5/5/5",
		"X:3O/5/5/5/5",
		"X99999999999999999999X/5/5/5/5",
		"X9223372036854775807X/5/5/5/5",
		"X3O/5/5/5/6",
	} {
		require.NotPanics(t, func() {
			_, err := ParseFEN(fen)
			require.ErrorIs(t, err, ErrInvalidPosition, "%q", fen)
		}, "%q", fen)
	}
}

func TestBoardFEN(t *testing.T) {
	board := NewBoard(5)
	board.place(Square{2, 2}, "XY")

	_, err := board.FEN()
	require.ErrorIs(t, err, ErrInvalidPosition)

	for _, fen := range []string{"X3O/5/2-2/5/O3X", "XOXOX/OXOXO/XOXOX/OXOXO/XOXOX", "5/5/5/5/5"} {
		board, err := ParseFEN(fen)
		require.NoError(t, err)

		got, err := board.FEN()
		require.NoError(t, err)
		require.Equal(t, fen, got)
	}
}
