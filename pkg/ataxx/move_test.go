package ataxx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseFEN(t *testing.T, fen string) *Board {
	t.Helper()

	board, err := ParseFEN(fen)
	require.NoError(t, err)
	return board
}

func TestMoveExecute(t *testing.T) {
	t.Run("jump vacates the origin and captures", func(t *testing.T) {
		board := NewBoard(5)
		board.place(Square{0, 0}, "X")
		board.place(Square{0, 1}, "O")
		board.place(Square{1, 1}, "O")

		captured, err := NewMove(Square{0, 0}, Square{0, 2}, "X").Execute(board)
		require.NoError(t, err)
		require.Equal(t, 2, captured)

		require.Equal(t, NoPiece, board.at(Square{0, 0}))
		require.Equal(t, Piece("X"), board.at(Square{0, 1}))
		require.Equal(t, Piece("X"), board.at(Square{0, 2}))
		require.Equal(t, Piece("X"), board.at(Square{1, 1}))
		require.Equal(t, 3, board.Count("X"))
		require.Equal(t, 0, board.Count("O"))
	})

	t.Run("clone keeps the origin", func(t *testing.T) {
		board := mustParseFEN(t, "X4/5/5/5/4O")

		captured, err := NewMove(Square{0, 0}, Square{1, 1}, "X").Execute(board)
		require.NoError(t, err)
		require.Zero(t, captured)

		require.Equal(t, Piece("X"), board.at(Square{0, 0}))
		require.Equal(t, Piece("X"), board.at(Square{1, 1}))
		require.Equal(t, 2, board.Count("X"))
		require.Equal(t, 1, board.Count("O"))
	})

	t.Run("obstacles and own pieces are not captured", func(t *testing.T) {
		board := mustParseFEN(t, "XX-2/1O3/5/5/5")

		captured, err := NewMove(Square{0, 0}, Square{1, 2}, "X").Execute(board)
		require.NoError(t, err)
		require.Equal(t, 1, captured)

		require.Equal(t, Obstacle, board.at(Square{0, 2}))
		require.Equal(t, Piece("X"), board.at(Square{1, 1}))
		require.Equal(t, 3, board.Count("X"), "jump leaves 1 + destination + 1 capture")
		require.Zero(t, board.Count(Obstacle))
	})

	t.Run("every enemy is captured", func(t *testing.T) {
		board := mustParseFEN(t, "X4/5/1ORB1/1R1O1/1BOR1")
		before, err := board.FEN()
		require.NoError(t, err)

		captured, err := NewMove(Square{0, 0}, Square{2, 1}, "X").Execute(board)
		require.ErrorIs(t, err, ErrIllegalMove, "(2, 1) is occupied")
		require.Zero(t, captured)

		after, err := board.FEN()
		require.NoError(t, err)
		require.Equal(t, before, after, "failed moves must not mutate the board")

		board = mustParseFEN(t, "5/X4/1ORB1/1R1O1/1BOR1")
		captured, err = NewMove(Square{1, 0}, Square{3, 2}, "X").Execute(board)
		require.NoError(t, err)
		require.Equal(t, 8, captured)

		after, err = board.FEN()
		require.NoError(t, err)
		require.Equal(t, "5/5/1XXX1/1XXX1/1XXX1", after)
		require.Equal(t, 9, board.Count("X"))
		for _, piece := range []Piece{"O", "R", "B"} {
			require.Zero(t, board.Count(piece))
		}
	})

	t.Run("capture is clipped to the board", func(t *testing.T) {
		board := mustParseFEN(t, "5/5/5/3OO/3X1")

		captured, err := NewMove(Square{4, 3}, Square{4, 4}, "X").Execute(board)
		require.NoError(t, err)
		require.Equal(t, 2, captured)
		require.Equal(t, 4, board.Count("X"))
	})
}

func TestMoveExecuteIllegal(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"origin not owned", NewMove(Square{4, 0}, Square{3, 0}, "X")},
		{"origin empty", NewMove(Square{1, 1}, Square{1, 2}, "X")},
		{"destination occupied", NewMove(Square{0, 0}, Square{0, 1}, "X")},
		{"same square", NewMove(Square{0, 0}, Square{0, 0}, "X")},
		{"too far", NewMove(Square{0, 0}, Square{3, 3}, "X")},
		{"origin out of range", NewMove(Square{-1, 0}, Square{0, 0}, "X")},
		{"destination out of range", NewMove(Square{0, 0}, Square{0, -1}, "X")},
		{"obstacle can't move", NewMove(Square{2, 2}, Square{2, 3}, Obstacle)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mustParseFEN(t, "XO3/5/2-2/5/O3X")
			before, _ := board.FEN()

			_, err := test.move.Execute(board)
			require.ErrorIs(t, err, ErrIllegalMove)

			after, _ := board.FEN()
			require.Equal(t, before, after)
			require.Equal(t, 2, board.Count("X"))
			require.Equal(t, 2, board.Count("O"))
		})
	}

	t.Run("out of range wraps both errors", func(t *testing.T) {
		board := NewBoard(5)
		_, err := NewMove(Square{0, 0}, Square{9, 9}, "X").Execute(board)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestParseMove(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		move, ok := ParseMove("X", "0 1  2 3")
		require.True(t, ok)
		require.Equal(t, NewMove(Square{0, 1}, Square{2, 3}, "X"), move)
		require.Equal(t, "0 1 2 3", move.Notation())
	})

	t.Run("negative numbers parse and fail on execution", func(t *testing.T) {
		move, ok := ParseMove("X", "-1 0 0 0")
		require.True(t, ok)
		require.Equal(t, Square{-1, 0}, move.From)
	})

	for _, line := range []string{"", "0 1 2", "0 1 2 3 4", "a b c d", "0 1 2 x", "0.5 1 2 3"} {
		_, ok := ParseMove("X", line)
		require.False(t, ok, "%q should not parse", line)
	}
}

func TestMoveKind(t *testing.T) {
	clone := NewMove(Square{2, 2}, Square{1, 3}, "X")
	require.True(t, clone.IsClone())
	require.False(t, clone.IsJump())

	jump := NewMove(Square{2, 2}, Square{0, 3}, "X")
	require.True(t, jump.IsJump())
	require.False(t, jump.IsClone())
}
