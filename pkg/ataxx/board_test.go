package ataxx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardOccupant(t *testing.T) {
	board := NewBoard(5)

	t.Run("new board is empty", func(t *testing.T) {
		for _, sq := range board.Squares() {
			piece, err := board.Occupant(sq.Row, sq.Col)
			require.NoError(t, err)
			require.Equal(t, NoPiece, piece)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, board.SetOccupant(2, 3, "X"))

		piece, err := board.Occupant(2, 3)
		require.NoError(t, err)
		require.Equal(t, Piece("X"), piece)
		require.Zero(t, board.Count("X"), "SetOccupant must not touch the counts")
	})

	t.Run("out of range", func(t *testing.T) {
		for _, sq := range []Square{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
			_, err := board.Occupant(sq.Row, sq.Col)
			require.ErrorIs(t, err, ErrOutOfRange)
			require.ErrorIs(t, board.SetOccupant(sq.Row, sq.Col, "X"), ErrOutOfRange)
		}
	})
}

func TestBoardCount(t *testing.T) {
	board := NewBoard(5)
	require.Zero(t, board.Count("never-seen"))

	board.SetCount("X", 3)
	require.Equal(t, 3, board.Count("X"))
}

func TestBoardIsFull(t *testing.T) {
	board := NewBoard(5)
	require.False(t, board.IsFull())

	for i, sq := range board.Squares() {
		require.False(t, board.IsFull())
		piece := Piece("X")
		if i%2 == 0 {
			piece = Obstacle
		}
		require.NoError(t, board.SetOccupant(sq.Row, sq.Col, piece))
	}

	require.True(t, board.IsFull())
}

func TestBoardCopy(t *testing.T) {
	board := NewBoard(5)
	board.place(Square{0, 0}, "X")

	clone := board.Copy()
	clone.place(Square{1, 1}, "X")

	require.Equal(t, 1, board.Count("X"))
	require.Equal(t, 2, clone.Count("X"))
	require.Equal(t, NoPiece, board.at(Square{1, 1}))
}

func TestBoardString(t *testing.T) {
	board := NewBoard(5)
	board.place(Square{0, 0}, "X")
	board.set(Square{2, 2}, Obstacle)
	board.place(Square{4, 4}, "O")

	require.Equal(t,
		"X . . . .\n"+
			". . . . .\n"+
			". . * . .\n"+
			". . . . .\n"+
			". . . . O\n",
		board.String(),
	)
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Square
		want int
	}{
		{Square{0, 0}, Square{0, 0}, 0},
		{Square{0, 0}, Square{1, 1}, 1},
		{Square{0, 0}, Square{0, 2}, 2},
		{Square{0, 0}, Square{2, 1}, 2},
		{Square{4, 4}, Square{1, 3}, 3},
	}

	for _, test := range tests {
		require.Equal(t, test.want, Distance(test.a, test.b), "%s -> %s", test.a, test.b)
		require.Equal(t, test.want, Distance(test.b, test.a), "%s -> %s", test.b, test.a)
	}
}
