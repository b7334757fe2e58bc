package player

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/random"
)

var pieces = []ataxx.Piece{"X", "O"}

func setup(t *testing.T, fen string) (*ataxx.Board, *ataxx.Rules) {
	t.Helper()

	board, err := ataxx.ParseFEN(fen)
	require.NoError(t, err)

	rules, err := ataxx.NewRules(board.Size(), 0, ataxx.WithRandom(random.New(1)))
	require.NoError(t, err)

	return board, rules
}

func TestManual(t *testing.T) {
	board, rules := setup(t, "X3O/5/5/5/O3X")

	t.Run("re-prompts on invalid input", func(t *testing.T) {
		var out strings.Builder
		player := NewManual(strings.NewReader("garbage\n\n  0 0 1 1  \n"), &out, ataxx.ParseMove)

		move, err := player.RequestMove(context.Background(), "X", board, pieces, rules)
		require.NoError(t, err)
		require.Equal(t, ataxx.NewMove(ataxx.Square{Row: 0, Col: 0}, ataxx.Square{Row: 1, Col: 1}, "X"), move)

		require.Equal(t, 3, strings.Count(out.String(), "Please enter your move (X): "))
		require.Contains(t, out.String(), ataxx.MoveHelp)
	})

	t.Run("closed input", func(t *testing.T) {
		player := NewManual(strings.NewReader("nope\n"), io.Discard, ataxx.ParseMove)

		_, err := player.RequestMove(context.Background(), "X", board, pieces, rules)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("cancelled", func(t *testing.T) {
		in, w := io.Pipe()
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		player := NewManual(in, io.Discard, ataxx.ParseMove)
		_, err := player.RequestMove(ctx, "X", board, pieces, rules)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("close stops the reader", func(t *testing.T) {
		player := NewManual(strings.NewReader("0 0 1 1\na\nb\nc\n"), io.Discard, ataxx.ParseMove)

		_, err := player.RequestMove(context.Background(), "X", board, pieces, rules)
		require.NoError(t, err)

		require.NoError(t, player.Close())
		require.NoError(t, player.Close())

		select {
		case <-player.stopped:
		case <-time.After(time.Second):
			t.Fatal("reader still blocked after Close")
		}

		_, err = player.RequestMove(context.Background(), "X", board, pieces, rules)
		require.ErrorIs(t, err, ErrClosed)
	})
}

func TestRandom(t *testing.T) {
	board, rules := setup(t, "X3O/5/5/5/O3X")
	valid := rules.ValidMoves(board, pieces, "X")

	player := NewRandom(random.New(7))
	for i := 0; i < 50; i++ {
		move, err := player.RequestMove(context.Background(), "X", board, pieces, rules)
		require.NoError(t, err)
		require.Contains(t, valid, move)
	}

	t.Run("nothing to move", func(t *testing.T) {
		board, rules := setup(t, "X--2/---2/---2/5/4O")

		_, err := player.RequestMove(context.Background(), "X", board, pieces, rules)
		require.ErrorIs(t, err, ataxx.ErrNoMoves)
	})
}

func TestAI(t *testing.T) {
	board, rules := setup(t, "XOO2/OO3/5/5/4X")
	before, err := board.FEN()
	require.NoError(t, err)

	move, err := NewAI().RequestMove(context.Background(), "X", board, pieces, rules)
	require.NoError(t, err)
	require.Equal(t, ataxx.NewMove(ataxx.Square{Row: 0, Col: 0}, ataxx.Square{Row: 1, Col: 2}, "X"), move)

	after, err := board.FEN()
	require.NoError(t, err)
	require.Equal(t, before, after, "the board must not be modified")

	t.Run("clones before empty jumps", func(t *testing.T) {
		board, rules := setup(t, "7/7/7/3X3/7/7/6O")

		move, err := NewAI().RequestMove(context.Background(), "X", board, pieces, rules)
		require.NoError(t, err)
		require.Equal(t, ataxx.NewMove(ataxx.Square{Row: 3, Col: 3}, ataxx.Square{Row: 2, Col: 2}, "X"), move)
	})

	t.Run("nothing to move", func(t *testing.T) {
		_, err := NewAI().RequestMove(context.Background(), "R", board, pieces, rules)
		require.ErrorIs(t, err, ataxx.ErrNoMoves)
	})
}

func TestDelayed(t *testing.T) {
	board, rules := setup(t, "X3O/5/5/5/O3X")
	want := ataxx.NewMove(ataxx.Square{Row: 0, Col: 0}, ataxx.Square{Row: 0, Col: 1}, "X")

	calls := 0
	inner := Func(func(context.Context, ataxx.Piece, *ataxx.Board, []ataxx.Piece, *ataxx.Rules) (ataxx.Move, error) {
		calls++
		return want, nil
	})

	t.Run("waits then delegates", func(t *testing.T) {
		move, err := NewDelayed(inner, time.Millisecond, io.Discard).RequestMove(context.Background(), "X", board, pieces, rules)
		require.NoError(t, err)
		require.Equal(t, want, move)
		require.Equal(t, 1, calls)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewDelayed(inner, time.Hour, io.Discard).RequestMove(ctx, "X", board, pieces, rules)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, calls)
	})
}
