// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/logrusorgru/aurora"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/match"
)

// view renders games on a console.
type view struct {
	out    io.Writer
	au     aurora.Aurora
	pieces []ataxx.Piece
}

func newView(out io.Writer, colors bool, pieces []ataxx.Piece) *view {
	return &view{out: out, au: aurora.NewAurora(colors), pieces: pieces}
}

// paint colors a cell's text by its occupant.
func (v *view) paint(piece ataxx.Piece) aurora.Value {
	switch index := slices.Index(v.pieces, piece); {
	case piece == ataxx.NoPiece:
		return v.au.Faint(".")
	case piece == ataxx.Obstacle:
		return v.au.Bold(piece.String())
	case index == 0:
		return v.au.Red(piece.String())
	case index == 1:
		return v.au.Blue(piece.String())
	case index == 2:
		return v.au.Green(piece.String())
	case index == 3:
		return v.au.Yellow(piece.String())
	default:
		return v.au.Magenta(piece.String())
	}
}

func (v *view) board(board *ataxx.Board) {
	var b strings.Builder

	b.WriteString("   ")
	for col := 0; col < board.Size(); col++ {
		fmt.Fprintf(&b, " %s", v.au.Cyan(col%10))
	}
	b.WriteByte('\n')

	for row := 0; row < board.Size(); row++ {
		fmt.Fprint(&b, v.au.Cyan(fmt.Sprintf("%3d", row)))
		for col := 0; col < board.Size(); col++ {
			piece, _ := board.Occupant(row, col)
			fmt.Fprintf(&b, " %s", v.paint(piece))
		}
		b.WriteByte('\n')
	}

	counts := make([]string, len(v.pieces))
	for i, piece := range v.pieces {
		counts[i] = fmt.Sprintf("%s: %d", v.paint(piece), board.Count(piece))
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Join(counts, "  "))
	_, _ = io.WriteString(v.out, b.String())
}

func (v *view) start(board *ataxx.Board, turn ataxx.Piece) {
	v.board(board)
	v.turn(turn)
}

func (v *view) move(event match.Event) {
	fmt.Fprintf(v.out, "\n%s, capturing %d\n\n", event.Move, event.Captured)
	v.board(event.Board)

	if !event.Result.Over() {
		v.turn(event.Turn)
	}
}

func (v *view) turn(piece ataxx.Piece) {
	fmt.Fprintf(v.out, "Turn for %s\n", v.paint(piece))
}

func (v *view) outcome(outcome *match.Outcome) {
	fmt.Fprintf(v.out, "\n%s %s (%s) after %d moves\n",
		v.au.Bold("Game over:"), outcome.Result, outcome.Score(), len(outcome.Moves))
}
