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

package ataxx

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveHelp describes the text format accepted by ParseMove.
const MoveHelp = "'originRow originCol destinationRow destinationCol' to move a piece from origin to destination."

// Move moves (distance 2) or clones (distance 1) Piece from From to To.
type Move struct {
	From, To Square
	Piece    Piece
}

// NewMove returns a move of piece from the origin to the destination.
func NewMove(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Piece: piece}
}

// Distance returns the chebyshev distance covered by the move.
func (move Move) Distance() int {
	return Distance(move.From, move.To)
}

// IsClone reports whether the move duplicates the piece.
func (move Move) IsClone() bool {
	return move.Distance() == 1
}

// IsJump reports whether the move relocates the piece.
func (move Move) IsJump() bool {
	return move.Distance() == 2
}

// Execute plays the move on the board and returns the number of captured
// pieces. Any failed precondition is reported as an ErrIllegalMove and
// leaves the board as it was.
func (move Move) Execute(b *Board) (int, error) {
	origin, err := b.Occupant(move.From.Row, move.From.Col)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}

	if origin != move.Piece || !move.Piece.IsPlayer() {
		return 0, fmt.Errorf("%w: you don't own a piece at %s", ErrIllegalMove, move.From)
	}

	destination, err := b.Occupant(move.To.Row, move.To.Col)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}

	if destination != NoPiece {
		return 0, fmt.Errorf("%w: position %s is already occupied", ErrIllegalMove, move.To)
	}

	distance := move.Distance()
	if distance > 2 {
		return 0, fmt.Errorf("%w: can't jump %d cells, maximum is 2", ErrIllegalMove, distance)
	}

	b.place(move.To, move.Piece)

	// A jump vacates the origin, a clone keeps it.
	if distance == 2 {
		b.set(move.From, NoPiece)
		b.counts[move.Piece]--
	}

	return move.capture(b), nil
}

// capture converts every enemy piece around the destination.
func (move Move) capture(b *Board) int {
	captured := 0
	for _, sq := range b.neighbours(move.To, 1) {
		enemy := b.at(sq)
		if !enemy.IsPlayer() || enemy == move.Piece {
			continue
		}

		b.set(sq, move.Piece)
		b.counts[move.Piece]++
		b.counts[enemy]--
		captured++
	}

	return captured
}

// Notation returns the move in the text format accepted by ParseMove.
func (move Move) Notation() string {
	return fmt.Sprintf("%d %d %d %d", move.From.Row, move.From.Col, move.To.Row, move.To.Col)
}

func (move Move) String() string {
	return fmt.Sprintf("Place a piece '%s' from %s to %s", move.Piece, move.From, move.To)
}

// MoveParser builds a move of the given piece from a line of text. The
// second return value is false if the line can't be parsed, in which case
// the caller should ask for another line.
type MoveParser func(piece Piece, line string) (Move, bool)

// ParseMove parses four whitespace separated integers of the form
// "originRow originCol destinationRow destinationCol".
func ParseMove(piece Piece, line string) (Move, bool) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Move{}, false
	}

	var coords [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Move{}, false
		}

		coords[i] = n
	}

	return NewMove(Square{coords[0], coords[1]}, Square{coords[2], coords[3]}, piece), true
}
