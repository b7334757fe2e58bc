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

// Package ataxx implements the rules of Ataxx, a board game in which
// players clone and jump their pieces to capture the pieces of others.
package ataxx

import (
	"fmt"
	"strings"
)

// Square is a (row, column) coordinate on a board.
type Square struct {
	Row, Col int
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d, %d)", sq.Row, sq.Col)
}

// Distance returns the chebyshev distance between the two squares.
func Distance(a, b Square) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Board is a square grid of cells, each empty, holding a player's piece or
// holding an Obstacle. It also keeps an occupancy count for every player
// piece. The counts are not derived from the cells: whoever writes a cell
// is responsible for keeping its count in sync.
type Board struct {
	size   int
	cells  []Piece
	counts map[Piece]int
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) *Board {
	return &Board{
		size:   size,
		cells:  make([]Piece, size*size),
		counts: make(map[Piece]int),
	}
}

// Size returns the number of rows (and columns) of the board.
func (b *Board) Size() int {
	return b.size
}

// Contains reports whether the square lies on the board.
func (b *Board) Contains(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.size && sq.Col >= 0 && sq.Col < b.size
}

// Occupant returns the occupant of the given cell, NoPiece if it is empty.
func (b *Board) Occupant(row, col int) (Piece, error) {
	sq := Square{row, col}
	if !b.Contains(sq) {
		return NoPiece, fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfRange, sq, b.size, b.size)
	}

	return b.at(sq), nil
}

// SetOccupant writes the given occupant to a cell. Occupancy counts are
// not touched.
func (b *Board) SetOccupant(row, col int, piece Piece) error {
	sq := Square{row, col}
	if !b.Contains(sq) {
		return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfRange, sq, b.size, b.size)
	}

	b.set(sq, piece)
	return nil
}

// Count returns the occupancy count of the piece, 0 if never set.
func (b *Board) Count(piece Piece) int {
	return b.counts[piece]
}

// SetCount sets the occupancy count of the piece.
func (b *Board) SetCount(piece Piece, count int) {
	b.counts[piece] = count
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for _, piece := range b.cells {
		if piece == NoPiece {
			return false
		}
	}

	return true
}

// Squares returns every square of the board in row-major order.
func (b *Board) Squares() []Square {
	squares := make([]Square, 0, len(b.cells))
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			squares = append(squares, Square{row, col})
		}
	}

	return squares
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	board := &Board{
		size:   b.size,
		cells:  make([]Piece, len(b.cells)),
		counts: make(map[Piece]int, len(b.counts)),
	}

	copy(board.cells, b.cells)
	for piece, count := range b.counts {
		board.counts[piece] = count
	}

	return board
}

// String renders the board as a plain text grid, row 0 first.
func (b *Board) String() string {
	width := 1
	for _, piece := range b.cells {
		width = max(width, len(piece))
	}

	var str strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			cell := string(b.at(Square{row, col}))
			if cell == "" {
				cell = "."
			}

			if col > 0 {
				str.WriteByte(' ')
			}
			fmt.Fprintf(&str, "%-*s", width, cell)
		}
		str.WriteByte('\n')
	}

	return str.String()
}

// at and set are the unchecked cell accessors used by the rules.

func (b *Board) at(sq Square) Piece {
	return b.cells[sq.Row*b.size+sq.Col]
}

func (b *Board) set(sq Square, piece Piece) {
	b.cells[sq.Row*b.size+sq.Col] = piece
}

// place sets the occupant of an empty cell and updates the piece's count.
func (b *Board) place(sq Square, piece Piece) {
	b.set(sq, piece)
	if piece.IsPlayer() {
		b.counts[piece]++
	}
}

// neighbours returns the on-board squares within the given chebyshev
// radius of sq, excluding sq itself, in row-major order.
func (b *Board) neighbours(sq Square, radius int) []Square {
	squares := make([]Square, 0, (2*radius+1)*(2*radius+1)-1)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			target := Square{sq.Row + dr, sq.Col + dc}
			if (dr != 0 || dc != 0) && b.Contains(target) {
				squares = append(squares, target)
			}
		}
	}

	return squares
}
