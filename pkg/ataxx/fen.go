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
	"unicode/utf8"
)

// FEN returns the board in a FEN-like notation: rows from row 0 separated
// by '/', runs of empty cells as decimal numbers, '-' for obstacles and the
// label of every other piece. Only single character labels can be encoded.
func (b *Board) FEN() (string, error) {
	var fen strings.Builder

	for row := 0; row < b.size; row++ {
		if row > 0 {
			fen.WriteByte('/')
		}

		gaps := 0
		for col := 0; col < b.size; col++ {
			piece := b.at(Square{row, col})
			if piece == NoPiece {
				gaps++
				continue
			}

			if gaps > 0 {
				fen.WriteString(strconv.Itoa(gaps))
				gaps = 0
			}

			switch {
			case piece == Obstacle:
				fen.WriteByte('-')
			case utf8.RuneCountInString(string(piece)) != 1, !validFENLabel(piece):
				return "", fmt.Errorf("%w: piece %q can't be encoded", ErrInvalidPosition, piece)
			default:
				fen.WriteString(string(piece))
			}
		}

		if gaps > 0 {
			fen.WriteString(strconv.Itoa(gaps))
		}
	}

	return fen.String(), nil
}

// ParseFEN parses a board in the notation returned by Board.FEN. The
// occupancy counts of the returned board are derived from its cells.
func ParseFEN(fen string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(fen), "/")
	size := len(rows)
	if size < MinDimension {
		return nil, fmt.Errorf("%w: %d rows, at least %d required", ErrInvalidPosition, size, MinDimension)
	}

	board := NewBoard(size)
	for row, data := range rows {
		col := 0
		for i := 0; i < len(data); {
			r, width := utf8.DecodeRuneInString(data[i:])

			switch {
			case r >= '0' && r <= '9':
				j := i
				for j < len(data) && data[j] >= '0' && data[j] <= '9' {
					j++
				}

				gaps, err := strconv.Atoi(data[i:j])
				if err != nil || gaps > size-col {
					return nil, fmt.Errorf("%w: row %d is too long", ErrInvalidPosition, row)
				}

				col += gaps
				i = j
				continue

			case col >= size:
				return nil, fmt.Errorf("%w: row %d is too long", ErrInvalidPosition, row)

			case r == '-':
				board.set(Square{row, col}, Obstacle)

			default:
				piece := Piece(string(r))
				if !validFENLabel(piece) {
					return nil, fmt.Errorf("%w: invalid piece %q in row %d", ErrInvalidPosition, piece, row)
				}

				board.place(Square{row, col}, piece)
			}

			col++
			i += width
		}

		if col != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPosition, row, col, size)
		}
	}

	return board, nil
}

func validFENLabel(piece Piece) bool {
	_, err := NewPiece(string(piece))
	return err == nil && !strings.ContainsAny(string(piece), "/-0123456789")
}
