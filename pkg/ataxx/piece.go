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
	"strings"
)

// Piece is the identity of a player's mark on the board. Two pieces are
// equal iff their labels are equal.
type Piece string

const (
	// NoPiece is the occupant of an empty cell.
	NoPiece Piece = ""

	// Obstacle is the occupant of a blocked cell. It is never owned by a
	// player, never moves and is not tracked in the occupancy counts.
	Obstacle Piece = "*"
)

// NewPiece validates the given label and returns it as a Piece.
func NewPiece(label string) (Piece, error) {
	switch {
	case label == "":
		return NoPiece, fmt.Errorf("%w: empty piece label", ErrConfiguration)
	case strings.ContainsAny(label, " \t\r\n:,"):
		return NoPiece, fmt.Errorf("%w: piece label %q contains a separator", ErrConfiguration, label)
	case Piece(label) == Obstacle:
		return NoPiece, fmt.Errorf("%w: %q is reserved for obstacles", ErrConfiguration, label)
	}

	return Piece(label), nil
}

// IsPlayer reports whether the piece is a player's piece, i.e. neither
// empty nor an obstacle.
func (piece Piece) IsPlayer() bool {
	return piece != NoPiece && piece != Obstacle
}

func (piece Piece) String() string {
	return string(piece)
}
