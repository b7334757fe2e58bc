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
	"slices"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ataxx/pkg/random"
)

const (
	// DefaultDimension and DefaultObstacles are the standard game setup.
	DefaultDimension = 7
	DefaultObstacles = 4

	MinDimension = 5

	// ObstacleShare is the percentage of the board obstacles may cover.
	ObstacleShare = 20
)

// Rules is the rules engine of an Ataxx game on a Dimension x Dimension
// board with a number of symmetrically scattered obstacles:
//
//   - The number of players is between 2 and 4, playing in the given order.
//   - Each turn a player moves one of its pieces to an empty cell at most two
//     cells away. At distance 1 the piece is duplicated, at distance 2 it
//     jumps, leaving its origin empty.
//   - Every enemy piece around the destination is converted to the moved
//     piece.
//   - The game ends when the board is full, fewer than two players have
//     pieces left, or no one can move. The player with strictly the most
//     pieces wins, otherwise it's a draw.
type Rules struct {
	dimension int
	obstacles int

	random random.Source
}

// Option configures optional parameters of the Rules.
type Option func(*Rules)

// WithRandom sets the generator used to scatter obstacles.
func WithRandom(src random.Source) Option {
	return func(rules *Rules) {
		rules.random = src
	}
}

// NewRules creates the rules for a game on a dimension x dimension board.
// The dimension must be odd and at least 5. The obstacle count is clamped
// to between 0 and MaxObstacles(dimension).
func NewRules(dimension, obstacles int, options ...Option) (*Rules, error) {
	switch {
	case dimension < MinDimension:
		return nil, fmt.Errorf("%w: dimension must be at least %d: %d", ErrConfiguration, MinDimension, dimension)
	case dimension%2 == 0:
		return nil, fmt.Errorf("%w: dimension must be odd: %d", ErrConfiguration, dimension)
	}

	limit := MaxObstacles(dimension)
	if obstacles > limit {
		logrus.Warnf("ataxx: %d obstacles requested, at most %d fit a %dx%d board", obstacles, limit, dimension, dimension)
	}

	rules := &Rules{
		dimension: dimension,
		obstacles: min(max(obstacles, 0), limit),
	}

	for _, option := range options {
		option(rules)
	}

	if rules.random == nil {
		rules.random = random.FromTime()
	}

	return rules, nil
}

// MaxObstacles returns the most obstacles a dimension x dimension board
// can hold, ObstacleShare percent of its cells.
func MaxObstacles(dimension int) int {
	return dimension * dimension * ObstacleShare / 100
}

// Dimension returns the number of rows and columns of the board.
func (rules *Rules) Dimension() int {
	return rules.dimension
}

// Obstacles returns the number of obstacles scattered on a new board.
func (rules *Rules) Obstacles() int {
	return rules.obstacles
}

// Description returns a short description of the game.
func (rules *Rules) Description() string {
	return fmt.Sprintf("Ataxx %dx%d: a board game for Atari guys of the nineties.", rules.dimension, rules.dimension)
}

func (rules *Rules) MinPlayers() int { return 2 }
func (rules *Rules) MaxPlayers() int { return 4 }

// ValidatePieces checks that the pieces can take part in a game: their
// number is within [MinPlayers, MaxPlayers] and they are distinct player
// pieces.
func (rules *Rules) ValidatePieces(pieces []Piece) error {
	if len(pieces) < rules.MinPlayers() || len(pieces) > rules.MaxPlayers() {
		return fmt.Errorf(
			"%w: between %d and %d players required, got %d",
			ErrConfiguration, rules.MinPlayers(), rules.MaxPlayers(), len(pieces),
		)
	}

	for i, piece := range pieces {
		if !piece.IsPlayer() {
			return fmt.Errorf("%w: %q is not a valid player piece", ErrConfiguration, piece)
		}

		if slices.Index(pieces, piece) != i {
			return fmt.Errorf("%w: duplicate piece %q", ErrConfiguration, piece)
		}
	}

	return nil
}

// CreateBoard returns a new board with the pieces in their starting
// positions and the obstacles scattered around. Only the first four pieces
// get a starting position.
func (rules *Rules) CreateBoard(pieces []Piece) *Board {
	board := NewBoard(rules.dimension)
	last, mid := rules.dimension-1, rules.dimension/2

	starts := [][2]Square{
		{{0, 0}, {last, last}},
		{{last, 0}, {0, last}},
		{{mid, 0}, {mid, last}},
		{{0, mid}, {last, mid}},
	}

	for i, piece := range pieces {
		if i >= len(starts) {
			break
		}

		for _, sq := range starts[i] {
			board.place(sq, piece)
		}
	}

	rules.createObstacles(board, rules.obstacles)
	return board
}

// createObstacles scatters up to total obstacles on the board. The
// obstacles are placed in groups of cells which are closed under reflection
// along the central row and column, so every group is either four cells,
// two cells on a central line, or the centre itself. Groups are chosen so
// that the quota is met exactly whenever the board has room for it.
func (rules *Rules) createObstacles(b *Board, total int) {
	placed := 0

scatter:
	for placed < total {
		remaining := total - placed

		for _, size := range groupPreference(remaining) {
			sq, found := b.randomEmpty(rules.random, func(sq Square) bool {
				group := b.mirrors(sq)
				return len(group) == size && b.allEmpty(group)
			})

			if !found {
				continue
			}

			group := b.mirrors(sq)
			for _, cell := range group {
				b.set(cell, Obstacle)
			}

			placed += len(group)
			logrus.WithField("cells", group).Tracef("ataxx: placed obstacle group (%d/%d)", placed, total)
			continue scatter
		}

		// No group fits in the remaining empty cells.
		logrus.Tracef("ataxx: no obstacle group fits, placed %d of %d obstacles", placed, total)
		return
	}
}

// groupPreference returns the obstacle group sizes, most preferred first,
// that can be used to fill the remaining quota.
func groupPreference(remaining int) []int {
	var sizes []int
	switch remaining % 4 {
	case 0:
		sizes = []int{4, 2, 1}
	case 1:
		sizes = []int{1, 4, 2}
	case 2:
		sizes = []int{2, 4, 1}
	case 3:
		sizes = []int{2, 1, 4}
	}

	return slices.DeleteFunc(sizes, func(size int) bool {
		return size > remaining
	})
}

// mirrors returns the distinct images of sq under reflection along the
// central row and column of the board, sq included.
func (b *Board) mirrors(sq Square) []Square {
	last := b.size - 1
	images := []Square{
		sq,
		{last - sq.Row, sq.Col},
		{sq.Row, last - sq.Col},
		{last - sq.Row, last - sq.Col},
	}

	group := make([]Square, 0, len(images))
	for _, image := range images {
		if !slices.Contains(group, image) {
			group = append(group, image)
		}
	}

	return group
}

func (b *Board) allEmpty(squares []Square) bool {
	for _, sq := range squares {
		if b.at(sq) != NoPiece {
			return false
		}
	}

	return true
}

// randomEmpty looks for an empty square satisfying the filter, scanning
// the board in row-major order from a random starting square. It returns
// false if there is no such square, which includes a full board.
func (b *Board) randomEmpty(src random.Source, filter func(Square) bool) (Square, bool) {
	cells := len(b.cells)
	start := src.Intn(b.size)*b.size + src.Intn(b.size)

	for i := 0; i < cells; i++ {
		index := (start + i) % cells
		sq := Square{index / b.size, index % b.size}
		if b.at(sq) == NoPiece && filter(sq) {
			return sq, true
		}
	}

	return Square{}, false
}

// InitialPlayer returns the piece which moves first.
func (rules *Rules) InitialPlayer(board *Board, pieces []Piece) Piece {
	return pieces[0]
}

// ValidMoves returns every legal move of turn on the board, scanning the
// board in row-major order and the 5x5 neighbourhood of each of its pieces
// in row-major order.
func (rules *Rules) ValidMoves(board *Board, pieces []Piece, turn Piece) []Move {
	var moves []Move
	for _, from := range board.Squares() {
		if board.at(from) != turn {
			continue
		}

		for _, to := range board.neighbours(from, 2) {
			if board.at(to) == NoPiece {
				moves = append(moves, NewMove(from, to, turn))
			}
		}
	}

	return moves
}

// CanMove reports whether turn has at least one legal move.
func (rules *Rules) CanMove(board *Board, turn Piece) bool {
	for _, from := range board.Squares() {
		if board.at(from) != turn {
			continue
		}

		for _, to := range board.neighbours(from, 2) {
			if board.at(to) == NoPiece {
				return true
			}
		}
	}

	return false
}

// NextPlayer returns the first piece after turn, in order and wrapping
// around, which can move. turn itself is considered last. It returns false
// if no one can move.
func (rules *Rules) NextPlayer(board *Board, pieces []Piece, turn Piece) (Piece, bool) {
	index := slices.Index(pieces, turn)
	for i := 1; i <= len(pieces); i++ {
		next := pieces[(index+i+len(pieces))%len(pieces)]
		if rules.CanMove(board, next) {
			return next, true
		}
	}

	return NoPiece, false
}

// UpdateState computes the state of the game after turn has moved.
func (rules *Rules) UpdateState(board *Board, pieces []Piece, turn Piece) Result {
	left := 0
	for _, piece := range pieces {
		if board.Count(piece) != 0 {
			left++
		}
	}

	var reason string
	switch {
	case left < 2:
		reason = ReasonEradication
	case board.IsFull():
		reason = ReasonBoardFull
	default:
		if _, found := rules.NextPlayer(board, pieces, turn); found {
			return Result{State: InPlay}
		}

		reason = ReasonNoMoves
	}

	// A strictly greater count takes the lead, an equal count clears it.
	result := Result{State: Draw, Reason: reason}
	best := 0
	for _, piece := range pieces {
		switch count := board.Count(piece); {
		case count == best:
			result.State, result.Winner = Draw, NoPiece
		case count > best:
			best = count
			result.State, result.Winner = Won, piece
		}
	}

	return result
}

// Evaluate is the static evaluation of the board from p's point of view
// used by searching players. It is neutral for every position.
func (rules *Rules) Evaluate(board *Board, pieces []Piece, turn, p Piece) float64 {
	return 0
}
