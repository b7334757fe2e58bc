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

// Package match drives games of Ataxx: it builds the board, asks each
// player for a move in turn, executes it and stops once the game is over.
package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/player"
)

type Config struct {
	Factory *Factory

	// Pieces is the turn order. It defaults to the factory's pieces.
	Pieces []ataxx.Piece

	// Players holds the player of every piece, in the order of Pieces.
	Players []player.Player

	// Position is an optional starting board. It is copied, not modified.
	Position *ataxx.Board

	// MoveTimeout bounds every move request when positive.
	MoveTimeout time.Duration

	// Out receives the reasons illegal moves were rejected.
	Out io.Writer

	// OnStart, if set, is called with the starting board and player.
	OnStart func(board *ataxx.Board, turn ataxx.Piece)

	// OnMove, if set, is called after every executed move.
	OnMove func(Event)
}

// Event describes an executed move.
type Event struct {
	Ply      int
	Move     ataxx.Move
	Captured int

	Board  *ataxx.Board
	Result ataxx.Result

	// Turn is the piece to move next, NoPiece once the game is over.
	Turn ataxx.Piece
}

// Run plays a game to completion. An illegal move is reported and the same
// player is asked again. Errors returned by a player end the game; the
// outcome up to that point is returned alongside the error.
func Run(ctx context.Context, config *Config) (*Outcome, error) {
	rules, err := config.Factory.Rules()
	if err != nil {
		return nil, err
	}

	pieces := config.Pieces
	if len(pieces) == 0 {
		pieces = config.Factory.DefaultPieces()
	}

	if err := rules.ValidatePieces(pieces); err != nil {
		return nil, err
	}

	if len(config.Players) != len(pieces) {
		return nil, fmt.Errorf("%w: %d players for %d pieces", ataxx.ErrConfiguration, len(config.Players), len(pieces))
	}

	var board *ataxx.Board
	switch {
	case config.Position == nil:
		board = rules.CreateBoard(pieces)
	case config.Position.Size() != rules.Dimension():
		return nil, fmt.Errorf(
			"%w: position is %dx%d, rules are %dx%d", ataxx.ErrConfiguration,
			config.Position.Size(), config.Position.Size(), rules.Dimension(), rules.Dimension(),
		)
	default:
		board = config.Position.Copy()
	}

	out := config.Out
	if out == nil {
		out = io.Discard
	}

	outcome := &Outcome{
		ID:     uuid.New(),
		Pieces: slices.Clone(pieces),
		Board:  board,
	}

	log := logrus.WithFields(logrus.Fields{
		"game":      outcome.ID,
		"dimension": rules.Dimension(),
		"obstacles": rules.Obstacles(),
	})

	log.Info("match: game started")

	turn := rules.InitialPlayer(board, pieces)
	result := rules.UpdateState(board, pieces, turn)
	if !result.Over() && !rules.CanMove(board, turn) {
		turn, _ = rules.NextPlayer(board, pieces, turn)
	}

	if config.OnStart != nil {
		config.OnStart(board, turn)
	}

	for !result.Over() {
		move, err := requestMove(ctx, config, rules, board, pieces, turn)
		if err != nil {
			outcome.Result = result
			return outcome, fmt.Errorf("match: requesting move from %s: %w", turn, err)
		}

		captured, err := execute(move, turn, board)
		if err != nil {
			if !errors.Is(err, ataxx.ErrIllegalMove) {
				outcome.Result = result
				return outcome, err
			}

			log.WithFields(logrus.Fields{
				"piece": turn,
				"move":  move.Notation(),
			}).Warn(err)

			fmt.Fprintln(out, err)
			continue
		}

		outcome.Moves = append(outcome.Moves, move)
		log.WithFields(logrus.Fields{
			"piece":    turn,
			"move":     move.Notation(),
			"captured": captured,
		}).Debug("match: move executed")

		result = rules.UpdateState(board, pieces, turn)

		next := ataxx.NoPiece
		if !result.Over() {
			next, _ = rules.NextPlayer(board, pieces, turn)
		}

		if config.OnMove != nil {
			config.OnMove(Event{
				Ply:      len(outcome.Moves),
				Move:     move,
				Captured: captured,
				Board:    board,
				Result:   result,
				Turn:     next,
			})
		}

		turn = next
	}

	outcome.Result = result
	log.WithFields(logrus.Fields{
		"result": result.String(),
		"plies":  len(outcome.Moves),
	}).Info("match: game over")

	return outcome, nil
}

func requestMove(ctx context.Context, config *Config, rules *ataxx.Rules, board *ataxx.Board, pieces []ataxx.Piece, turn ataxx.Piece) (ataxx.Move, error) {
	if config.MoveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.MoveTimeout)
		defer cancel()
	}

	index := slices.Index(pieces, turn)
	return config.Players[index].RequestMove(ctx, turn, board, pieces, rules)
}

// execute plays a move for the given piece, rejecting moves made on
// behalf of any other piece.
func execute(move ataxx.Move, turn ataxx.Piece, board *ataxx.Board) (int, error) {
	if move.Piece != turn {
		return 0, fmt.Errorf("%w: it is %s's turn, not %s's", ataxx.ErrIllegalMove, turn, move.Piece)
	}

	return move.Execute(board)
}
