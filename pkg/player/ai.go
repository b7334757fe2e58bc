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

package player

import (
	"context"
	"fmt"
	"math"

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

// AI is a one-ply automatic player. Every valid move is tried on a copy of
// the board and scored with the rules' evaluation; equal scores prefer the
// move which gains more pieces, then the earliest move generated.
type AI struct{}

var _ Player = (*AI)(nil)

func NewAI() *AI {
	return &AI{}
}

func (player *AI) RequestMove(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error) {
	moves := rules.ValidMoves(board, pieces, piece)
	if len(moves) == 0 {
		return ataxx.Move{}, fmt.Errorf("%w: %s has nothing to move", ataxx.ErrNoMoves, piece)
	}

	var best ataxx.Move
	bestScore, bestGain := math.Inf(-1), -1

	for _, move := range moves {
		if err := ctx.Err(); err != nil {
			return ataxx.Move{}, err
		}

		child := board.Copy()
		if _, err := move.Execute(child); err != nil {
			return ataxx.Move{}, err
		}

		score := rules.Evaluate(child, pieces, piece, piece)
		gain := child.Count(piece) - board.Count(piece)
		if score > bestScore || (score == bestScore && gain > bestGain) {
			best, bestScore, bestGain = move, score, gain
		}
	}

	return best, nil
}
