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

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/random"
)

// Random is a player which picks uniformly among the valid moves.
type Random struct {
	src random.Source
}

var _ Player = (*Random)(nil)

func NewRandom(src random.Source) *Random {
	return &Random{src: src}
}

func (player *Random) RequestMove(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error) {
	if err := ctx.Err(); err != nil {
		return ataxx.Move{}, err
	}

	moves := rules.ValidMoves(board, pieces, piece)
	if len(moves) == 0 {
		return ataxx.Move{}, fmt.Errorf("%w: %s has nothing to move", ataxx.ErrNoMoves, piece)
	}

	return moves[player.src.Intn(len(moves))], nil
}
