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
	"io"
	"time"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/internal/util"
)

// Delayed wraps a player so that each move request first waits for a fixed
// delay while a spinner is shown.
type Delayed struct {
	Player

	delay time.Duration
	out   io.Writer
}

var _ Player = (*Delayed)(nil)

func NewDelayed(player Player, delay time.Duration, out io.Writer) *Delayed {
	return &Delayed{Player: player, delay: delay, out: out}
}

func (player *Delayed) RequestMove(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error) {
	if player.delay > 0 && !util.Spin(player.out, " "+piece.String()+" is thinking", player.delay, ctx.Done()) {
		return ataxx.Move{}, ctx.Err()
	}

	return player.Player.RequestMove(ctx, piece, board, pieces, rules)
}
