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

// Package player implements the move sources which take part in a game of
// Ataxx: console input, uniform random choice and a greedy automatic player.
package player

import (
	"context"

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

// Player is a source of moves for a single piece.
type Player interface {
	// RequestMove returns the move the player wants to make with the
	// given piece on the current board. The board must not be modified.
	RequestMove(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error)
}

// Func is an adapter to allow the use of ordinary functions as players.
type Func func(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error)

// RequestMove calls f(ctx, piece, board, pieces, rules).
func (f Func) RequestMove(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error) {
	return f(ctx, piece, board, pieces, rules)
}
