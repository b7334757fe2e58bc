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

package match

import (
	"strings"

	"github.com/google/uuid"

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

// Outcome is the record of a finished game.
type Outcome struct {
	ID     uuid.UUID
	Result ataxx.Result

	Pieces []ataxx.Piece
	Moves  []ataxx.Move

	// Board is the final position.
	Board *ataxx.Board
}

// Score returns the points of each piece in turn order, separated by
// dashes: 1 for the winner and 0 for the others, or 1/2 each on a draw.
func (outcome *Outcome) Score() string {
	points := make([]string, len(outcome.Pieces))
	for i, piece := range outcome.Pieces {
		switch {
		case outcome.Result.State == ataxx.Draw:
			points[i] = "1/2"
		case outcome.Result.State == ataxx.Won && outcome.Result.Winner == piece:
			points[i] = "1"
		case outcome.Result.State == ataxx.Won:
			points[i] = "0"
		default:
			points[i] = "?"
		}
	}

	return strings.Join(points, "-")
}
