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

import "fmt"

// State is the state of a game as computed by Rules.UpdateState.
type State uint8

const (
	InPlay State = iota
	Won
	Draw
)

func (state State) String() string {
	switch state {
	case InPlay:
		return "in play"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// Reasons for the end of a game.
const (
	ReasonEradication = "Eradication"
	ReasonBoardFull   = "Board Full"
	ReasonNoMoves     = "No Moves"
)

// Result is the outcome of Rules.UpdateState. Winner is only set when the
// State is Won, and Reason is empty while the game is in play.
type Result struct {
	State  State
	Winner Piece
	Reason string
}

// Over reports whether the game has ended.
func (result Result) Over() bool {
	return result.State != InPlay
}

func (result Result) String() string {
	switch result.State {
	case Won:
		return fmt.Sprintf("%s wins by %s", result.Winner, result.Reason)
	case Draw:
		return fmt.Sprintf("Draw by %s", result.Reason)
	default:
		return "In Play"
	}
}
