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

import "errors"

var (
	// ErrConfiguration is returned for invalid rule parameters or piece lists.
	ErrConfiguration = errors.New("ataxx: invalid configuration")

	// ErrIllegalMove is returned by Move.Execute when a precondition of the
	// move does not hold. The board is left untouched.
	ErrIllegalMove = errors.New("ataxx: illegal move")

	// ErrOutOfRange is returned for coordinates outside of the board.
	ErrOutOfRange = errors.New("ataxx: coordinate out of range")

	// ErrInvalidPosition is returned for malformed position strings.
	ErrInvalidPosition = errors.New("ataxx: invalid position")

	// ErrNoMoves is returned when a move is requested from a piece which
	// has no legal moves.
	ErrNoMoves = errors.New("ataxx: no legal moves")
)
