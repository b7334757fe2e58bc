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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

func Moves() *cobra.Command {
	return &cobra.Command{
		Use:   "moves position piece",
		Short: "List the valid moves of a piece in a position",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`moves lists every valid move of the given piece in the given
			position, one per line in the format accepted from manual
			players, followed by the kind of the move.

			Positions are given row by row from row 0, separated by '/'.
			Empty cells are counted with numbers, '-' is an obstacle and
			any other character is the label of a piece.`),
		Example: heredoc.Doc(`
			$ ataxx moves X3O/5/2-2/5/O3X X
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := ataxx.ParseFEN(args[0])
			if err != nil {
				return err
			}

			piece, err := ataxx.NewPiece(args[1])
			if err != nil {
				return err
			}

			rules, err := ataxx.NewRules(board.Size(), 0)
			if err != nil {
				return err
			}

			moves := rules.ValidMoves(board, []ataxx.Piece{piece}, piece)
			if len(moves) == 0 {
				return fmt.Errorf("%w: %s has nothing to move", ataxx.ErrNoMoves, piece)
			}

			for _, move := range moves {
				kind := "clone"
				if move.IsJump() {
					kind = "jump"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", move.Notation(), kind)
			}

			return nil
		},
	}
}
