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
	"laptudirm.com/x/ataxx/pkg/random"
)

func Rules() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Describe the rules of Ataxx",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rules, err := ataxx.NewRules(cfg.Dimension, cfg.Obstacles, ataxx.WithRandom(random.Seeded(cfg.Seed)))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), heredoc.Docf(`
				%s

				%d to %d players take turns moving one of their pieces, played
				on a board with %d obstacles. A piece is either cloned into an
				adjacent empty cell or jumps two cells away, leaving its origin
				empty. All other players' pieces around the destination are
				captured.

				Players without a valid move are skipped. The game ends when the
				board is full, fewer than two players are left or nobody can
				move, and the player with the most pieces wins.

				Enter moves as %s
			`, rules.Description(), rules.MinPlayers(), rules.MaxPlayers(), rules.Obstacles(), ataxx.MoveHelp))

			return nil
		},
	}

	gameFlags(cmd)
	return cmd
}
