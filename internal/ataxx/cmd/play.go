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
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/config"
	"laptudirm.com/x/ataxx/pkg/match"
	"laptudirm.com/x/ataxx/pkg/random"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of Ataxx",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of Ataxx between two to four players on
			the console, a mix of manual, random and automatic players.

			Players are given as a comma separated list of A[:B], where A
			is the label of the player's piece and B its mode: m for a
			manual player, r for a random one and a for an automatic one.
			Without a list two manual players X and O take part.

			Manual players enter their moves on the console as four
			integers: originRow originCol destinationRow destinationCol.

			Flags override the values from the configuration file.`),
		Example: heredoc.Doc(`
			$ ataxx play
			$ ataxx play -p X:m,O:a --delay 1s
			$ ataxx play -d 9 -o 8 -p X:r,O:r,R:a,B:a --seed 42
			$ ataxx play --position X3O/5/2-2/5/O3X -p X:a,O:r
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			factory := match.NewFactory(cfg.Dimension, cfg.Obstacles, random.Seeded(cfg.Seed))
			factory.Delay = cfg.Delay
			factory.In, factory.Out = cmd.InOrStdin(), cmd.OutOrStdout()
			defer factory.Close()

			players, _ := config.ParsePlayers(cfg.Players)
			if len(players) == 0 {
				for _, piece := range factory.DefaultPieces() {
					players = append(players, config.Player{Piece: piece, Mode: match.ManualMode})
				}
			}

			game := &match.Config{
				Factory:     factory,
				MoveTimeout: cfg.MoveTimeout,
				Out:         cmd.OutOrStdout(),
			}

			for _, p := range players {
				source, err := factory.Player(p.Mode)
				if err != nil {
					return err
				}

				game.Pieces = append(game.Pieces, p.Piece)
				game.Players = append(game.Players, source)
			}

			if fen, _ := cmd.Flags().GetString("position"); fen != "" {
				if game.Position, err = ataxx.ParseFEN(fen); err != nil {
					return err
				}

				// Without an explicit dimension the position decides it.
				if !cmd.Flags().Changed("dim") {
					factory.Dimension = game.Position.Size()
				}
			}

			colors, _ := cmd.Flags().GetBool("color")
			view := newView(cmd.OutOrStdout(), colors, game.Pieces)
			game.OnStart, game.OnMove = view.start, view.move

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			outcome, err := match.Run(ctx, game)
			if err != nil {
				return err
			}

			view.outcome(outcome)
			return nil
		},
	}

	gameFlags(cmd)
	playFlags(cmd)
	cmd.Flags().String("position", "", "Starting position instead of a fresh board")
	cmd.Flags().Bool("color", true, "Color the board")

	return cmd
}
