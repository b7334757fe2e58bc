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
	"math"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ataxx/pkg/match"
	"laptudirm.com/x/ataxx/pkg/series"
)

func Series() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series first-mode second-mode",
		Short: "Play a series of games between two automatic players",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`series plays a number of games between two automatic players,
			r for a random player and a for an automatic one, and reports
			the score and elo difference of the first one.

			The players swap pieces after every game, so that each of them
			makes the first move in half of the games.`),
		Example: heredoc.Doc(`
			$ ataxx series a r -n 100 -j 8
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			config := series.Config{
				Dimension: cfg.Dimension,
				Obstacles: cfg.Obstacles,
				Seed:      cfg.Seed,
			}

			config.Games, _ = cmd.Flags().GetInt("games")
			config.Concurrency, _ = cmd.Flags().GetInt("concurrency")

			for i, arg := range args {
				if config.Modes[i], err = match.ParseMode(arg); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			score, err := series.Run(ctx, config)
			if err != nil {
				return err
			}

			colors, _ := cmd.Flags().GetBool("color")
			report(cmd, aurora.NewAurora(colors), config.Modes, score)
			return nil
		},
	}

	gameFlags(cmd)
	cmd.Flags().IntP("games", "n", 10, "Number of games to play")
	cmd.Flags().IntP("concurrency", "j", 1, "Number of games to play at once")
	cmd.Flags().Bool("color", true, "Color the report")

	return cmd
}

func report(cmd *cobra.Command, au aurora.Aurora, modes [2]match.Mode, score series.Score) {
	lower, elo, upper := score.Elo()

	line := fmt.Sprintf("%-12s vs %-12s %+5.0f %5.0f   %4d %4d %4d   %6d",
		modes[0], modes[1],
		elo, math.Abs(math.Max(upper-elo, elo-lower)),
		score.Wins, score.Losses, score.Draws, score.Games())

	value := au.Green(line)
	if elo < 0 {
		value = au.Red(line)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "╔════════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║ Players                        Elo Error   Wins Loss Draw    Total ║")
	fmt.Fprintln(out, "╠════════════════════════════════════════════════════════════════════╣")
	fmt.Fprintf(out, "║ %s ║\n", value)
	fmt.Fprintln(out, "╚════════════════════════════════════════════════════════════════════╝")
}
