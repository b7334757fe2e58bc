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
	"github.com/spf13/cobra"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/config"
)

// gameFlags registers the flags which describe the rules of a game.
func gameFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("dim", "d", ataxx.DefaultDimension, "Board dimension, odd and at least 5")
	cmd.Flags().IntP("obstacles", "o", ataxx.DefaultObstacles, "Number of obstacles to scatter")
	cmd.Flags().Uint64("seed", 0, "Random seed, 0 seeds from the current time")
}

// playFlags registers the flags which describe the players of a game.
func playFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("players", "p", "", "Players as A[:B],... where B is m (manual), r (random) or a (automatic)")
	cmd.Flags().Duration("delay", 0, "Delay before each random or automatic move")
	cmd.Flags().Duration("move-timeout", 0, "Time limit for every move, 0 for none")
}

// loadConfig loads the configuration file and applies the command line
// flags on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	applyFlags(cmd, &cfg)
	return cfg, cfg.Validate()
}

// applyFlags overrides the configuration with the flags which were given
// on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Dimension, _ = flags.GetInt("dim")
	}

	if flags.Changed("obstacles") {
		cfg.Obstacles, _ = flags.GetInt("obstacles")
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	if flags.Changed("players") {
		cfg.Players, _ = flags.GetString("players")
	}

	if flags.Changed("delay") {
		cfg.Delay, _ = flags.GetDuration("delay")
	}

	if flags.Changed("move-timeout") {
		cfg.MoveTimeout, _ = flags.GetDuration("move-timeout")
	}
}
