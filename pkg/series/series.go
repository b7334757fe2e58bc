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

// Package series plays a number of games between two automatic players
// concurrently and keeps score.
package series

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/match"
	"laptudirm.com/x/ataxx/pkg/player"
	"laptudirm.com/x/ataxx/pkg/random"
)

type Config struct {
	Dimension int
	Obstacles int

	// Modes are the modes of the two contestants. Manual players can't
	// take part in a series.
	Modes [2]match.Mode

	// Games is the number of games to play. The contestants swap pieces,
	// and with that the first move, after every game.
	Games int

	// Concurrency is the number of games played at the same time.
	Concurrency int

	// Seed seeds game i with Seed+i, 0 seeds every game from the time.
	Seed uint64
}

// Score is the tally of a series from the first contestant's point of view.
type Score struct {
	Wins, Draws, Losses int
}

func (score Score) Games() int {
	return score.Wins + score.Draws + score.Losses
}

// Elo returns the first contestant's elo difference with its p < 0.05 lower
// and upper bounds.
func (score Score) Elo() (lower, elo, upper float64) {
	return Elo(score.Wins, score.Draws, score.Losses)
}

func (score Score) String() string {
	lower, elo, upper := score.Elo()
	return fmt.Sprintf("+%d =%d -%d, elo %+.0f [%+.0f, %+.0f]", score.Wins, score.Draws, score.Losses, elo, lower, upper)
}

// game is a single scheduled game of a series.
type game struct {
	number  int
	swapped bool
}

type result struct {
	game    game
	outcome *match.Outcome
	err     error
}

// Run plays the series and returns the final score. The first error
// returned by a game stops the series.
func Run(ctx context.Context, config Config) (Score, error) {
	for _, mode := range config.Modes {
		if mode == match.ManualMode {
			return Score{}, fmt.Errorf("%w: manual players can't play a series", ataxx.ErrConfiguration)
		}

		if _, err := match.ParseMode(string(mode)); err != nil {
			return Score{}, err
		}
	}

	if config.Games < 1 {
		return Score{}, fmt.Errorf("%w: a series needs at least one game", ataxx.ErrConfiguration)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	games := make(chan game)
	results := make(chan result)

	var threads sync.WaitGroup
	for i := 0; i < max(config.Concurrency, 1); i++ {
		threads.Add(1)
		go func() {
			defer threads.Done()
			for game := range games {
				outcome, err := play(ctx, config, game)
				results <- result{game: game, outcome: outcome, err: err}
			}
		}()
	}

	go func() {
		defer close(games)
		for i := 0; i < config.Games; i++ {
			select {
			case games <- game{number: i + 1, swapped: i%2 == 1}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		threads.Wait()
		close(results)
	}()

	var score Score
	var failure error
	for result := range results {
		if result.err != nil {
			if failure == nil {
				failure = fmt.Errorf("series: game #%d: %w", result.game.number, result.err)
				cancel()
			}

			continue
		}

		// The first contestant plays X unless the game is swapped.
		first := ataxx.Piece("X")
		if result.game.swapped {
			first = "O"
		}

		switch outcome := result.outcome.Result; {
		case outcome.State == ataxx.Draw:
			score.Draws++
		case outcome.Winner == first:
			score.Wins++
		default:
			score.Losses++
		}

		logrus.WithField("game", result.outcome.ID).Infof(
			"series: finished game #%d: %s (%s)",
			result.game.number, result.outcome.Result, score,
		)
	}

	return score, failure
}

func play(ctx context.Context, config Config, game game) (*match.Outcome, error) {
	src := random.FromTime()
	if config.Seed != 0 {
		src = random.New(config.Seed + uint64(game.number) - 1)
	}

	factory := match.NewFactory(config.Dimension, config.Obstacles, src)

	modes := config.Modes
	if game.swapped {
		modes[0], modes[1] = modes[1], modes[0]
	}

	players := make([]player.Player, len(modes))
	for i, mode := range modes {
		var err error
		if players[i], err = factory.Player(mode); err != nil {
			return nil, err
		}
	}

	return match.Run(ctx, &match.Config{Factory: factory, Players: players})
}
