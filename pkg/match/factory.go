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
	"fmt"
	"io"
	"os"
	"time"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/player"
	"laptudirm.com/x/ataxx/pkg/random"
)

// Factory builds the rules, default pieces and players of a game of Ataxx.
// Every component it builds shares the factory's random source.
type Factory struct {
	Dimension int
	Obstacles int

	// Delay is the wait before every move of a random or automatic player.
	Delay time.Duration

	// In and Out are the console for manual players. They default to the
	// standard input and output.
	In  io.Reader
	Out io.Writer

	random random.Source
	manual *player.Manual
}

// NewFactory creates a factory for dimension x dimension games with the
// given number of obstacles. A nil source is replaced with a time seeded one.
func NewFactory(dimension, obstacles int, src random.Source) *Factory {
	if src == nil {
		src = random.FromTime()
	}

	return &Factory{
		Dimension: dimension,
		Obstacles: obstacles,

		In:  os.Stdin,
		Out: os.Stdout,

		random: src,
	}
}

// Rules creates the game's rules engine.
func (factory *Factory) Rules() (*ataxx.Rules, error) {
	return ataxx.NewRules(factory.Dimension, factory.Obstacles, ataxx.WithRandom(factory.random))
}

// DefaultPieces returns the pieces used when no player list is given.
func (factory *Factory) DefaultPieces() []ataxx.Piece {
	return []ataxx.Piece{"X", "O"}
}

func (factory *Factory) MoveParser() ataxx.MoveParser {
	return ataxx.ParseMove
}

// ManualPlayer returns the console player. All manual pieces share it
// so that only one reader consumes the input.
func (factory *Factory) ManualPlayer() player.Player {
	if factory.manual == nil {
		factory.manual = player.NewManual(factory.In, factory.Out, factory.MoveParser())
	}

	return factory.manual
}

// Close releases the console player, if one was created.
func (factory *Factory) Close() error {
	if factory.manual == nil {
		return nil
	}

	return factory.manual.Close()
}

func (factory *Factory) RandomPlayer() player.Player {
	return factory.delayed(player.NewRandom(factory.random))
}

func (factory *Factory) AIPlayer() player.Player {
	return factory.delayed(player.NewAI())
}

// Player creates a player of the given mode.
func (factory *Factory) Player(mode Mode) (player.Player, error) {
	switch mode {
	case ManualMode:
		return factory.ManualPlayer(), nil
	case RandomMode:
		return factory.RandomPlayer(), nil
	case AIMode:
		return factory.AIPlayer(), nil
	default:
		return nil, fmt.Errorf("%w: unknown player mode %q", ataxx.ErrConfiguration, mode)
	}
}

func (factory *Factory) delayed(p player.Player) player.Player {
	if factory.Delay <= 0 {
		return p
	}

	return player.NewDelayed(p, factory.Delay, factory.Out)
}
