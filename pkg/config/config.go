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

// Package config loads the ataxx configuration file and parses the
// player list shared by the file and the command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

// File is the configuration file's path relative to the XDG config home.
const File = "ataxx/config.yaml"

const FilePermissions = 0644

type Config struct {
	Dimension int    `yaml:"dimension"`
	Obstacles int    `yaml:"obstacles"`
	Players   string `yaml:"players"`

	// Delay is the pause before every move of a random or automatic player.
	Delay time.Duration `yaml:"delay"`

	// MoveTimeout bounds every move request, 0 means no limit.
	MoveTimeout time.Duration `yaml:"move-timeout,omitempty"`

	// Seed seeds the random source, 0 seeds it from the current time.
	Seed uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Dimension: ataxx.DefaultDimension,
		Obstacles: ataxx.DefaultObstacles,
		Delay:     500 * time.Millisecond,
	}
}

// Path returns the location of the configuration file in the XDG config
// directories, or false if there is none.
func Path() (string, bool) {
	path, err := xdg.SearchConfigFile(File)
	return path, err == nil
}

// Load reads the configuration file at path on top of the defaults. An
// empty path searches the XDG config directories, and a missing file
// there yields the defaults.
func Load(path string) (Config, error) {
	config := Default()

	if path == "" {
		var found bool
		if path, found = Path(); !found {
			return config, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%w: %s: %w", ataxx.ErrConfiguration, path, err)
	}

	return config, config.Validate()
}

// Save writes the configuration to path, or to the XDG config home if
// path is empty, and returns the path written to.
func (config *Config) Save(path string) (string, error) {
	if path == "" {
		var err error
		if path, err = xdg.ConfigFile(File); err != nil {
			return "", fmt.Errorf("config: %w", err)
		}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", err
	}

	return path, os.WriteFile(path, data, FilePermissions)
}

// Validate checks the configuration, clamping a negative obstacle count
// to zero.
func (config *Config) Validate() error {
	config.Obstacles = max(config.Obstacles, 0)

	rules, err := ataxx.NewRules(config.Dimension, config.Obstacles)
	if err != nil {
		return err
	}

	if config.Delay < 0 || config.MoveTimeout < 0 {
		return fmt.Errorf("%w: durations can't be negative", ataxx.ErrConfiguration)
	}

	players, err := ParsePlayers(config.Players)
	if err != nil || len(players) == 0 {
		return err
	}

	pieces := make([]ataxx.Piece, len(players))
	for i, player := range players {
		pieces[i] = player.Piece
	}

	return rules.ValidatePieces(pieces)
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
