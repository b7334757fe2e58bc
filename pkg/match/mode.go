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

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

// Mode selects how a player chooses its moves.
type Mode string

const (
	ManualMode Mode = "m"
	RandomMode Mode = "r"
	AIMode     Mode = "a"
)

// ParseMode parses the short name of a player mode.
func ParseMode(name string) (Mode, error) {
	switch mode := Mode(name); mode {
	case ManualMode, RandomMode, AIMode:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown player mode %q", ataxx.ErrConfiguration, name)
	}
}

// String returns the long name of the mode.
func (mode Mode) String() string {
	switch mode {
	case ManualMode:
		return "Manual"
	case RandomMode:
		return "Random"
	case AIMode:
		return "Automatics"
	default:
		return "?"
	}
}
