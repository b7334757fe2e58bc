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

package config

import (
	"fmt"
	"strings"

	"laptudirm.com/x/ataxx/pkg/ataxx"
	"laptudirm.com/x/ataxx/pkg/match"
)

// Player is a piece and the mode of the player controlling it.
type Player struct {
	Piece ataxx.Piece
	Mode  match.Mode
}

func (player Player) String() string {
	return player.Piece.String() + ":" + string(player.Mode)
}

// ParsePlayers parses a comma separated player list. Every entry is a
// piece label optionally followed by ':' and a mode, m (manual) if none
// is given. An empty list yields no players.
func ParsePlayers(list string) ([]Player, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var players []Player
	for _, entry := range strings.Split(list, ",") {
		label, mode, found := strings.Cut(strings.TrimSpace(entry), ":")

		piece, err := ataxx.NewPiece(label)
		if err != nil {
			return nil, fmt.Errorf("%w: player %q", err, entry)
		}

		player := Player{Piece: piece, Mode: match.ManualMode}
		if found {
			if player.Mode, err = match.ParseMode(mode); err != nil {
				return nil, err
			}
		}

		players = append(players, player)
	}

	return players, nil
}
