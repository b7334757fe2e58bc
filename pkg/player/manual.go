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

package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ataxx/pkg/ataxx"
)

// ErrClosed is returned by a manual player's RequestMove after Close.
var ErrClosed = errors.New("player: manual player closed")

// Manual is a player which reads its moves from a line based input.
type Manual struct {
	out    io.Writer
	parser ataxx.MoveParser

	lines chan string
	err   error

	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

var _ Player = (*Manual)(nil)

// NewManual creates a manual player which reads moves from in, parses
// them with the given parser and writes prompts to out.
func NewManual(in io.Reader, out io.Writer, parser ataxx.MoveParser) *Manual {
	player := &Manual{
		out:    out,
		parser: parser,
		lines:  make(chan string),

		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go func() {
		defer close(player.stopped)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			logrus.Tracef("player: input> %s", line)

			select {
			case player.lines <- line:
			case <-player.done:
				return
			}
		}

		player.err = scanner.Err()
		if player.err == nil {
			player.err = io.EOF
		}

		close(player.lines)
	}()

	return player
}

// Close stops the player's input reader. A reader blocked on in exits
// once its pending read returns. Close is safe to call more than once.
func (player *Manual) Close() error {
	player.once.Do(func() { close(player.done) })
	return nil
}

// RequestMove prompts for a move until a parsable line is entered. It
// fails if the input ends, the player is closed or the context is cancelled.
func (player *Manual) RequestMove(ctx context.Context, piece ataxx.Piece, board *ataxx.Board, pieces []ataxx.Piece, rules *ataxx.Rules) (ataxx.Move, error) {
	for {
		fmt.Fprintf(player.out, "Please enter your move (%s): ", piece)

		select {
		case <-ctx.Done():
			return ataxx.Move{}, ctx.Err()

		case <-player.done:
			return ataxx.Move{}, ErrClosed

		case line, ok := <-player.lines:
			if !ok {
				return ataxx.Move{}, fmt.Errorf("player: reading move: %w", player.err)
			}

			if move, ok := player.parser(piece, line); ok {
				return move, nil
			}

			fmt.Fprintf(player.out, "Invalid move %q, enter %s\n", line, ataxx.MoveHelp)
		}
	}
}
