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

// Package random provides the uniform integer generator shared by the
// obstacle scatterer and the random players of a game.
package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is a uniform integer generator. Intn returns a value in [0, n)
// and panics if n <= 0.
type Source interface {
	Intn(n int) int
}

// New returns a deterministic Source seeded with the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// FromTime returns a Source seeded with the current time.
func FromTime() Source {
	return New(uint64(time.Now().UnixNano()))
}

// Seeded returns New(seed), or FromTime() if seed is zero.
func Seeded(seed uint64) Source {
	if seed == 0 {
		return FromTime()
	}

	return New(seed)
}
