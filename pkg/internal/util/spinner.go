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

package util

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SPIN is the spinner.CharSets index used for every working indicator.
const SPIN = 31

// NewSpinner creates a working indicator which writes to the given writer.
func NewSpinner(w io.Writer, suffix string) *spinner.Spinner {
	return spinner.New(
		spinner.CharSets[SPIN], 100*time.Millisecond,
		spinner.WithWriter(w),
		spinner.WithSuffix(suffix),
	)
}

// Spin shows a working indicator on w until the given duration elapses or
// done is closed, whichever happens first. It reports whether the full
// duration elapsed.
func Spin(w io.Writer, suffix string, d time.Duration, done <-chan struct{}) bool {
	s := NewSpinner(w, suffix)

	s.Start()      // Start the ~working~ spinner.
	defer s.Stop() // Stop the ~working~ spinner.

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-done:
		return false
	}
}
