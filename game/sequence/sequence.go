// This file is part of Hungry Balls.
//
// Hungry Balls is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hungry Balls is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hungry Balls.  If not, see <https://www.gnu.org/licenses/>.

// Package sequence plays scripted screens. A Sequence is a list of steps,
// each of which draws something and then waits for a fixed length of time.
//
// Nothing else happens while a sequence is playing. In particular the inputs
// are not polled, so any rotation or button press made during a sequence is
// lost.
//
// Time is taken from a clock.Clock. With a clock.Simulated clock a sequence
// plays instantly but the clock still moves forward by the total dwell time.
package sequence

import (
	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/logger"
)

// Step is a single step of a sequence.
type Step struct {
	// short description used in the log
	Name string

	// draw the step. may be nil if the step is only a pause
	Draw func()

	// milliseconds to wait after drawing
	Dwell int64
}

// Sequence is a list of steps.
type Sequence []Step

// Duration is the sum of all dwell times in the sequence.
func (seq Sequence) Duration() int64 {
	var d int64
	for _, s := range seq {
		d += s.Dwell
	}
	return d
}

// Play every step of the sequence in order. Returns when the final dwell has
// finished.
func (seq Sequence) Play(clk clock.Clock) {
	for _, s := range seq {
		if s.Name != "" {
			logger.Logf(logger.Allow, "sequence", "%s (%dms)", s.Name, s.Dwell)
		}
		if s.Draw != nil {
			s.Draw()
		}
		if s.Dwell > 0 {
			clk.Sleep(s.Dwell)
		}
	}
}
