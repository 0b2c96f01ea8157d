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

// Package clock is the clock collaborator: a monotonic millisecond counter and
// a blocking sleep.
//
// Real is backed by the time package. Simulated is for tests and for headless
// runs; its Sleep() advances simulated time immediately so that scripted
// sequences do not have to be waited for.
package clock

import (
	"time"
)

// Clock is the clock collaborator.
type Clock interface {
	// milliseconds since the clock was started
	Now() int64

	// block for the duration in milliseconds
	Sleep(ms int64)
}

// Real is an implementation of Clock using the system's monotonic clock.
type Real struct {
	start time.Time
}

// NewReal is the preferred method of initialisation for the Real type.
func NewReal() *Real {
	return &Real{start: time.Now()}
}

// Now implements the Clock interface.
func (clk *Real) Now() int64 {
	return time.Since(clk.start).Milliseconds()
}

// Sleep implements the Clock interface.
func (clk *Real) Sleep(ms int64) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Simulated is an implementation of Clock where time only moves when told to.
type Simulated struct {
	now int64

	// the amount of time that passes every time Now() is called. a value of
	// zero means time only moves with Advance() and Sleep()
	Tick int64
}

// NewSimulated is the preferred method of initialisation for the Simulated
// type.
func NewSimulated(start int64) *Simulated {
	return &Simulated{now: start}
}

// Now implements the Clock interface.
func (clk *Simulated) Now() int64 {
	n := clk.now
	clk.now += clk.Tick
	return n
}

// Sleep implements the Clock interface.
func (clk *Simulated) Sleep(ms int64) {
	clk.now += ms
}

// Advance moves simulated time forward.
func (clk *Simulated) Advance(ms int64) {
	clk.now += ms
}

// Peek returns the current time without the Tick being applied.
func (clk *Simulated) Peek() int64 {
	return clk.now
}
