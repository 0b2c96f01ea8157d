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

// Package virtual implements a pins.IO board for the host programs. Key
// presses are turned into the level changes that a real encoder would make so
// that the input decoder works exactly as it does on the device.
//
// The board is shared between the goroutine that services the window or
// terminal and the goroutine running the game loop. All access is protected
// by a mutex.
package virtual

import (
	"sync"

	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/hardware/pins"
)

// StepsPerDetent is the number of quadrature steps made by one click of the
// encoder. Two steps produce exactly one edge on the CLK line, which is what
// the menus react to.
const StepsPerDetent = 2

// the quadrature cycle as (CLK, DT) pairs in clockwise order
var gray = [4][2]pins.Level{
	{pins.Low, pins.Low},
	{pins.High, pins.Low},
	{pins.High, pins.High},
	{pins.Low, pins.High},
}

// index in the gray array of an encoder at rest
const restPhase = 2

type encoder struct {
	wiring   pins.Encoder
	phase    int
	pending  []int
	pressed  bool
	lastStep int64
	stepped  bool
}

// Board is a virtual microcontroller with two encoders attached.
type Board struct {
	crit     sync.Mutex
	encoders [2]encoder
	modes    map[pins.Pin]pins.Mode

	// pacing of queued steps. see SetPacing()
	clk      clock.Clock
	interval int64
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard(wiring [2]pins.Encoder) *Board {
	brd := &Board{
		modes: make(map[pins.Pin]pins.Mode),
	}
	for i := range brd.encoders {
		brd.encoders[i] = encoder{
			wiring: wiring[i],
			phase:  restPhase,
		}
	}
	return brd
}

// SetPacing spaces out queued steps so that they are no closer together than
// the interval (in milliseconds). Without pacing a queued step is released
// every time the CLK line is read, which is as fast as the game loop polls.
//
// A nil clock or an interval of zero removes the pacing.
func (brd *Board) SetPacing(clk clock.Clock, interval int64) {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	brd.clk = clk
	brd.interval = interval
}

// Configure implements the pins.IO interface.
func (brd *Board) Configure(pin pins.Pin, mode pins.Mode) {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	brd.modes[pin] = mode
}

// Read implements the pins.IO interface.
//
// A pending step is latched when the CLK line is sampled. The decoder samples
// CLK before DT so every step is seen by exactly one poll, however quickly the
// keys are pressed.
func (brd *Board) Read(pin pins.Pin) pins.Level {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	for i := range brd.encoders {
		enc := &brd.encoders[i]
		switch pin {
		case enc.wiring.CLK:
			if len(enc.pending) > 0 && brd.paced(enc) {
				enc.phase = (enc.phase + enc.pending[0] + len(gray)) % len(gray)
				enc.pending = enc.pending[1:]
			}
			return gray[enc.phase][0]
		case enc.wiring.DT:
			return gray[enc.phase][1]
		case enc.wiring.Button:
			if enc.pressed {
				return pins.Low
			}
			return pins.High
		}
	}

	// unconnected pins float high
	return pins.High
}

// paced returns true if the next queued step of the encoder can be released.
// must be called with the critical section locked.
func (brd *Board) paced(enc *encoder) bool {
	if brd.clk == nil || brd.interval <= 0 {
		return true
	}
	now := brd.clk.Now()
	if enc.stepped && now-enc.lastStep < brd.interval {
		return false
	}
	enc.lastStep = now
	enc.stepped = true
	return true
}

// Rotate queues one detent of rotation for the player. Players are numbered
// from zero.
func (brd *Board) Rotate(player int, clockwise bool) {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	dir := -1
	if clockwise {
		dir = 1
	}
	for i := 0; i < StepsPerDetent; i++ {
		brd.encoders[player].pending = append(brd.encoders[player].pending, dir)
	}
}

// Pending returns the number of queued steps that the player's encoder has
// still to make.
func (brd *Board) Pending(player int) int {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	return len(brd.encoders[player].pending)
}

// Press sets the state of the player's button.
func (brd *Board) Press(player int, down bool) {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	brd.encoders[player].pressed = down
}

// IsPressed returns the state of the player's button.
func (brd *Board) IsPressed(player int) bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	return brd.encoders[player].pressed
}

// Mode returns the mode the pin was configured with.
func (brd *Board) Mode(pin pins.Pin) (pins.Mode, bool) {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	m, ok := brd.modes[pin]
	return m, ok
}
