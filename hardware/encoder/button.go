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

package encoder

import "github.com/jetsetilly/hungryballs/hardware/pins"

// Edge is the result of a single Button.Update().
type Edge int

// List of valid Edge values.
const (
	NoEdge Edge = iota
	Pressed
	Released
)

func (e Edge) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	}
	return "none"
}

// Button is the state of an encoder's push button. The button is wired with
// a pull-up resistor so a pressed button reads pins.Low.
type Button struct {
	level pins.Level
	prev  pins.Level
}

// Prime sets the previously observed level.
func (btn *Button) Prime(level pins.Level) {
	btn.level = level
	btn.prev = level
}

// Update the button with a newly sampled level.
func (btn *Button) Update(level pins.Level) Edge {
	btn.prev = btn.level
	btn.level = level

	if btn.level == btn.prev {
		return NoEdge
	}
	if btn.level == pins.Low {
		return Pressed
	}
	return Released
}

// Held returns true if the button is currently pressed.
func (btn *Button) Held() bool {
	return btn.level == pins.Low
}
