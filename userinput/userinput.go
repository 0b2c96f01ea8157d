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

package userinput

// HandleInput conceptualises the encoders attached to the device. The
// virtual.Board type satisfies this interface.
type HandleInput interface {
	// one detent of rotation. players are numbered from zero
	Rotate(player int, clockwise bool)

	// the state of the player's button
	Press(player int, down bool)
}

// Event represents all the different type of events that can occur in the
// GUI.
type Event interface{}

// EventQuit is sent when the window is closed or when the quit key is
// pressed.
type EventQuit struct{}

// KeyMod identifies the modifier keys held at the time of a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent for keyboard events. Key is the name of the key as
// reported by SDL (eg. "A", "Left", "Escape").
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventMouseWheel is sent when the mouse wheel moves. Positive values are
// away from the user.
type EventMouseWheel struct {
	Delta int
}

// MouseButton identifies the mouse button in an EventMouseButton.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}
