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

// Controllers translates GUI events into input for the encoders.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed as an input
	LastKeyHandled bool

	// is true if last event was a quit event
	Quit bool
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	// modified keys are left for the GUI
	if ev.Mod != KeyModNone {
		c.LastKeyHandled = false
		return
	}

	b, ok := keys[ev.Key]
	if !ok {
		c.LastKeyHandled = false
		return
	}

	// by default we'll say the key has been handled, unless specified otherwise
	c.LastKeyHandled = true

	switch b.action {
	case actionClockwise, actionCounterClockwise:
		// holding a rotation key spins the encoder at the keyboard's repeat
		// rate
		if ev.Down {
			handle.Rotate(b.player, b.action == actionClockwise)
		}
	case actionButton:
		if ev.Repeat {
			c.LastKeyHandled = false
			return
		}
		handle.Press(b.player, ev.Down)
	case actionQuit:
		if ev.Down {
			c.Quit = true
		}
	}
}

func (c *Controllers) mouseWheel(ev EventMouseWheel, handle HandleInput) {
	for i := 0; i < ev.Delta; i++ {
		handle.Rotate(0, true)
	}
	for i := 0; i > ev.Delta; i-- {
		handle.Rotate(0, false)
	}
	c.LastKeyHandled = ev.Delta != 0
}

func (c *Controllers) mouseButton(ev EventMouseButton, handle HandleInput) {
	if ev.Button != MouseButtonLeft {
		c.LastKeyHandled = false
		return
	}
	handle.Press(0, ev.Down)
	c.LastKeyHandled = true
}

// HandleUserInput deciphers the Event and forwards the input to the encoders.
// The Quit field is set if the event should cause the program to end.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.Quit = false
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, handle)
	case EventMouseWheel:
		c.mouseWheel(ev, handle)
	case EventMouseButton:
		c.mouseButton(ev, handle)
	default:
	}
}
