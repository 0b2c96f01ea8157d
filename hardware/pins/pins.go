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

// Package pins describes the digital I/O collaborator of the device: how pins
// are configured, how their levels are read and how the two encoders are wired
// to the microcontroller.
//
// The game never reads hardware directly. Everything goes through the IO
// interface so that the input decoder can be driven by a real board, by the
// virtual board of the host programs or by a scripted sequence in a test.
package pins

import "fmt"

// Pin is the number of a digital pin on the microcontroller.
type Pin int

// Level is the logic level of a digital line.
type Level int

// List of valid Level values.
const (
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	if l == Low {
		return "LOW"
	}
	return "HIGH"
}

// Mode is the configuration of a pin.
type Mode int

// List of valid Mode values.
const (
	Input Mode = iota

	// InputPullup is used for the encoder buttons. A released button therefore
	// reads High and a pressed button reads Low
	InputPullup
)

func (m Mode) String() string {
	switch m {
	case Input:
		return "INPUT"
	case InputPullup:
		return "INPUT_PULLUP"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// IO is the digital I/O collaborator.
type IO interface {
	Configure(pin Pin, mode Mode)
	Read(pin Pin) Level
}

// Encoder is the wiring of a single rotary encoder with push button.
type Encoder struct {
	CLK    Pin
	DT     Pin
	Button Pin
}

// Wiring of the two encoders. Player 1 is the red ball and player 2 is the blue
// ball.
var (
	Player1 = Encoder{CLK: 4, DT: 5, Button: 9}
	Player2 = Encoder{CLK: 11, DT: 12, Button: 8}
)

// Wiring returns the encoder wiring for both players in player order.
func Wiring() [2]Encoder {
	return [2]Encoder{Player1, Player2}
}
