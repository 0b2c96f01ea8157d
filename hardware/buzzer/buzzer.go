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

// Package buzzer defines the piezo buzzer of the game console. The game sounds
// short tones when a coin is eaten and when a match starts or ends.
//
// Tone() never blocks. A tone requested while another is sounding replaces
// it.
package buzzer

// Buzzer is implemented by any type that can sound a tone.
type Buzzer interface {
	// frequency in Hz and duration in milliseconds
	Tone(frequency int, duration int)
}

// Silent is a Buzzer that makes no sound.
type Silent struct{}

// Tone implements the Buzzer interface.
func (Silent) Tone(_ int, _ int) {}

// Multi sends every tone to each of the listed buzzers in turn.
type Multi []Buzzer

// Tone implements the Buzzer interface.
func (m Multi) Tone(frequency int, duration int) {
	for _, b := range m {
		if b != nil {
			b.Tone(frequency, duration)
		}
	}
}
