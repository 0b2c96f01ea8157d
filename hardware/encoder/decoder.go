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

import (
	"github.com/jetsetilly/hungryballs/hardware/pins"
	"github.com/jetsetilly/hungryballs/logger"
)

// Player is the complete input device for one player.
type Player struct {
	Wiring  pins.Encoder
	Encoder Encoder
	Button  Button
}

// Events is the result of polling a Player.
type Events struct {
	Rotation Rotation
	Button   Edge

	// the state of the button and encoder after the poll
	Held  bool
	Count int
	Speed int
}

// Decoder polls the two encoders.
type Decoder struct {
	io      pins.IO
	Players [2]Player
}

// NewDecoder configures the pins and primes the encoders with the current pin
// levels.
func NewDecoder(io pins.IO, wiring [2]pins.Encoder) *Decoder {
	dec := &Decoder{io: io}

	for i := range dec.Players {
		p := &dec.Players[i]
		p.Wiring = wiring[i]

		io.Configure(p.Wiring.CLK, pins.Input)
		io.Configure(p.Wiring.DT, pins.Input)
		io.Configure(p.Wiring.Button, pins.InputPullup)

		p.Encoder.Prime(io.Read(p.Wiring.CLK), io.Read(p.Wiring.DT))
		p.Button.Prime(io.Read(p.Wiring.Button))
	}

	return dec
}

// Poll samples every line of both encoders once.
func (dec *Decoder) Poll(now int64) [2]Events {
	var ev [2]Events

	for i := range dec.Players {
		p := &dec.Players[i]

		// CLK is read before DT. the virtual board relies on this
		clk := dec.io.Read(p.Wiring.CLK)
		dt := dec.io.Read(p.Wiring.DT)
		ev[i].Rotation = p.Encoder.Update(clk, dt, now)
		ev[i].Button = p.Button.Update(dec.io.Read(p.Wiring.Button))

		ev[i].Held = p.Button.Held()
		ev[i].Count = p.Encoder.Count
		ev[i].Speed = p.Encoder.Speed

		if ev[i].Rotation.Direction != NoRotation {
			logger.Logf(logger.Allow, "encoder", "Encoder %d -> Direction: %s -- Value: %d", i+1, ev[i].Rotation.Direction, p.Encoder.Count)
		}
		if ev[i].Button == Pressed {
			logger.Logf(logger.Allow, "encoder", "Encoder %d Button Pressed!", i+1)
		}
	}

	return ev
}

// Reset count and speed tracking of both encoders.
func (dec *Decoder) Reset() {
	for i := range dec.Players {
		dec.Players[i].Encoder.Reset()
	}
}
