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
	"fmt"

	"github.com/jetsetilly/hungryballs/hardware/pins"
)

// Direction of a rotation edge.
type Direction int

// List of valid Direction values.
const (
	NoRotation Direction = 0
	CW         Direction = 1
	CCW        Direction = -1
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	}
	return "none"
}

// Rotation is the result of a single Encoder.Update().
type Rotation struct {
	Direction Direction

	// the edge was seen on the CLK line. the menus only react to CLK edges,
	// which gives one toggle per detent
	ClockEdge bool
}

// speed multiplier values.
const (
	// edges closer together than this many milliseconds increase the speed
	// multiplier
	SpeedThreshold = 100

	// edges further apart than this many milliseconds reset the speed
	// multiplier
	SpeedTimeout = 1000

	MaxSpeedMultiplier = 20
)

// SpeedMultiplier maps the time in milliseconds since the previous edge onto
// the range 1 to MaxSpeedMultiplier. The smaller the gap the larger the
// multiplier. The first argument is ignored if first is true.
func SpeedMultiplier(sinceLast int64, first bool) int {
	if first || sinceLast > SpeedTimeout {
		return 1
	}

	if sinceLast < 0 {
		sinceLast = 0
	}

	if sinceLast < SpeedThreshold {
		// linear mapping of 0..SpeedThreshold onto MaxSpeedMultiplier..1 with
		// truncating integer arithmetic
		return MaxSpeedMultiplier + int(sinceLast*(1-MaxSpeedMultiplier)/SpeedThreshold)
	}

	return 1
}

// Encoder is the state of a single quadrature encoder.
type Encoder struct {
	clk     pins.Level
	dt      pins.Level
	prevCLK pins.Level
	prevDT  pins.Level

	// Count is incremented for every clockwise edge and decremented for
	// every counter-clockwise edge
	Count int

	// Speed is the multiplier calculated at the most recent edge
	Speed int

	lastEdge int64
	edged    bool
}

// Prime sets the previously observed levels. Used at startup so that the
// resting levels of the encoder are not mistaken for an edge.
func (enc *Encoder) Prime(clk, dt pins.Level) {
	enc.clk = clk
	enc.dt = dt
	enc.prevCLK = clk
	enc.prevDT = dt
	enc.Speed = 1
}

// Update the encoder with newly sampled levels. The time is used for the speed
// multiplier.
func (enc *Encoder) Update(clk, dt pins.Level, now int64) Rotation {
	enc.clk = clk
	enc.dt = dt

	defer func() {
		enc.prevCLK = clk
		enc.prevDT = dt
	}()

	var rot Rotation

	switch {
	case clk != enc.prevCLK:
		rot.ClockEdge = true
		if dt != clk {
			rot.Direction = CW
		} else {
			rot.Direction = CCW
		}
	case dt != enc.prevDT:
		if clk == dt {
			rot.Direction = CW
		} else {
			rot.Direction = CCW
		}
	default:
		return rot
	}

	enc.Speed = SpeedMultiplier(now-enc.lastEdge, !enc.edged)
	enc.lastEdge = now
	enc.edged = true
	enc.Count += int(rot.Direction)

	return rot
}

// Reset the count and speed tracking. The last observed levels are kept.
func (enc *Encoder) Reset() {
	enc.Count = 0
	enc.Speed = 1
	enc.lastEdge = 0
	enc.edged = false
}

func (enc *Encoder) String() string {
	return fmt.Sprintf("clk=%s dt=%s count=%d speed=%d", enc.clk, enc.dt, enc.Count, enc.Speed)
}
