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

package entities

import (
	"fmt"
	"math"
)

// Ball is a player's ball. Positions are of the centre of the ball.
type Ball struct {
	X int
	Y int

	// position at the start of the current tick
	PrevX int
	PrevY int
}

// NewBall is the preferred method of initialisation for the Ball type.
func NewBall(x, y int) Ball {
	return Ball{X: x, Y: y, PrevX: x, PrevY: y}
}

// StartTick records the current position as the previous position.
func (b *Ball) StartTick() {
	b.PrevX = b.X
	b.PrevY = b.Y
}

// Moved returns true if the ball has moved since the start of the tick.
func (b Ball) Moved() bool {
	return b.X != b.PrevX || b.Y != b.PrevY
}

// Distance between the centre of the ball and a point.
func (b Ball) Distance(x, y int) float64 {
	return math.Hypot(float64(b.X-x), float64(b.Y-y))
}

func (b Ball) String() string {
	return fmt.Sprintf("(%d,%d)", b.X, b.Y)
}

// Clamp value to the range min to max inclusive.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
