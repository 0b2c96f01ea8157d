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

	"github.com/jetsetilly/hungryballs/game/specification"
)

// Coin is a single coin. Inactive coins are not in play.
type Coin struct {
	X       int
	Y       int
	Active  bool
	Created int64
}

func (c Coin) String() string {
	if !c.Active {
		return "inactive"
	}
	return fmt.Sprintf("(%d,%d) @ %d", c.X, c.Y, c.Created)
}

// CoinRing is a fixed number of coin slots. New coins are written to the
// slots in turn, replacing whatever coin was in the slot.
type CoinRing struct {
	Slots [specification.MaxCoins]Coin

	// index of the next slot to be written to
	cursor int
}

// Reset deactivates every coin and sets the next slot to the first slot.
func (r *CoinRing) Reset() {
	for i := range r.Slots {
		r.Slots[i] = Coin{}
	}
	r.cursor = 0
}

// Next returns the index of the slot that the next coin will be written to.
func (r *CoinRing) Next() int {
	return r.cursor
}

// Spawn a new coin in the next slot. The returned slot is the one that was
// written to. If there was an active coin in the slot it has been evicted and
// is returned as the second value.
func (r *CoinRing) Spawn(x, y int, now int64) (int, Coin, bool) {
	slot := r.cursor
	evicted := r.Slots[slot]

	r.Slots[slot] = Coin{
		X:       x,
		Y:       y,
		Active:  true,
		Created: now,
	}
	r.cursor = (r.cursor + 1) % len(r.Slots)

	return slot, evicted, evicted.Active
}

// Retire the coin in the slot.
func (r *CoinRing) Retire(slot int) {
	r.Slots[slot].Active = false
}

// Active returns the number of coins in play.
func (r *CoinRing) Active() int {
	var n int
	for _, c := range r.Slots {
		if c.Active {
			n++
		}
	}
	return n
}
