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

package random

import (
	"math/rand"
	"time"
)

// the base seed for random numbers that have not been seeded explicitly
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a seeded random number generator.
type Random struct {
	rng *rand.Rand

	// the seed used to create the generator
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type
// when the sequence of numbers does not need to be repeatable.
func NewRandom() *Random {
	return NewSeeded(baseSeed)
}

// NewSeeded creates a Random instance that returns the same sequence of
// numbers every time for the same seed.
func NewSeeded(seed int64) *Random {
	return &Random{
		rng:  rand.New(rand.NewSource(seed)),
		Seed: seed,
	}
}

// Uniform returns a number in the half-open range [min, max). If max is not
// greater than min then min is returned.
func (rnd *Random) Uniform(min, max int) int {
	if max <= min {
		return min
	}
	return min + rnd.rng.Intn(max-min)
}

// Intn returns a number in the half-open range [0, n).
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rng.Intn(n)
}
