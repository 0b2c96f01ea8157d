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

// Package random should be used in preference to the math/rand package when a
// random number is required by the game.
//
// The Random type is seeded exactly once, at creation. A generator created
// with NewRandom() uses a seed taken from the time the program started. A
// generator created with NewSeeded() always produces the same sequence of
// numbers for the same seed, which is what the tests and the headless runner
// need.
//
// The Seed field records the seed that was used so that an interesting run can
// be repeated.
package random
