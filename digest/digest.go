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

// Package digest contains implementations that produce a cryptographic hash of
// the game's output. The Video type hashes the contents of the display after
// every frame and the Audio type hashes every tone sent to the buzzer.
//
// The hash can then be used to compare the output of subsequent runs. If a new
// hash differs from a previously recorded value then something has changed. A
// headless run with a fixed seed is always expected to produce the same
// hashes.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
