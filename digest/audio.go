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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// Audio implements the buzzer.Buzzer interface. Every tone is added to a
// chained hash.
type Audio struct {
	digest [sha1.Size]byte
	buffer []uint8
	tones  int
}

// length of each tone as recorded in the buffer
const toneLength = 8

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer: make([]uint8, sha1.Size+toneLength),
	}
}

// Hash implements digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.tones = 0
}

// Tones is the number of tones that have contributed to the hash.
func (dig *Audio) Tones() int {
	return dig.tones
}

// Tone implements the buzzer.Buzzer interface.
func (dig *Audio) Tone(frequency int, duration int) {
	copy(dig.buffer, dig.digest[:])
	binary.LittleEndian.PutUint32(dig.buffer[sha1.Size:], uint32(frequency))
	binary.LittleEndian.PutUint32(dig.buffer[sha1.Size+4:], uint32(duration))
	dig.digest = sha1.Sum(dig.buffer)
	dig.tones++
}
