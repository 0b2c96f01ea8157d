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
	"fmt"

	"github.com/jetsetilly/hungryballs/hardware/display"
)

// PixelSource is implemented by any display that can copy its pixels out.
type PixelSource interface {
	Pixels(dst []byte) int
}

const pixelDepth = 4

// Video produces a hash of the pixels of a display. Hashes are chained so
// that the hash of the current frame depends on every previous frame.
type Video struct {
	src      PixelSource
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int

	// the generation value of the most recent frame. frames with an unchanged
	// generation are not hashed
	generation int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(src PixelSource) *Video {
	dig := &Video{src: src, generation: -1}

	// length of pixels array contains enough room for the previous frames
	// digest value
	dig.pixels = make([]byte, len(dig.digest)+display.Width*display.Height*pixelDepth)

	return dig
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
	dig.generation = -1
}

// Frames is the number of frames that have contributed to the hash.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame copies the current pixels from the source and adds them to the
// hash. Returns false if the pixels have not changed since the previous call.
func (dig *Video) NewFrame() bool {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.pixels, dig.digest[:])

	gen := dig.src.Pixels(dig.pixels[len(dig.digest):])
	if gen == dig.generation {
		return false
	}
	dig.generation = gen

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
	return true
}
