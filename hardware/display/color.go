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

package display

import (
	"fmt"
	"image/color"
)

// Color is a 16bit RGB565 colour value. It implements the color.Color
// interface.
type Color uint16

// List of named colours used by the game.
const (
	Black    Color = 0x0000
	White    Color = 0xffff
	Red      Color = 0xf800
	Green    Color = 0x07e0
	Blue     Color = 0x001f
	Yellow   Color = 0xffe0
	DarkCyan Color = 0x03ef
)

// RGB returns the colour expanded to 8bits per channel. The low bits of each
// channel are filled by repeating the high bits so that White is 0xff in
// every channel.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1f
	g6 := uint8(c>>5) & 0x3f
	b5 := uint8(c) & 0x1f
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("%#04x", uint16(c))
}

// FromColor converts any color.Color to the nearest RGB565 value.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color((r>>11)<<11 | (g>>10)<<5 | b>>11)
}
