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

package termplay

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/jetsetilly/hungryballs/hardware/display"
	"golang.org/x/image/draw"
)

// Framebuffer defines the functions required of the display being presented.
type Framebuffer interface {
	Image() *image.RGBA
	Generation() int
	Backlight() uint8
}

// the upper half block character
const halfBlock = "▀"

// Rows returns the number of terminal rows used to draw the display with the
// given number of columns.
func Rows(width int) int {
	h := scaledHeight(width)
	return (h + 1) / 2
}

func scaledHeight(width int) int {
	return display.Height * width / display.Width
}

func sgr(n int, c color.RGBA) string {
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", n, c.R, c.G, c.B)
}

func dim(c color.RGBA, backlight uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(backlight) / 255),
		G: uint8(uint16(c.G) * uint16(backlight) / 255),
		B: uint8(uint16(c.B) * uint16(backlight) / 255),
		A: 255,
	}
}

// Render the image as rows of half block characters, width columns wide. The
// aspect ratio of the image is preserved. Colours are dimmed according to the
// backlight, with 255 being full brightness.
func Render(dst io.Writer, src *image.RGBA, width int, backlight uint8) error {
	if width <= 0 {
		return fmt.Errorf("termplay: width must be greater than zero")
	}

	sb := src.Bounds()
	height := sb.Dy() * width / sb.Dx()
	if height < 1 {
		height = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, sb, draw.Src, nil)

	var s strings.Builder
	for y := 0; y < height; y += 2 {
		var fg, bg color.RGBA
		first := true

		for x := 0; x < width; x++ {
			top := dim(scaled.RGBAAt(x, y), backlight)
			bottom := color.RGBA{A: 255}
			if y+1 < height {
				bottom = dim(scaled.RGBAAt(x, y+1), backlight)
			}

			if first || top != fg {
				s.WriteString(sgr(38, top))
				fg = top
			}
			if first || bottom != bg {
				s.WriteString(sgr(48, bottom))
				bg = bottom
			}
			first = false

			s.WriteString(halfBlock)
		}

		s.WriteString("\x1b[0m\r\n")
	}

	_, err := io.WriteString(dst, s.String())
	return err
}
