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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/hardware/display/framebuffer"
	"github.com/jetsetilly/hungryballs/test"
)

// count the pixels of a colour inside the rectangle (inclusive)
func count(fb *framebuffer.Framebuffer, x1, y1, x2, y2 int, col display.Color) int {
	var n int
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if fb.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestRectangles(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.Begin()

	fb.FillRectangle(10, 10, 19, 19, display.Red)
	test.ExpectEquality(t, count(fb, 0, 0, display.Width-1, display.Height-1, display.Red), 100)
	test.ExpectEquality(t, fb.At(9, 10), display.Black)
	test.ExpectEquality(t, fb.At(19, 19), display.Red)

	// inverted corners
	fb.FillRectangle(19, 19, 10, 10, display.Blue)
	test.ExpectEquality(t, count(fb, 10, 10, 19, 19, display.Blue), 100)
	test.ExpectEquality(t, fb.At(10, 10), display.Blue)
	test.ExpectEquality(t, fb.At(9, 9), display.Black)
	test.ExpectEquality(t, fb.At(20, 20), display.Black)

	fb.Clear()
	fb.DrawRectangle(5, 76, 170, 97, display.Red)
	test.ExpectEquality(t, fb.At(5, 76), display.Red)
	test.ExpectEquality(t, fb.At(170, 97), display.Red)
	test.ExpectEquality(t, fb.At(100, 76), display.Red)
	test.ExpectEquality(t, fb.At(100, 80), display.Black)

	// perimeter of a 166x22 rectangle
	test.ExpectEquality(t, count(fb, 0, 0, display.Width-1, display.Height-1, display.Red), 2*166+2*20)

	// clipping
	fb.FillRectangle(-10, -10, 1000, 1000, display.White)
	test.ExpectEquality(t, fb.At(0, 0), display.White)
	test.ExpectEquality(t, fb.At(display.Width-1, display.Height-1), display.White)
}

func TestBackground(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.SetBackgroundColor(display.Blue)
	fb.Clear()
	test.ExpectEquality(t, fb.At(88, 110), display.Blue)
	test.ExpectEquality(t, fb.At(-1, 0), display.Black)
}

func TestCircles(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.Begin()

	fb.FillCircle(40, 190, 10, display.Red)
	test.ExpectEquality(t, fb.At(40, 190), display.Red)
	test.ExpectEquality(t, fb.At(30, 190), display.Red)
	test.ExpectEquality(t, fb.At(50, 190), display.Red)
	test.ExpectEquality(t, fb.At(40, 180), display.Red)
	test.ExpectEquality(t, fb.At(40, 200), display.Red)
	test.ExpectEquality(t, fb.At(40, 201), display.Black)
	test.ExpectEquality(t, fb.At(31, 181), display.Black)

	// everything inside the radius is painted
	for y := -10; y <= 10; y++ {
		for x := -10; x <= 10; x++ {
			if x*x+y*y < 81 {
				test.ExpectEquality(t, fb.At(40+x, 190+y), display.Red, x, y)
			}
		}
	}

	// erasing with the same call leaves nothing behind
	fb.FillCircle(40, 190, 10, display.Black)
	test.ExpectEquality(t, count(fb, 25, 175, 55, 205, display.Red), 0)

	// outline only
	fb.DrawCircle(88, 110, 30, display.Green)
	test.ExpectEquality(t, fb.At(118, 110), display.Green)
	test.ExpectEquality(t, fb.At(88, 80), display.Green)
	test.ExpectEquality(t, fb.At(88, 110), display.Black)
}

func TestLines(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.Begin()

	fb.DrawLine(0, 200, display.Width, 200, display.White)
	test.ExpectEquality(t, count(fb, 0, 200, display.Width-1, 200, display.White), display.Width)
	test.ExpectEquality(t, count(fb, 0, 199, display.Width-1, 199, display.White), 0)

	fb.Clear()
	fb.DrawLine(10, 10, 20, 20, display.Yellow)
	test.ExpectEquality(t, count(fb, 0, 0, 30, 30, display.Yellow), 11)
	test.ExpectEquality(t, fb.At(15, 15), display.Yellow)

	fb.Clear()
	fb.DrawLine(20, 30, 20, 10, display.Yellow)
	test.ExpectEquality(t, count(fb, 20, 0, 20, 40, display.Yellow), 21)
}

func TestText(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.Begin()

	for _, f := range []display.Font{display.Small, display.Medium, display.Large} {
		fb.Clear()
		fb.SetFont(f)
		fb.DrawText(10, 80, "YES", display.White)

		// all text is inside the character cells
		inside := count(fb, 10, 80, 10+f.TextWidth("YES")-1, 80+f.Height()-1, display.White)
		all := count(fb, 0, 0, display.Width-1, display.Height-1, display.White)
		test.ExpectSuccess(t, inside > 0, f)
		test.ExpectEquality(t, inside, all, f)
	}
}

func TestGeneration(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	g := fb.Generation()
	fb.DrawText(0, 0, "P1:", display.Red)
	test.ExpectSuccess(t, fb.Generation() > g)

	g = fb.Generation()
	pix := make([]byte, display.Width*display.Height*4)
	test.ExpectEquality(t, fb.Pixels(pix), g)

	test.ExpectSuccess(t, count(fb, 0, 0, 20, 12, display.Red) > 0)

	img := fb.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), display.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), display.Height)
}

func TestSettings(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.SetBacklight(200)
	fb.SetOrientation(4)
	test.ExpectEquality(t, fb.Backlight(), 200)
	test.ExpectEquality(t, fb.Orientation(), display.Portrait)
}
