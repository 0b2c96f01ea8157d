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

package framebuffer

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/jetsetilly/hungryballs/hardware/display"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// Framebuffer is an in-memory implementation of the display.Display
// interface.
type Framebuffer struct {
	crit sync.Mutex

	img *image.RGBA

	begun       bool
	orientation display.Orientation
	backlight   uint8
	background  display.Color
	font        display.Font

	// incremented every time the pixels change
	generation int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{
		img:        image.NewRGBA(image.Rect(0, 0, display.Width, display.Height)),
		background: display.Black,
	}
	fb.fill(fb.img.Bounds(), fb.background)
	return fb
}

func face(f display.Font) font.Face {
	switch f {
	case display.Medium:
		return inconsolata.Regular8x16
	case display.Large:
		return inconsolata.Bold8x16
	}
	return basicfont.Face7x13
}

// Begin implements the display.Display interface.
func (fb *Framebuffer) Begin() {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.begun = true
	fb.font = display.Small
	fb.fill(fb.img.Bounds(), fb.background)
}

// SetOrientation implements the display.Display interface.
func (fb *Framebuffer) SetOrientation(o display.Orientation) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.orientation = o.Normalise()
	fb.generation++
}

// SetBacklight implements the display.Display interface.
func (fb *Framebuffer) SetBacklight(brightness uint8) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.backlight = brightness
	fb.generation++
}

// SetBackgroundColor implements the display.Display interface.
func (fb *Framebuffer) SetBackgroundColor(col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.background = col
}

// Clear implements the display.Display interface.
func (fb *Framebuffer) Clear() {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.fill(fb.img.Bounds(), fb.background)
}

// SetFont implements the display.Display interface.
func (fb *Framebuffer) SetFont(f display.Font) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.font = f
}

// DrawText implements the display.Display interface.
func (fb *Framebuffer) DrawText(x, y int, text string, col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	f := face(fb.font)
	d := font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(col),
		Face: f,
		Dot:  fixed.P(x, y+f.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	fb.generation++
}

// DrawRectangle implements the display.Display interface.
func (fb *Framebuffer) DrawRectangle(x1, y1, x2, y2 int, col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.hline(x1, x2, y1, col)
	fb.hline(x1, x2, y2, col)
	fb.vline(x1, y1, y2, col)
	fb.vline(x2, y1, y2, col)
	fb.generation++
}

// FillRectangle implements the display.Display interface.
func (fb *Framebuffer) FillRectangle(x1, y1, x2, y2 int, col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	fb.fill(image.Rect(x1, y1, x2+1, y2+1), col)
}

// DrawLine implements the display.Display interface.
func (fb *Framebuffer) DrawLine(x1, y1, x2, y2 int, col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.line(x1, y1, x2, y2, col)
	fb.generation++
}

// DrawCircle implements the display.Display interface.
func (fb *Framebuffer) DrawCircle(x, y, r int, col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	midpoint(r, func(dx, dy int) {
		fb.set(x+dx, y+dy, col)
		fb.set(x-dx, y+dy, col)
		fb.set(x+dx, y-dy, col)
		fb.set(x-dx, y-dy, col)
		fb.set(x+dy, y+dx, col)
		fb.set(x-dy, y+dx, col)
		fb.set(x+dy, y-dx, col)
		fb.set(x-dy, y-dx, col)
	})
	fb.generation++
}

// FillCircle implements the display.Display interface.
func (fb *Framebuffer) FillCircle(x, y, r int, col display.Color) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	midpoint(r, func(dx, dy int) {
		fb.hline(x-dx, x+dx, y+dy, col)
		fb.hline(x-dx, x+dx, y-dy, col)
		fb.hline(x-dy, x+dy, y+dx, col)
		fb.hline(x-dy, x+dy, y-dx, col)
	})
	fb.generation++
}

// At returns the colour of the pixel at x, y. Pixels outside the panel are
// reported as black.
func (fb *Framebuffer) At(x, y int) display.Color {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if !(image.Point{x, y}).In(fb.img.Bounds()) {
		return display.Black
	}
	return display.FromColor(fb.img.RGBAAt(x, y))
}

// Pixels copies the framebuffer into dst, which should be at least
// display.Width*display.Height*4 bytes long. The format is 8bit RGBA, in
// that order. The generation value of the copied pixels is returned.
func (fb *Framebuffer) Pixels(dst []byte) int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	copy(dst, fb.img.Pix)
	return fb.generation
}

// Image returns a copy of the framebuffer.
func (fb *Framebuffer) Image() *image.RGBA {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	img := image.NewRGBA(fb.img.Bounds())
	copy(img.Pix, fb.img.Pix)
	return img
}

// Generation is incremented every time the framebuffer is drawn to.
func (fb *Framebuffer) Generation() int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.generation
}

// Backlight returns the brightness set by the most recent call to
// SetBacklight().
func (fb *Framebuffer) Backlight() uint8 {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.backlight
}

// Orientation returns the orientation set by the most recent call to
// SetOrientation().
func (fb *Framebuffer) Orientation() display.Orientation {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.orientation
}

// fill is clipped to the panel by draw.Draw
func (fb *Framebuffer) fill(r image.Rectangle, col display.Color) {
	draw.Draw(fb.img, r, image.NewUniform(col), image.Point{}, draw.Src)
	fb.generation++
}

func (fb *Framebuffer) set(x, y int, col color.Color) {
	fb.img.Set(x, y, col)
}

func (fb *Framebuffer) hline(x1, x2, y int, col display.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	fb.fill(image.Rect(x1, y, x2+1, y+1), col)
}

func (fb *Framebuffer) vline(x, y1, y2 int, col display.Color) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	fb.fill(image.Rect(x, y1, x+1, y2+1), col)
}
