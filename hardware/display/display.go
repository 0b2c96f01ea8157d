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

// Dimensions of the panel in pixels.
const (
	Width  = 176
	Height = 220
)

// Orientation of the panel.
type Orientation int

// List of valid Orientation values. The numbering matches the panel driver
// so values greater than LandscapeFlipped wrap around.
const (
	Portrait Orientation = iota
	Landscape
	PortraitFlipped
	LandscapeFlipped
)

// Normalise an orientation value into the list of valid values.
func (o Orientation) Normalise() Orientation {
	o %= 4
	if o < 0 {
		o += 4
	}
	return o
}

func (o Orientation) String() string {
	switch o.Normalise() {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	case PortraitFlipped:
		return "portrait (flipped)"
	}
	return "landscape (flipped)"
}

// Font selects one of the fixed width fonts of the display.
type Font int

// List of valid Font values.
const (
	Small Font = iota
	Medium
	Large
)

// Width of a single character cell in pixels.
func (f Font) Width() int {
	if f == Small {
		return 7
	}
	return 8
}

// Height of a single character cell in pixels.
func (f Font) Height() int {
	if f == Small {
		return 13
	}
	return 16
}

// TextWidth is the width in pixels of a string drawn in the font.
func (f Font) TextWidth(s string) int {
	return len(s) * f.Width()
}

func (f Font) String() string {
	switch f {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return "unknown font"
}

// Display is the set of drawing capabilities used by the game. All calls are
// synchronous.
type Display interface {
	Begin()
	SetOrientation(Orientation)
	SetBacklight(brightness uint8)
	SetBackgroundColor(Color)

	// Clear fills the entire panel with the background colour
	Clear()

	// DrawText draws the string with the top left corner of the first
	// character at x, y. The current font is used
	DrawText(x, y int, text string, col Color)

	DrawRectangle(x1, y1, x2, y2 int, col Color)
	FillRectangle(x1, y1, x2, y2 int, col Color)
	DrawCircle(x, y, r int, col Color)
	FillCircle(x, y, r int, col Color)
	DrawLine(x1, y1, x2, y2 int, col Color)
	SetFont(Font)
}
