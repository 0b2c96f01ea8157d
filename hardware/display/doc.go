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

// Package display defines the capabilities of the colour display the game
// draws on. The game only ever talks to the Display interface. The
// framebuffer sub-package is an implementation that draws into memory and is
// used by the host programs and by the tests.
//
// The display is a 176x220 pixel panel. Coordinates are in pixels with the
// origin at the top left of the panel when it is in the Portrait orientation.
// Rectangle and line end points are inclusive.
//
// Colours are 16bit RGB565 values, which is the native format of the panel.
package display
