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

// Package framebuffer implements the display.Display interface by drawing
// into an in-memory image. Text is drawn with the fixed width faces from the
// golang.org/x/image module.
//
// The framebuffer is safe to use from more than one goroutine. The game draws
// into it while a host program copies the pixels out to a window or a
// terminal. The Generation() function can be used by the host to decide if the
// pixels have changed since the last copy.
package framebuffer
