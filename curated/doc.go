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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// The game itself never fails in a way that it can observe. Curated errors are
// used by the host programs: opening a window, putting the terminal into
// cbreak mode, writing a WAV file, parsing the command line.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern is kept so that the
// error can be identified later with Is():
//
//	e := curated.Errorf(curated.SDL, err)
//	if curated.Is(e, curated.SDL) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. Wrapping an error with the same prefix that it
// already carries does not result in messages like "sdl: sdl: no display".
//
// Patterns that are tested for elsewhere in the program are stored as const
// strings in patterns.go.
package curated
