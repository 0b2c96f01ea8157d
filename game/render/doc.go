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

// Package render draws the game on a display.Display.
//
// The display is slow compared to the game loop so the play field is never
// redrawn in full. The Game type remembers what it has painted and on every
// call to Update() only repaints the things that differ from the state of the
// simulation.World: the scores and timer, the balls and the coins. The ground
// line is damaged by balls resting on it and is redrawn periodically and
// whenever a ball comes close to it.
//
// The menus and the other screens are not time critical and are drawn in
// full.
package render

import "github.com/jetsetilly/hungryballs/hardware/display"

// PlayerColors is the colour of each player's ball and text.
var PlayerColors = [2]display.Color{display.Red, display.Blue}

// colours used for other things
const (
	background = display.Black
	coinColor  = display.Yellow
	lineColor  = display.White
	textColor  = display.White
)
