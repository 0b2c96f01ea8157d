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

package render

import (
	"fmt"

	"github.com/jetsetilly/hungryballs/hardware/display"
)

// Shapes is the first splash screen shown at power on.
func Shapes(disp display.Display) {
	disp.SetOrientation(display.Portrait)
	disp.DrawRectangle(0, 0, 175, 219, display.White)
	disp.DrawRectangle(25, 45, 150, 175, display.Black)
	disp.DrawRectangle(10, 10, 100, 60, display.Red)
	disp.FillRectangle(120, 10, 170, 60, display.Blue)
	disp.DrawCircle(55, 120, 30, display.Green)
	disp.FillCircle(140, 120, 30, display.Yellow)
	disp.DrawLine(10, 160, 170, 160, display.Yellow)
	disp.SetFont(display.Large)
	disp.DrawText(10, 180, "Hello, PLAYERS", display.White)
}

// Welcome is the second splash screen shown at power on.
func Welcome(disp display.Display, matchDuration int) {
	disp.Clear()
	disp.DrawRectangle(0, 0, 175, 219, display.White)
	disp.DrawRectangle(25, 45, 150, 175, display.Black)
	disp.SetFont(display.Medium)
	disp.DrawText(37, 45, "Welcome to", display.White)
	disp.SetFont(display.Large)
	disp.DrawText(20, 85, "HUNGRY BALLS", display.DarkCyan)
	disp.SetFont(display.Medium)
	disp.DrawText(22, 125, "Eat more coins", display.Yellow)
	disp.DrawText(50, 155, ".. WIN ..", display.Yellow)
	disp.DrawText(20, 190, fmt.Sprintf("Time Limit: %d", matchDuration), display.White)
}

// GameStarts is shown between the menu and the start of a match.
func GameStarts(disp display.Display) {
	disp.Clear()
	disp.SetFont(display.Large)
	disp.DrawText(26, 100, "Game Starts", textColor)
}

// Farewell is shown when both players decline to start a match.
func Farewell(disp display.Display) {
	disp.Clear()
	disp.SetFont(display.Large)
	disp.DrawText(30, 100, "Thank You!", textColor)
}
