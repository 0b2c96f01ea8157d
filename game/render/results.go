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

// Outcome returns the text describing the result of a match and the colour it
// should be drawn in.
func Outcome(score1, score2 int) (string, display.Color) {
	switch {
	case score1 > score2:
		return "P1 WINS!", PlayerColors[0]
	case score2 > score1:
		return "P2 WINS!", PlayerColors[1]
	}
	return "IT'S A TIE!", textColor
}

// Results clears the display and draws the final scores of a match.
func Results(disp display.Display, score1, score2 int) {
	disp.Clear()
	disp.SetFont(display.Large)
	disp.DrawText(40, 40, "GAME OVER", textColor)
	disp.DrawText(40, 80, fmt.Sprintf("P1: %d", score1), PlayerColors[0])
	disp.DrawText(40, 110, fmt.Sprintf("P2: %d", score2), PlayerColors[1])

	s, col := Outcome(score1, score2)
	disp.DrawText(40, 150, s, col)
}
