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

package render_test

import (
	"testing"

	"github.com/jetsetilly/hungryballs/game/render"
	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/test"
)

func TestOutcome(t *testing.T) {
	s, col := render.Outcome(5, 3)
	test.ExpectEquality(t, s, "P1 WINS!")
	test.ExpectEquality(t, col, display.Red)

	s, col = render.Outcome(3, 5)
	test.ExpectEquality(t, s, "P2 WINS!")
	test.ExpectEquality(t, col, display.Blue)

	s, _ = render.Outcome(4, 4)
	test.ExpectEquality(t, s, "IT'S A TIE!")

	s, _ = render.Outcome(0, 0)
	test.ExpectEquality(t, s, "IT'S A TIE!")
}

func TestResults(t *testing.T) {
	rec := newRecorder()
	render.Results(rec, 5, 3)
	test.ExpectEquality(t, rec.count("Clear"), 1)
	test.ExpectEquality(t, rec.count(`DrawText 40 40 "GAME OVER"`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 40 80 "P1: 5" 0xf800`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 40 110 "P2: 3" 0x001f`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 40 150 "P1 WINS!" 0xf800`), 1)
}

func TestScreens(t *testing.T) {
	rec := newRecorder()

	render.Shapes(rec)
	test.ExpectEquality(t, rec.count(`DrawText 10 180 "Hello, PLAYERS"`), 1)
	test.ExpectEquality(t, rec.At(140, 120), display.Yellow)

	render.Welcome(rec, 60)
	test.ExpectEquality(t, rec.count(`DrawText 20 190 "Time Limit: 60"`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 20 85 "HUNGRY BALLS" 0x03ef`), 1)
	test.ExpectEquality(t, rec.At(140, 120), display.Black)

	render.GameStarts(rec)
	test.ExpectEquality(t, rec.count(`DrawText 26 100 "Game Starts"`), 1)

	render.Farewell(rec)
	test.ExpectEquality(t, rec.count(`DrawText 30 100 "Thank You!"`), 1)
}
