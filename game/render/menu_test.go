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

	"github.com/jetsetilly/hungryballs/game/menu"
	"github.com/jetsetilly/hungryballs/game/render"
	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/test"
)

func TestStartMenu(t *testing.T) {
	rec := newRecorder()
	rec.Begin()

	sel := menu.NewMenu()
	m := render.NewMenu(rec)
	m.Begin(render.StartPrompt, sel)

	test.ExpectEquality(t, m.Prompt(), render.StartPrompt)
	test.ExpectEquality(t, rec.count("Clear"), 1)
	test.ExpectEquality(t, rec.count(`DrawText 5 35 "START the Game?"`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 10 80 " YES"`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 10 120 " NO"`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 10 164 "Player1 -> RED" 0xf800`), 1)

	// both players start on YES
	test.ExpectEquality(t, rec.At(5, 76), display.Red)
	test.ExpectEquality(t, rec.At(2, 73), display.Blue)
	test.ExpectEquality(t, rec.At(5, 116), display.Black)
	test.ExpectEquality(t, rec.At(2, 113), display.Black)

	// player 1 moves to NO
	sel.Rotate(0)
	rec.reset()
	m.Update(sel)
	test.ExpectEquality(t, rec.count("FillRectangle"), 4)
	test.ExpectEquality(t, rec.count("DrawRectangle"), 2)
	test.ExpectEquality(t, rec.count("DrawRectangle 5 116 170 137 0xf800"), 1)
	test.ExpectEquality(t, rec.count("DrawRectangle 2 73 173 100 0x001f"), 1)
	test.ExpectEquality(t, rec.At(5, 76), display.Black)
	test.ExpectEquality(t, rec.At(5, 116), display.Red)
	test.ExpectEquality(t, rec.At(2, 73), display.Blue)
}

func TestPlayAgainMenu(t *testing.T) {
	rec := newRecorder()
	rec.Begin()

	sel := menu.NewMenu()
	sel.Rotate(1)

	m := render.NewMenu(rec)
	m.Begin(render.PlayAgainPrompt, sel)
	test.ExpectEquality(t, rec.count(`DrawText 5 10 "Play Again?"`), 1)
	test.ExpectEquality(t, rec.count(`DrawText 5 35`), 0)
	test.ExpectEquality(t, rec.count(`DrawText 10 164`), 0)
	test.ExpectEquality(t, rec.At(2, 113), display.Blue)
}

func TestHighlightsNest(t *testing.T) {
	for o := range render.Highlights[0] {
		inner := render.Highlights[0][o]
		outer := render.Highlights[1][o]
		test.ExpectSuccess(t, inner.In(outer), o)
		test.ExpectInequality(t, inner, outer, o)
	}
}
