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

package match_test

import (
	"context"
	"testing"

	"github.com/jetsetilly/hungryballs/game/match"
	"github.com/jetsetilly/hungryballs/game/menu"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/hardware/display/framebuffer"
	"github.com/jetsetilly/hungryballs/hardware/pins"
	"github.com/jetsetilly/hungryballs/hardware/pins/virtual"
	"github.com/jetsetilly/hungryballs/random"
	"github.com/jetsetilly/hungryballs/test"
)

// screen records every string drawn on the framebuffer
type screen struct {
	*framebuffer.Framebuffer
	text []string
}

func (scr *screen) DrawText(x, y int, text string, col display.Color) {
	scr.text = append(scr.text, text)
	scr.Framebuffer.DrawText(x, y, text, col)
}

func (scr *screen) drawn(text string) bool {
	for _, s := range scr.text {
		if s == text {
			return true
		}
	}
	return false
}

// tones records the frequency of every tone
type tones []int

func (t *tones) Tone(frequency int, _ int) {
	*t = append(*t, frequency)
}

type rig struct {
	brd   *virtual.Board
	scr   *screen
	clk   *clock.Simulated
	tones *tones
	ctrl  *match.Controller
}

func newRig(t *testing.T) *rig {
	t.Helper()

	spec := specification.Default
	spec.PollInterval = 10

	r := &rig{
		brd:   virtual.NewBoard(pins.Wiring()),
		scr:   &screen{Framebuffer: framebuffer.NewFramebuffer()},
		clk:   clock.NewSimulated(0),
		tones: &tones{},
	}
	r.ctrl = match.NewController(spec, match.Devices{
		Display: r.scr,
		IO:      r.brd,
		Clock:   r.clk,
		Random:  random.NewSeeded(1),
		Buzzer:  r.tones,
	})

	test.ExpectEquality(t, r.ctrl.Phase(), match.PowerOff)
	r.ctrl.PowerOn()
	test.DemandEquality(t, r.ctrl.Phase(), match.MainMenu)

	return r
}

func (r *rig) iterate(n int) {
	for range n {
		r.ctrl.Iterate()
	}
}

// press and release the button of a player. the button press is seen by the
// first iteration and the release by the second
func (r *rig) press(player int) {
	r.brd.Press(player, true)
	r.ctrl.Iterate()
	r.brd.Press(player, false)
	r.ctrl.Iterate()
}

// rotate the encoder of a player by one detent
func (r *rig) rotate(player int, clockwise bool) {
	r.brd.Rotate(player, clockwise)
	r.iterate(virtual.StepsPerDetent)
}

// play until the phase changes from Playing
func (r *rig) playToEnd(t *testing.T) {
	t.Helper()
	for i := 0; r.ctrl.Phase() == match.Playing; i++ {
		if i > 100000 {
			t.Fatalf("match did not finish")
		}
		r.ctrl.Iterate()
	}
}

// start a match from the main menu
func (r *rig) start(t *testing.T) {
	t.Helper()
	r.press(0)
	r.press(1)
	test.DemandEquality(t, r.ctrl.Phase(), match.Playing)
}

func TestPowerOn(t *testing.T) {
	r := newRig(t)

	test.ExpectSuccess(t, r.scr.drawn("Hello, PLAYERS"))
	test.ExpectSuccess(t, r.scr.drawn("Time Limit: 60"))
	test.ExpectSuccess(t, r.scr.drawn("START the Game?"))
	test.ExpectEquality(t, r.clk.Peek(), int64(1800))
	test.ExpectEquality(t, r.scr.Backlight(), 200)
	test.ExpectEquality(t, r.scr.Orientation(), display.Portrait)

	mode, ok := r.brd.Mode(pins.Player2.Button)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mode, pins.InputPullup)
}

func TestRun(t *testing.T) {
	r := newRig(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.ctrl.Run(ctx)
	test.ExpectEquality(t, r.ctrl.Phase(), match.MainMenu)
}

func TestMenuNavigation(t *testing.T) {
	r := newRig(t)

	r.rotate(0, true)
	test.ExpectEquality(t, r.ctrl.Menu().Players[0].Option, menu.No)
	r.rotate(0, false)
	test.ExpectEquality(t, r.ctrl.Menu().Players[0].Option, menu.Yes)
	r.rotate(1, false)
	test.ExpectEquality(t, r.ctrl.Menu().Players[1].Option, menu.No)

	// rotation after locking is ignored
	r.press(1)
	r.rotate(1, true)
	test.ExpectEquality(t, r.ctrl.Menu().Players[1], menu.Selection{Option: menu.No, Locked: true})
	test.ExpectEquality(t, r.ctrl.Phase(), match.MainMenu)
}

// both players locking YES starts a match that lasts for sixty seconds
func TestFullMatch(t *testing.T) {
	r := newRig(t)

	r.brd.Press(0, true)
	r.ctrl.Iterate()
	r.brd.Press(0, false)
	r.ctrl.Iterate()
	test.ExpectEquality(t, r.ctrl.Phase(), match.MainMenu)

	r.brd.Press(1, true)
	r.ctrl.Iterate()
	test.ExpectEquality(t, r.ctrl.Phase(), match.Starting)

	r.brd.Press(1, false)
	r.ctrl.Iterate()
	test.DemandEquality(t, r.ctrl.Phase(), match.Playing)
	test.ExpectSuccess(t, r.scr.drawn("Game Starts"))
	test.ExpectEquality(t, r.ctrl.World().Remaining, 60)
	test.ExpectEquality(t, (*r.tones)[0], specification.Default.StartTone)

	start := r.ctrl.World().Start
	prev := r.ctrl.World().Remaining
	for i := 0; r.ctrl.Phase() == match.Playing; i++ {
		if i > 100000 {
			t.Fatalf("match did not finish")
		}
		r.ctrl.Iterate()
		rem := r.ctrl.World().Remaining
		test.ExpectSuccess(t, rem <= prev, rem, prev)
		prev = rem
	}

	test.ExpectEquality(t, r.ctrl.Phase(), match.Results)
	test.ExpectEquality(t, r.ctrl.World().Remaining, 0)
	test.ExpectSuccess(t, r.clk.Peek()-start >= 60000)
	test.ExpectEquality(t, (*r.tones)[len(*r.tones)-1], specification.Default.FinishTone)
	test.ExpectEquality(t, len(r.ctrl.Results()), 1)

	r.ctrl.Iterate()
	test.ExpectEquality(t, r.ctrl.Phase(), match.PlayAgainMenu)
	test.ExpectSuccess(t, r.scr.drawn("GAME OVER"))
	test.ExpectSuccess(t, r.scr.drawn("Play Again?"))
}

func TestMovementDuringMatch(t *testing.T) {
	r := newRig(t)
	r.start(t)

	x := r.ctrl.World().Balls[0].X
	r.rotate(0, true)
	test.ExpectSuccess(t, r.ctrl.World().Balls[0].X > x)

	// holding the button raises the ball
	y := r.ctrl.World().Balls[1].Y
	r.brd.Press(1, true)
	r.iterate(2)
	test.ExpectSuccess(t, r.ctrl.World().Balls[1].Y < y)
	r.brd.Press(1, false)
	r.iterate(10)
	test.ExpectEquality(t, r.ctrl.World().Balls[1].Y, y)
}

func TestResultsDisplay(t *testing.T) {
	r := newRig(t)
	r.start(t)

	r.ctrl.World().Scores = [2]int{5, 3}
	r.clk.Advance(60000)
	r.ctrl.Iterate()
	test.DemandEquality(t, r.ctrl.Phase(), match.Results)
	test.ExpectEquality(t, r.ctrl.Results()[0].Scores, [2]int{5, 3})

	r.ctrl.Iterate()
	test.ExpectSuccess(t, r.scr.drawn("P1: 5"))
	test.ExpectSuccess(t, r.scr.drawn("P2: 3"))
	test.ExpectSuccess(t, r.scr.drawn("P1 WINS!"))
	test.ExpectFailure(t, r.scr.drawn("IT'S A TIE!"))
}

func TestTieDisplay(t *testing.T) {
	r := newRig(t)
	r.start(t)

	r.ctrl.World().Scores = [2]int{4, 4}
	r.clk.Advance(60000)
	r.iterate(2)
	test.ExpectSuccess(t, r.scr.drawn("IT'S A TIE!"))
}

// from the play again menu, one player locking NO does nothing until the other
// player has also locked
func TestPlayAgainWaitsForBothPlayers(t *testing.T) {
	r := newRig(t)
	r.start(t)
	r.clk.Advance(60000)
	r.iterate(2)
	test.DemandEquality(t, r.ctrl.Phase(), match.PlayAgainMenu)

	r.rotate(0, true)
	r.press(0)
	test.ExpectEquality(t, r.ctrl.Menu().Players[0], menu.Selection{Option: menu.No, Locked: true})

	r.iterate(50)
	test.ExpectEquality(t, r.ctrl.Phase(), match.PlayAgainMenu)
	test.ExpectFailure(t, r.ctrl.Menu().Players[1].Locked)

	r.press(1)
	test.ExpectEquality(t, r.ctrl.Phase(), match.MainMenu)
	test.ExpectEquality(t, r.ctrl.Menu().Outcome(), menu.Pending)
}

func TestRematch(t *testing.T) {
	r := newRig(t)

	for i := 0; i < 3; i++ {
		if i == 0 {
			r.start(t)
		} else {
			test.DemandEquality(t, r.ctrl.Phase(), match.PlayAgainMenu)
			r.press(1)
			r.press(0)
			test.DemandEquality(t, r.ctrl.Phase(), match.Playing)
		}
		test.ExpectEquality(t, r.ctrl.World().Remaining, 60)
		test.ExpectEquality(t, r.ctrl.World().Scores, [2]int{0, 0})

		r.clk.Advance(60000)
		r.iterate(2)
	}
	test.ExpectEquality(t, len(r.ctrl.Results()), 3)
}

func TestFarewell(t *testing.T) {
	r := newRig(t)

	r.rotate(0, true)
	r.rotate(1, true)
	r.press(0)

	before := r.clk.Peek()
	r.press(1)
	test.ExpectEquality(t, r.ctrl.Phase(), match.MainMenu)
	test.ExpectSuccess(t, r.scr.drawn("Thank You!"))
	test.ExpectSuccess(t, r.clk.Peek()-before >= specification.Default.Farewell)

	// the menu is presented again
	test.ExpectEquality(t, r.ctrl.Menu().Players[0], menu.Selection{Option: menu.Yes})
	test.ExpectEquality(t, r.ctrl.Menu().Players[1], menu.Selection{Option: menu.Yes})
}

func TestMainMenuDisagreement(t *testing.T) {
	r := newRig(t)

	r.rotate(1, true)
	r.press(0)
	r.press(1)
	test.ExpectEquality(t, r.ctrl.Phase(), match.MainMenu)
	test.ExpectFailure(t, r.scr.drawn("Thank You!"))
	test.ExpectEquality(t, r.ctrl.Menu().Outcome(), menu.Pending)

	// both selections are reset so the players can choose again
	for p, sel := range r.ctrl.Menu().Players {
		test.ExpectFailure(t, sel.Locked, p)
		test.ExpectEquality(t, sel.Option, menu.Yes, p)
	}

	r.press(0)
	r.press(1)
	r.iterate(1)
	test.ExpectInequality(t, r.ctrl.Phase(), match.MainMenu)
}
