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

// Package chaser is a bot capable of playing Hungry Balls. It steers its ball
// towards the nearest coin and accepts every invitation to play, unless it
// has been told how many matches to play.
package chaser

import (
	"fmt"

	"github.com/jetsetilly/hungryballs/bots"
	"github.com/jetsetilly/hungryballs/game/entities"
	"github.com/jetsetilly/hungryballs/game/match"
	"github.com/jetsetilly/hungryballs/game/menu"
	"github.com/jetsetilly/hungryballs/game/simulation"
)

// milliseconds between detents when the ball is close to its target
const fineInterval = 150

// Chaser implements the bots.Bot interface.
type Chaser struct {
	player int
	game   bots.Game
	input  bots.Input

	feedback bots.Feedback

	// the number of matches to play before declining to play again. a value
	// of zero means the bot will play forever
	Matches int

	pressed    bool
	lastRotate int64
	target     entities.Coin
	quit       bool
}

// NewChaser is the preferred method of initialisation for the Chaser type.
// Players are numbered from zero.
func NewChaser(player int, game bots.Game, input bots.Input) *Chaser {
	return &Chaser{
		player: player,
		game:   game,
		input:  input,
		feedback: bots.Feedback{
			Diagnostic: make(chan bots.Diagnostic, 64),
		},
		lastRotate: -fineInterval,
	}
}

// BotID implements the bots.Bot interface.
func (bot *Chaser) BotID() string {
	return fmt.Sprintf("chaser (P%d)", bot.player+1)
}

// Feedback implements the bots.Bot interface.
func (bot *Chaser) Feedback() *bots.Feedback {
	return &bot.feedback
}

// Quit implements the bots.Bot interface.
func (bot *Chaser) Quit() {
	bot.press(false)
	bot.quit = true
}

// Tick implements the bots.Bot interface.
func (bot *Chaser) Tick(now int64) {
	if bot.quit {
		return
	}

	switch bot.game.Phase() {
	case match.MainMenu, match.PlayAgainMenu:
		bot.menu()
	case match.Playing:
		bot.play(now)
	default:
		bot.press(false)
	}
}

func (bot *Chaser) diagnostic(group string, detail string, args ...any) {
	select {
	case bot.feedback.Diagnostic <- bots.Diagnostic{Group: group, Diagnostic: fmt.Sprintf(detail, args...)}:
	default:
	}
}

func (bot *Chaser) press(down bool) {
	if down != bot.pressed {
		bot.input.Press(bot.player, down)
		bot.pressed = down
	}
}

func (bot *Chaser) want() menu.Option {
	if bot.Matches > 0 && len(bot.game.Results()) >= bot.Matches {
		return menu.No
	}
	return menu.Yes
}

func (bot *Chaser) menu() {
	sel := bot.game.Menu().Players[bot.player]

	// a press is always released before anything else happens
	if bot.pressed || sel.Locked {
		bot.press(false)
		return
	}

	// wait for an earlier rotation to finish
	if bot.input.Pending(bot.player) > 0 {
		return
	}

	want := bot.want()
	if sel.Option != want {
		bot.input.Rotate(bot.player, true)
		return
	}

	bot.diagnostic("menu", "selecting %s", want)
	bot.press(true)
}

// nearest returns the active coin closest to the bot's ball.
func (bot *Chaser) nearest(w *simulation.World) (entities.Coin, bool) {
	ball := w.Balls[bot.player]

	var nearest entities.Coin
	var found bool
	var dist float64

	for _, c := range w.Coins.Slots {
		if !c.Active {
			continue
		}
		d := ball.Distance(c.X, c.Y)
		if !found || d < dist {
			nearest = c
			dist = d
			found = true
		}
	}

	return nearest, found
}

func (bot *Chaser) play(now int64) {
	w := bot.game.World()
	spec := w.Spec()
	ball := w.Balls[bot.player]

	target, ok := bot.nearest(w)
	if !ok {
		// wait in the middle of the screen on the ground
		target = entities.Coin{X: spec.ScreenWidth / 2, Y: spec.MaxY}
	} else if target != bot.target {
		bot.diagnostic("play", "chasing coin at (%d,%d)", target.X, target.Y)
	}
	bot.target = target

	// holding the button lifts the ball
	bot.press(target.Y < ball.Y)

	if bot.input.Pending(bot.player) > 0 {
		return
	}

	dx := target.X - ball.X
	adx := dx
	if adx < 0 {
		adx = -adx
	}

	if adx < spec.BaseSpeed {
		return
	}

	// slow down when close
	if adx < spec.MaxMovement && now-bot.lastRotate < fineInterval {
		return
	}

	bot.input.Rotate(bot.player, dx > 0)
	bot.lastRotate = now
}
