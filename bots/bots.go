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

// Package bots is the root package for the bot subsystem. Bots play the game
// in place of a human player. They are used by the headless mode and can be
// added to either side of a game in the windowed and terminal modes.
//
// Bots watch the game through the Game interface. They issue input through
// the Input interface, which is satisfied by the virtual board, so a bot turns
// encoders and presses buttons in exactly the same way as a player would.
package bots

import (
	"github.com/jetsetilly/hungryballs/game/match"
	"github.com/jetsetilly/hungryballs/game/menu"
	"github.com/jetsetilly/hungryballs/game/simulation"
	"github.com/jetsetilly/hungryballs/logger"
)

// Game defines the game functions required by a bot.
type Game interface {
	Phase() match.Phase
	World() *simulation.World
	Menu() *menu.Menu
	Results() []match.Result
}

// Input defines the input functions required by a bot.
type Input interface {
	Rotate(player int, clockwise bool)
	Press(player int, down bool)

	// number of rotation steps still to be made by the player's encoder
	Pending(player int) int
}

// Diagnostic instances are sent over the Feedback Diagnostic channel.
type Diagnostic struct {
	Group      string
	Diagnostic string
}

// Feedback defines the channels that can be used to retrieve information from
// a running bot.
type Feedback struct {
	// buffer length of the Diagnostic channel should be sufficiently long
	// for the bot. diagnostics are dropped if the channel is full
	Diagnostic chan Diagnostic
}

// Bot defines the functions the all bots must implement.
type Bot interface {
	BotID() string

	// Tick is called once per iteration of the game loop, before the
	// iteration. The time is in milliseconds
	Tick(now int64)

	Feedback() *Feedback
	Quit()
}

// Team is a list of bots that are ticked together.
type Team []Bot

// Tick all bots in the team.
func (tm Team) Tick(now int64) {
	for _, b := range tm {
		b.Tick(now)
	}
}

// Quit all bots in the team.
func (tm Team) Quit() {
	for _, b := range tm {
		b.Quit()
	}
}

// Diagnostics moves any waiting diagnostics from the bots to the log.
func (tm Team) Diagnostics() {
	for _, b := range tm {
		fb := b.Feedback()
		if fb == nil {
			continue
		}
		for done := false; !done; {
			select {
			case d := <-fb.Diagnostic:
				logger.Logf(logger.Allow, b.BotID(), "%s: %s", d.Group, d.Diagnostic)
			default:
				done = true
			}
		}
	}
}
