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

package userinput

// action is what happens when a key is pressed.
type action int

const (
	actionNone action = iota
	actionClockwise
	actionCounterClockwise
	actionButton
	actionQuit
)

type binding struct {
	player int
	action action
}

// keys maps key names to the player and action.
var keys = map[string]binding{
	// player 1
	"A": {player: 0, action: actionCounterClockwise},
	"D": {player: 0, action: actionClockwise},
	"S": {player: 0, action: actionButton},

	// player 2
	"J":     {player: 1, action: actionCounterClockwise},
	"L":     {player: 1, action: actionClockwise},
	"K":     {player: 1, action: actionButton},
	"Left":  {player: 1, action: actionCounterClockwise},
	"Right": {player: 1, action: actionClockwise},
	"Down":  {player: 1, action: actionButton},

	"Escape": {action: actionQuit},
}

// Binding returns the player and a short description of the action for the
// named key. The player is -1 if the key has no player. The ok value is false
// if the key is not bound to anything.
func Binding(key string) (player int, desc string, ok bool) {
	b, ok := keys[key]
	if !ok {
		return -1, "", false
	}

	switch b.action {
	case actionClockwise:
		return b.player, "clockwise", true
	case actionCounterClockwise:
		return b.player, "counter-clockwise", true
	case actionButton:
		return b.player, "button", true
	case actionQuit:
		return -1, "quit", true
	}

	return -1, "", false
}
