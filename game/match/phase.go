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

package match

// Phase of the game.
type Phase int

// List of valid Phase values.
const (
	PowerOff Phase = iota
	MainMenu
	Starting
	Playing
	Results
	PlayAgainMenu
)

func (p Phase) String() string {
	switch p {
	case PowerOff:
		return "power off"
	case MainMenu:
		return "main menu"
	case Starting:
		return "starting"
	case Playing:
		return "playing"
	case Results:
		return "results"
	case PlayAgainMenu:
		return "play again menu"
	}
	return "unknown phase"
}
