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

// Package menu implements the YES/NO prompt that both players answer before a
// match starts and again after a match has finished.
//
// Each player navigates independently. Rotating the encoder toggles between
// YES and NO and pressing the button locks the current choice. A locked choice
// can not be changed until the menu is Reset(). Once both players have locked
// their choice the Outcome() of the menu is decided.
package menu

import (
	"fmt"

	"github.com/jetsetilly/hungryballs/game/specification"
)

// Option is one of the two answers to the prompt.
type Option int

// List of valid Option values.
const (
	Yes Option = iota
	No
)

func (o Option) String() string {
	if o == No {
		return "NO"
	}
	return "YES"
}

// Selection is the state of a single player's answer.
type Selection struct {
	Option Option
	Locked bool
}

func (s Selection) String() string {
	if s.Locked {
		return fmt.Sprintf("%s (locked)", s.Option)
	}
	return s.Option.String()
}

// Outcome of the menu.
type Outcome int

// List of valid Outcome values.
const (
	// at least one player has not yet locked their choice
	Pending Outcome = iota

	// both players locked YES
	Accepted

	// both players locked NO
	Declined

	// both players locked but their choices differ
	Split
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Declined:
		return "declined"
	case Split:
		return "split"
	}
	return "pending"
}

// Menu is the state of both players' answers.
type Menu struct {
	Players [specification.NumPlayers]Selection
}

// NewMenu is the preferred method of initialisation for the Menu type.
func NewMenu() *Menu {
	m := &Menu{}
	m.Reset()
	return m
}

// Reset both players to YES and unlock them.
func (m *Menu) Reset() {
	for i := range m.Players {
		m.Players[i] = Selection{Option: Yes}
	}
}

// Rotate toggles the player's choice. Returns false if the player has already
// locked their choice and nothing was changed.
//
// The direction of rotation doesn't matter because there are only two
// options.
func (m *Menu) Rotate(player int) bool {
	s := &m.Players[player]
	if s.Locked {
		return false
	}
	if s.Option == Yes {
		s.Option = No
	} else {
		s.Option = Yes
	}
	return true
}

// Press locks the player's current choice. Returns false if the player had
// already locked their choice.
func (m *Menu) Press(player int) bool {
	s := &m.Players[player]
	if s.Locked {
		return false
	}
	s.Locked = true
	return true
}

// Outcome of the menu.
func (m *Menu) Outcome() Outcome {
	for _, s := range m.Players {
		if !s.Locked {
			return Pending
		}
	}

	yes := 0
	for _, s := range m.Players {
		if s.Option == Yes {
			yes++
		}
	}

	switch yes {
	case len(m.Players):
		return Accepted
	case 0:
		return Declined
	}
	return Split
}

func (m *Menu) String() string {
	return fmt.Sprintf("P1: %s, P2: %s", m.Players[0], m.Players[1])
}
