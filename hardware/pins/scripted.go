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

package pins

// Scripted is an implementation of the IO interface for testing purposes. Pin
// levels are set directly with Set() and every call to Configure() is
// recorded.
//
// Unset pins read High, which matches an idle encoder and a released button.
type Scripted struct {
	levels     map[Pin]Level
	Configured map[Pin]Mode
}

// NewScripted is the preferred method of initialisation for the Scripted type.
func NewScripted() *Scripted {
	return &Scripted{
		levels:     make(map[Pin]Level),
		Configured: make(map[Pin]Mode),
	}
}

// Configure implements the IO interface.
func (s *Scripted) Configure(pin Pin, mode Mode) {
	s.Configured[pin] = mode
}

// Read implements the IO interface.
func (s *Scripted) Read(pin Pin) Level {
	if l, ok := s.levels[pin]; ok {
		return l
	}
	return High
}

// Set the level of a pin.
func (s *Scripted) Set(pin Pin, level Level) {
	s.levels[pin] = level
}
