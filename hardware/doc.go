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

// Package hardware is the base package for the parts of the console that sit
// outside the game logic. Each sub-package stands in for one component of
// the physical device:
//
//	buzzer    the piezo buzzer
//	clock     the millisecond timer
//	display   the 176x220 TFT and its framebuffer emulation
//	encoder   the decoding of the rotary encoders and their push buttons
//	pins      the digital pins, with a virtual board for the host programs
//
// The game packages only ever see the interfaces defined here, so the same
// game loop runs against the virtual board on a desktop and against a
// simulated clock in tests and in the headless mode.
package hardware
