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

// Package userinput handles input from the keyboard (and mouse) of the
// computer running one of the host programs and turns it into encoder
// rotations and button presses.
//
// It can be thought of as a translation layer between the GUI implementation
// and the virtual board. As such, this package attempts to hide details of the
// GUI implementation from the board and the board from the GUI.
//
// The keys are:
//
//	Player 1:  A and D rotate the encoder, S is the button
//	Player 2:  J and L rotate the encoder, K is the button
//
// The cursor keys are an alternative for player 2, with the down cursor as the
// button. The mouse wheel and left mouse button are an alternative for player
// 1. Escape quits the program.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput
