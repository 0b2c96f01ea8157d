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

// Package match ties the game together. The Controller owns the input
// decoder, the menu, the simulation and the renderers and moves the game
// through its phases:
//
//	MainMenu -> Starting -> Playing -> Results -> PlayAgainMenu
//
// From PlayAgainMenu the game either goes back to Starting for a rematch or
// returns to the MainMenu. If both players decline to play from the MainMenu
// a farewell message is shown and the MainMenu is presented again.
//
// The Controller is driven by calling Iterate() repeatedly. Each iteration
// polls the inputs, advances the current phase and draws the result. Scripted
// screens (the splash screens, "Game Starts", the results and the farewell)
// block for their dwell time inside the iteration that plays them.
//
// The Controller is not safe for concurrent use. Host programs that run the
// game loop in its own goroutine should communicate with the game through the
// pins.IO and display.Display implementations.
package match
