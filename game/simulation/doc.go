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

// Package simulation advances the state of a match by one tick. There is no
// fixed timestep. The game loop calls Step() as often as it can and the
// current time decides the match timer and when coins appear.
//
// Every tick happens in the same order:
//
//  1. the match timer is updated. a finished match stops here
//  2. balls are moved horizontally by any change in the encoder counts
//  3. balls rise while the button is held and fall while it is released
//  4. a coin is spawned if enough time has passed since the last coin
//  5. balls that touch a coin eat it
//
// When both balls touch the same coin in the same tick, player 1 is checked
// first and eats the coin.
package simulation
