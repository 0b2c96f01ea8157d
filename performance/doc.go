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

// Package performance contains helper functions for measuring the speed of
// the game loop.
//
// RunProfiler() runs a function with CPU profiling and writes a heap profile
// when the function has returned. It is used by the headless mode of the
// program.
//
// Rate() calculates the number of game loop iterations per second from a
// count and a duration.
package performance
