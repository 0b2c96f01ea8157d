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

// Package encoder decodes the two rotary encoders and their push buttons.
//
// Each call to Decoder.Poll() samples the CLK, DT and button lines of both
// encoders once. A change on either quadrature line is an edge and moves the
// encoder's Count by exactly one: up for clockwise and down for
// counter-clockwise. Only the change in Count between two observations means
// anything; the absolute value is arbitrary.
//
// The time between edges gives a speed multiplier. Quickly turning the
// encoder makes the ball move further for each edge.
//
// There is no debouncing. A bouncing contact produces extra edges, and that is
// accepted.
package encoder
