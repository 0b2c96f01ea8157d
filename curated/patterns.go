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

package curated

// error patterns used by the host programs.
const (
	SDL           = "sdl: %v"
	Terminal      = "terminal: %v"
	WavWriter     = "wavwriter: %v"
	CommandLine   = "command line: %v"
	UnknownMode   = "unknown mode: %s"
	Limiter       = "limiter: %v"
	MemViz        = "memviz: %v"
	Performance   = "performance: %v"
	Headless      = "headless: %v"
	UserInterrupt = "user interrupt"
)
