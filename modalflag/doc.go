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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes to the command line, each with its own set of
// flags, and allows flag values to be taken from the environment.
//
// Arguments are given to NewArgs() and then parsed in layers. Each layer
// declares its flags and its sub-modes and then calls Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("PLAY", "play in a window")
//	md.AddSubMode("HEADLESS", "let the bots play")
//	p, err := md.Parse()
//
// The first sub-mode is the default. After a successful Parse(), Mode() is the
// sub-mode that was selected and the next layer can be started with NewMode():
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		matches := md.AddInt("matches", 1, "number of matches to play")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode comparisons are case insensitive. Mode names are always reported
// in upper case.
//
// If the EnvPrefix field is set then any flag not given on the command line
// takes its value from the environment variable made of the prefix and the
// upper-cased flag name, with dashes replaced by underscores. For example, with
// a prefix of "HUNGRYBALLS_" the "seed" flag can be set with HUNGRYBALLS_SEED.
package modalflag
