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

// Package version reports the name and build of the program.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used for the window title and in the help message.
const ApplicationName = "Hungry Balls"

// number is set with the linker when making a release:
//
//	go build -ldflags "-X github.com/jetsetilly/hungryballs/version.number=v1.0.0"
var number string

// Build describes how the program was built.
type Build struct {
	// the release number. "unreleased" if built from a repository without a
	// release number and "local" if there is no build information at all
	Number string

	// the vcs revision. suffixed with "+dirty" if the source had been
	// modified
	Revision string
}

func (b Build) String() string {
	if b.Revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, b.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, b.Number, b.Revision)
}

// Release returns true if the build has a release number.
func (b Build) Release() bool {
	return number != "" && b.Number == number
}

// Current returns the Build of the running program.
func Current() Build {
	info, ok := debug.ReadBuildInfo()
	return fromSettings(info, ok)
}

func fromSettings(info *debug.BuildInfo, ok bool) Build {
	var b Build
	var vcs bool
	var modified bool

	if ok && info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified && b.Revision != "" {
		b.Revision += "+dirty"
	}

	switch {
	case number != "":
		b.Number = number
	case vcs:
		b.Number = "unreleased"
	default:
		b.Number = "local"
	}

	return b
}
