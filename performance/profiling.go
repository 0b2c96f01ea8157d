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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/hungryballs/curated"
)

// Profile selects the profiles to generate.
type Profile struct {
	// filenames of the profiles. an empty filename means the profile will not
	// be generated
	CPU string
	Mem string
}

// RunProfiler runs the function with the requested profiles.
func RunProfiler(profile Profile, run func() error) error {
	if profile.CPU != "" {
		f, err := os.Create(profile.CPU)
		if err != nil {
			return curated.Errorf(curated.Performance, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(curated.Performance, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	return memProfile(profile.Mem)
}

func memProfile(outFile string) error {
	if outFile == "" {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(curated.Performance, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(curated.Performance, err)
	}

	return nil
}
