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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter formats the help message for one layer of arguments.
type helpWriter struct {
	banner         string
	flags          string
	subModes       []SubMode
	additionalHelp string
}

func (hw helpWriter) write(output io.Writer) {
	if hw.flags == "" && len(hw.subModes) == 0 {
		if hw.banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", hw.banner)
		}
		return
	}

	if hw.banner == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", hw.banner)
	}

	if hw.flags != "" {
		fmt.Fprint(output, hw.flags)
	}

	if len(hw.subModes) > 0 {
		if hw.flags != "" {
			fmt.Fprintln(output)
		}

		w := 0
		for _, s := range hw.subModes {
			w = max(w, len(s.Name))
		}

		fmt.Fprintln(output, "  sub-modes:")
		for i, s := range hw.subModes {
			h := s.Help
			if i == 0 {
				h = strings.TrimSpace(h + " (default)")
			}
			if h == "" {
				fmt.Fprintf(output, "    %s\n", s.Name)
			} else {
				fmt.Fprintf(output, "    %-*s  %s\n", w, s.Name, h)
			}
		}
	}

	if hw.additionalHelp != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, hw.additionalHelp)
	}
}
