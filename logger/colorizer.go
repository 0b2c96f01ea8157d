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

package logger

import (
	"io"
	"strings"
)

const (
	tagPen    = "\033[2;36m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// every line is printed in a dim pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		var s string
		if tag, detail, ok := strings.Cut(l, ": "); ok {
			s = tagPen + tag + ":" + normalPen + " " + detail + "\r\n"
		} else {
			s = l + "\r\n"
		}

		m, err := io.WriteString(c.out, s)
		n += m
		if err != nil {
			return n, err
		}
	}

	// report the number of bytes consumed from p rather than the number of
	// bytes written, which includes the pens
	return len(p), nil
}
