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

package termplay

import (
	"strings"
	"unicode"

	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/gui"
)

const esc = 0x1b

// cursor key sequences
var cursorKeys = map[byte]string{
	'A': "Up",
	'B': "Down",
	'C': "Right",
	'D': "Left",
}

// ParseKeys turns bytes read from the terminal into key names, using the same
// names as SDL.
func ParseKeys(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		c := b[i]

		if c == esc {
			// ESC [ x is a cursor key. a lone ESC is the escape key
			if i+2 < len(b) && b[i+1] == '[' {
				if k, ok := cursorKeys[b[i+2]]; ok {
					keys = append(keys, k)
				}
				i += 2
				continue
			}
			keys = append(keys, "Escape")
			continue
		}

		switch {
		case c == ' ':
			keys = append(keys, "Space")
		case c < 0x80 && unicode.IsLetter(rune(c)):
			keys = append(keys, strings.ToUpper(string(rune(c))))
		case c < 0x80 && unicode.IsDigit(rune(c)):
			keys = append(keys, string(rune(c)))
		}
	}

	return keys
}

// SetFeature implements the gui.GUI interface. Only the ReqSetTitle request
// is supported.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if request == gui.ReqSetTitle && len(args) == 1 {
		if s, ok := args[0].(string); ok {
			tp.crit.Lock()
			defer tp.crit.Unlock()
			tp.title = s
			return nil
		}
	}
	return curated.Errorf(gui.UnsupportedGuiFeature, request)
}
