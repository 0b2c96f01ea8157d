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

package render_test

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/hardware/display/framebuffer"
)

// recorder forwards every drawing operation to a framebuffer and keeps a
// list of the operations
type recorder struct {
	*framebuffer.Framebuffer
	ops []string
}

func newRecorder() *recorder {
	return &recorder{Framebuffer: framebuffer.NewFramebuffer()}
}

func (r *recorder) record(op string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(op, args...))
}

func (r *recorder) reset() {
	r.ops = r.ops[:0]
}

// number of operations beginning with the prefix
func (r *recorder) count(prefix string) int {
	var n int
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) Begin() {
	r.record("Begin")
	r.Framebuffer.Begin()
}

func (r *recorder) SetOrientation(o display.Orientation) {
	r.record("SetOrientation %s", o)
	r.Framebuffer.SetOrientation(o)
}

func (r *recorder) SetBacklight(b uint8) {
	r.record("SetBacklight %d", b)
	r.Framebuffer.SetBacklight(b)
}

func (r *recorder) SetBackgroundColor(col display.Color) {
	r.record("SetBackgroundColor %s", col)
	r.Framebuffer.SetBackgroundColor(col)
}

func (r *recorder) Clear() {
	r.record("Clear")
	r.Framebuffer.Clear()
}

func (r *recorder) DrawText(x, y int, text string, col display.Color) {
	r.record("DrawText %d %d %q %s", x, y, text, col)
	r.Framebuffer.DrawText(x, y, text, col)
}

func (r *recorder) DrawRectangle(x1, y1, x2, y2 int, col display.Color) {
	r.record("DrawRectangle %d %d %d %d %s", x1, y1, x2, y2, col)
	r.Framebuffer.DrawRectangle(x1, y1, x2, y2, col)
}

func (r *recorder) FillRectangle(x1, y1, x2, y2 int, col display.Color) {
	r.record("FillRectangle %d %d %d %d %s", x1, y1, x2, y2, col)
	r.Framebuffer.FillRectangle(x1, y1, x2, y2, col)
}

func (r *recorder) DrawCircle(x, y, rad int, col display.Color) {
	r.record("DrawCircle %d %d %d %s", x, y, rad, col)
	r.Framebuffer.DrawCircle(x, y, rad, col)
}

func (r *recorder) FillCircle(x, y, rad int, col display.Color) {
	r.record("FillCircle %d %d %d %s", x, y, rad, col)
	r.Framebuffer.FillCircle(x, y, rad, col)
}

func (r *recorder) DrawLine(x1, y1, x2, y2 int, col display.Color) {
	r.record("DrawLine %d %d %d %d %s", x1, y1, x2, y2, col)
	r.Framebuffer.DrawLine(x1, y1, x2, y2, col)
}

func (r *recorder) SetFont(f display.Font) {
	r.record("SetFont %s", f)
	r.Framebuffer.SetFont(f)
}
