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

// Package termplay presents the game on a colour terminal. Each character
// cell shows two display pixels with the upper half block character, the
// foreground colour being the upper pixel and the background colour the lower
// pixel.
//
// Terminals do not report key releases. A button key is held for a short time
// after it is pressed and for as long as the key repeats.
package termplay

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/logger"
	"github.com/jetsetilly/hungryballs/performance/limiter"
	"github.com/jetsetilly/hungryballs/userinput"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// the rate at which the terminal is redrawn
const framesPerSecond = 20

// how long a button stays down after a key press or key repeat
const holdTime = 300 * time.Millisecond

// ANSI sequences
const (
	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\x1b[K"
)

// TermPlay presents the game on the terminal.
type TermPlay struct {
	fb    Framebuffer
	board userinput.HandleInput

	controllers userinput.Controllers
	onQuit      func()

	tty    *term.Term
	output io.Writer
	keys   chan []byte

	// closed by Destroy() to stop the key reader
	done chan struct{}

	lmtr *limiter.FpsLimiter

	// the number of columns used to draw the display
	width int

	// time at which a held button will be released
	release [2]time.Time

	// title is set by SetFeature() from any goroutine
	crit  sync.Mutex
	title string

	generation int
	frame      bytes.Buffer
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The width is the number of terminal columns to use. A width of zero
// fits the display to the terminal.
func NewTermPlay(fb Framebuffer, board userinput.HandleInput, width int, onQuit func()) (*TermPlay, error) {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return nil, curated.Errorf(curated.Terminal, "standard output is not a terminal")
	}

	tp := &TermPlay{
		fb:         fb,
		board:      board,
		onQuit:     onQuit,
		output:     os.Stdout,
		keys:       make(chan []byte, 16),
		done:       make(chan struct{}),
		width:      width,
		generation: -1,
	}

	if tp.width <= 0 {
		tp.width = fitWidth()
	}

	var err error

	tp.tty, err = term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(curated.Terminal, err)
	}

	tp.lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		_ = tp.tty.Restore()
		_ = tp.tty.Close()
		return nil, curated.Errorf(curated.Terminal, err)
	}

	// read keys from the terminal. the goroutine ends when the terminal is
	// closed or when TermPlay is destroyed
	go ReadKeys(tp.tty, tp.keys, tp.done)

	fmt.Fprint(tp.output, clearAll, hideCursor)

	logger.Logf(logger.Allow, "termplay", "display is %d columns wide", tp.width)

	return tp, nil
}

// fitWidth returns the largest width that fits the display in the terminal.
func fitWidth() int {
	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return display.Width / 2
	}

	// one row is needed for the title
	rows--

	w := min(cols, display.Width)
	for w > 1 && Rows(w) > rows {
		w--
	}
	return w
}

// Destroy implements the GuiCreator interface.
func (tp *TermPlay) Destroy(output io.Writer) {
	tp.lmtr.Stop()
	close(tp.done)

	fmt.Fprint(tp.output, "\x1b[0m", showCursor, "\r\n")

	err := tp.tty.Restore()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = tp.tty.Close()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// ReadKeys reads from the terminal and sends each chunk of key presses to the
// keys channel. It returns when a read fails or when the done channel is
// closed. Reading never blocks a sender once done is closed.
func ReadKeys(r io.Reader, keys chan<- []byte, done <-chan struct{}) {
	for {
		b := make([]byte, 16)
		n, err := r.Read(b)
		if err != nil {
			return
		}
		select {
		case keys <- b[:n]:
		case <-done:
			return
		}
	}
}

// handle keys from the terminal.
func (tp *TermPlay) handle(b []byte) {
	now := time.Now()

	for _, k := range ParseKeys(b) {
		player, desc, ok := userinput.Binding(k)
		if !ok {
			continue
		}

		if desc == "button" {
			if tp.release[player].IsZero() {
				tp.controllers.HandleUserInput(userinput.EventKeyboard{Key: k, Down: true}, tp.board)
			}
			tp.release[player] = now.Add(holdTime)
			continue
		}

		tp.controllers.HandleUserInput(userinput.EventKeyboard{Key: k, Down: true}, tp.board)
		if tp.controllers.Quit && tp.onQuit != nil {
			tp.onQuit()
		}
	}
}

// release buttons that have not been repeated in time.
func (tp *TermPlay) releaseButtons() {
	now := time.Now()
	for i := range tp.release {
		if !tp.release[i].IsZero() && now.After(tp.release[i]) {
			tp.board.Press(i, false)
			tp.release[i] = time.Time{}
		}
	}
}

// Service implements the GuiCreator interface.
func (tp *TermPlay) Service() {
	for done := false; !done; {
		select {
		case b := <-tp.keys:
			tp.handle(b)
		default:
			done = true
		}
	}
	tp.releaseButtons()

	tp.lmtr.Wait()

	gen := tp.fb.Generation()
	if gen == tp.generation {
		return
	}
	tp.generation = gen

	tp.frame.Reset()
	tp.frame.WriteString(cursorHome)
	err := Render(&tp.frame, tp.fb.Image(), tp.width, tp.fb.Backlight())
	if err != nil {
		logger.Logf(logger.Allow, "termplay", "render: %v", err)
		return
	}
	tp.crit.Lock()
	tp.frame.WriteString(tp.title)
	tp.crit.Unlock()
	tp.frame.WriteString(clearLine)

	_, err = tp.output.Write(tp.frame.Bytes())
	if err != nil {
		logger.Logf(logger.Allow, "termplay", "output: %v", err)
	}
}
