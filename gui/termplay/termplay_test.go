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

package termplay_test

import (
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/hungryballs/gui/termplay"
	"github.com/jetsetilly/hungryballs/test"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// top half red and bottom half blue
func twoTone() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if y < 2 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return img
}

func TestRender(t *testing.T) {
	tw := &test.Writer{}
	test.DemandSuccess(t, termplay.Render(tw, twoTone(), 4, 255))

	expected := "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m▀▀▀▀\x1b[0m\r\n" +
		"\x1b[38;2;0;0;255m\x1b[48;2;0;0;255m▀▀▀▀\x1b[0m\r\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestRenderScaled(t *testing.T) {
	tw := &test.Writer{}
	test.DemandSuccess(t, termplay.Render(tw, twoTone(), 2, 255))
	test.ExpectEquality(t, tw.String(), "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀▀\x1b[0m\r\n")
}

func TestRenderBacklight(t *testing.T) {
	tw := &test.Writer{}
	test.DemandSuccess(t, termplay.Render(tw, twoTone(), 2, 0))
	test.ExpectEquality(t, tw.String(), "\x1b[38;2;0;0;0m\x1b[48;2;0;0;0m▀▀\x1b[0m\r\n")

	tw.Clear()
	test.DemandSuccess(t, termplay.Render(tw, twoTone(), 2, 128))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "\x1b[38;2;128;0;0m"))
}

func TestRenderBadWidth(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectFailure(t, termplay.Render(tw, twoTone(), 0, 255))
}

func TestRows(t *testing.T) {
	test.ExpectEquality(t, termplay.Rows(176), 110)
	test.ExpectEquality(t, termplay.Rows(88), 55)
	test.ExpectEquality(t, termplay.Rows(80), 50)
}

func TestParseKeys(t *testing.T) {
	keys := termplay.ParseKeys([]byte("aD s\x1b[D\x1b[C\x1b1"))
	test.ExpectEquality(t, strings.Join(keys, ","), "A,D,Space,S,Left,Right,Escape,1")

	test.ExpectEquality(t, len(termplay.ParseKeys([]byte{0x1b, '[', 'Z'})), 0)
	test.ExpectEquality(t, len(termplay.ParseKeys([]byte{'\n', 0x7f})), 0)
}

// endless returns the same key for every read.
type endless struct{}

func (endless) Read(b []byte) (int, error) {
	b[0] = 'a'
	return 1, nil
}

func TestReadKeys(t *testing.T) {
	keys := make(chan []byte, 1)
	done := make(chan struct{})

	finished := make(chan struct{})
	go func() {
		termplay.ReadKeys(strings.NewReader("ad"), keys, done)
		close(finished)
	}()

	test.ExpectEquality(t, string(<-keys), "ad")

	// the reader returns io.EOF once the string is consumed
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("key reader did not end after %v", io.EOF)
	}
}

func TestReadKeysDone(t *testing.T) {
	// nothing drains the keys channel
	keys := make(chan []byte)
	done := make(chan struct{})

	finished := make(chan struct{})
	go func() {
		termplay.ReadKeys(endless{}, keys, done)
		close(finished)
	}()

	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("key reader blocked after done was closed")
	}
}
