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

// Package wavwriter allows writing of the buzzer's tones to disk as a WAV
// file. Note that audio data is buffered in memory in its entirity, and written
// to disk when the WavWriter is closed. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/hardware/buzzer"
	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/logger"
)

const bitDepth = 16

// WavWriter implements the buzzer.Buzzer interface. Tones are placed in the
// recording according to the time on the clock when they were requested.
type WavWriter struct {
	filename string
	clk      clock.Clock

	// time of the first tone. the recording starts at this point
	start   int64
	started bool

	buffer []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, clk clock.Clock) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(curated.WavWriter, "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		clk:      clk,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// Tone implements the buzzer.Buzzer interface.
func (aw *WavWriter) Tone(frequency int, duration int) {
	now := aw.clk.Now()
	if !aw.started {
		aw.start = now
		aw.started = true
	}

	pos := int((now - aw.start) * buzzer.SampleRate / 1000)

	// a new tone cuts short any tone still sounding. otherwise the gap since
	// the end of the previous tone is silence
	if pos < len(aw.buffer) {
		aw.buffer = aw.buffer[:pos]
	} else {
		aw.buffer = append(aw.buffer, make([]int, pos-len(aw.buffer))...)
	}

	aw.buffer = append(aw.buffer, buzzer.Square(frequency, duration)...)
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(curated.WavWriter, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(curated.WavWriter, err)
		}
	}()

	enc := wav.NewEncoder(f, buzzer.SampleRate, bitDepth, 1, 1)
	if enc == nil {
		return curated.Errorf(curated.WavWriter, "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  buzzer.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(curated.WavWriter, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(curated.WavWriter, err)
	}

	return nil
}
