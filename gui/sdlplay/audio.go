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

package sdlplay

import (
	"encoding/binary"

	"github.com/jetsetilly/hungryballs/hardware/buzzer"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the audio device's buffer. short so that a tone
// sounds as soon as possible after it is requested
const bufferLength = 256

// Sound implements the buzzer.Buzzer interface using the SDL audio queue.
type Sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// NewSound is the preferred method of initialisation for the Sound type.
// SDL must have been initialised with INIT_AUDIO.
func NewSound() (*Sound, error) {
	snd := &Sound{}

	spec := &sdl.AudioSpec{
		Freq:     buzzer.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// Tone implements the buzzer.Buzzer interface. A tone that is still sounding
// is cut short by the new tone.
func (snd *Sound) Tone(frequency int, duration int) {
	samples := buzzer.Square(frequency, duration)
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(s)))
	}

	sdl.ClearQueuedAudio(snd.id)
	_ = sdl.QueueAudio(snd.id, data)
}

func (snd *Sound) close() {
	sdl.ClearQueuedAudio(snd.id)
	sdl.CloseAudioDevice(snd.id)
}
