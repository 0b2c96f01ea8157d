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

package buzzer

// SampleRate is the rate at which tones are synthesised by Square().
const SampleRate = 22050

// Amplitude of the square wave produced by Square(). The value is a signed 16
// bit sample value.
const Amplitude = 8000

// Square synthesises a square wave tone of the frequency (in Hz) and duration
// (in milliseconds). Samples are signed 16 bit values at SampleRate.
//
// A frequency of zero or less produces silence of the requested duration.
func Square(frequency int, duration int) []int {
	if duration <= 0 {
		return []int{}
	}

	n := duration * SampleRate / 1000
	s := make([]int, n)
	if frequency <= 0 {
		return s
	}

	for i := range s {
		// each half period is SampleRate/(frequency*2) samples long
		if (i*frequency*2/SampleRate)%2 == 0 {
			s[i] = Amplitude
		} else {
			s[i] = -Amplitude
		}
	}

	return s
}
