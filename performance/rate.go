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
	"fmt"
	"time"
)

// Rate of iterations per second.
type Rate float64

// CalcRate returns the number of iterations per second.
func CalcRate(iterations int, duration time.Duration) Rate {
	if duration <= 0 {
		return 0
	}
	return Rate(float64(iterations) / duration.Seconds())
}

func (r Rate) String() string {
	return fmt.Sprintf("%.0f iterations/sec", float64(r))
}
