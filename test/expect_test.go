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

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/hungryballs/test"
)

func TestSuccessValues(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, fmt.Errorf("test error"))
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "hungry", "hungry")
	test.ExpectInequality(t, 10, 11)
	test.DemandEquality(t, int64(-1), -1)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	fmt.Fprintf(tw, "P1: %d", 5)
	test.ExpectSuccess(t, tw.Compare("P1: 5"))
	test.ExpectEquality(t, tw.String(), "P1: 5")
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
