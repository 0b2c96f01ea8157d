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

package headless_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/headless"
	"github.com/jetsetilly/hungryballs/test"
)

func testSpec() *specification.Spec {
	spec := specification.Default
	spec.PollInterval = 10
	return &spec
}

func TestNoMatches(t *testing.T) {
	_, err := headless.Run(headless.Options{Spec: testSpec(), Seed: 1})
	test.ExpectFailure(t, err)
}

func TestRun(t *testing.T) {
	sum, err := headless.Run(headless.Options{Spec: testSpec(), Matches: 1, Seed: 1})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(sum.Results), 1)
	test.ExpectSuccess(t, sum.Iterations > 0)
	test.ExpectSuccess(t, sum.Simulated >= 60000)
	test.ExpectSuccess(t, sum.VideoFrames > 0)
	test.ExpectSuccess(t, sum.AudioTones > 0)

	w := &test.Writer{}
	sum.Write(w, true)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "match 1: "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "video: "+sum.VideoHash))
}

func TestDeterminism(t *testing.T) {
	a, err := headless.Run(headless.Options{Spec: testSpec(), Matches: 1, Seed: 42})
	test.DemandSuccess(t, err)
	b, err := headless.Run(headless.Options{Spec: testSpec(), Matches: 1, Seed: 42})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, a.Results[0].Scores, b.Results[0].Scores)
	test.ExpectEquality(t, a.Iterations, b.Iterations)
	test.ExpectEquality(t, a.VideoHash, b.VideoHash)
	test.ExpectEquality(t, a.AudioHash, b.AudioHash)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	wav := filepath.Join(dir, "match.wav")
	viz := filepath.Join(dir, "world.dot")

	_, err := headless.Run(headless.Options{Spec: testSpec(), Matches: 1, Seed: 1, Wav: wav, MemViz: viz})
	test.DemandSuccess(t, err)

	for _, fn := range []string{wav, viz} {
		st, err := os.Stat(fn)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, st.Size() > 0)
	}
}
