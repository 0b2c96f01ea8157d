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

package headless

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/hungryballs/bots"
	"github.com/jetsetilly/hungryballs/bots/chaser"
	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/digest"
	"github.com/jetsetilly/hungryballs/game/match"
	"github.com/jetsetilly/hungryballs/game/render"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/hardware/buzzer"
	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/hardware/display/framebuffer"
	"github.com/jetsetilly/hungryballs/hardware/pins"
	"github.com/jetsetilly/hungryballs/hardware/pins/virtual"
	"github.com/jetsetilly/hungryballs/logger"
	"github.com/jetsetilly/hungryballs/performance"
	"github.com/jetsetilly/hungryballs/random"
	"github.com/jetsetilly/hungryballs/wavwriter"
)

// Pacing is the minimum number of milliseconds between the encoder steps
// made by a bot. It is long enough for every step to be taken at the base
// speed.
const Pacing = 101

// the video digest samples the display at this interval of simulated time
const digestInterval = 100

// Options for a headless run.
type Options struct {
	// the game specification. the default specification is used if nil
	Spec *specification.Spec

	// number of matches to play. must be at least one
	Matches int

	// seed for the random number generator. a value of zero means the
	// generator is seeded from the system clock
	Seed int64

	// the filename of a WAV file to record the buzzer to. may be empty
	Wav string

	// the filename to write a memviz graph of the final state of the game
	// to. may be empty
	MemViz string

	Profile performance.Profile
}

// Summary of a headless run.
type Summary struct {
	Results []match.Result

	// number of game loop iterations and the time, in real terms, that they
	// took
	Iterations int
	Duration   time.Duration

	// the simulated time at the end of the run, in milliseconds
	Simulated int64

	VideoFrames int
	VideoHash   string
	AudioTones  int
	AudioHash   string
}

// Run a headless game between two bots until the requested number of matches
// have been played.
func Run(opt Options) (Summary, error) {
	var sum Summary

	if opt.Matches < 1 {
		return sum, curated.Errorf(curated.Headless, fmt.Errorf("number of matches must be at least one"))
	}

	spec := specification.Default
	if opt.Spec != nil {
		spec = *opt.Spec
	}

	var rnd *random.Random
	if opt.Seed == 0 {
		rnd = random.NewRandom()
	} else {
		rnd = random.NewSeeded(opt.Seed)
	}

	clk := clock.NewSimulated(0)
	fb := framebuffer.NewFramebuffer()
	brd := virtual.NewBoard(pins.Wiring())
	brd.SetPacing(clk, Pacing)

	vid := digest.NewVideo(fb)
	aud := digest.NewAudio()
	bz := buzzer.Multi{aud}

	var wav *wavwriter.WavWriter
	if opt.Wav != "" {
		var err error
		wav, err = wavwriter.NewWavWriter(opt.Wav, clk)
		if err != nil {
			return sum, curated.Errorf(curated.Headless, err)
		}
		bz = append(bz, wav)
	}

	ctrl := match.NewController(spec, match.Devices{
		Display: fb,
		IO:      brd,
		Clock:   clk,
		Random:  rnd,
		Buzzer:  bz,
	})

	team := make(bots.Team, 0, specification.NumPlayers)
	for p := 0; p < specification.NumPlayers; p++ {
		bot := chaser.NewChaser(p, ctrl, brd)
		bot.Matches = opt.Matches
		team = append(team, bot)
	}
	defer team.Quit()

	// the bots should finish well within this number of iterations. the
	// limit stops a broken bot from running forever
	limit := iterationLimit(spec, opt.Matches)

	run := func() error {
		startTime := time.Now()
		defer func() {
			sum.Duration = time.Since(startTime)
		}()

		ctrl.PowerOn()
		vid.NewFrame()
		lastFrame := clk.Peek()

		for len(ctrl.Results()) < opt.Matches {
			if sum.Iterations >= limit {
				return curated.Errorf(curated.Headless, fmt.Errorf("matches unfinished after %d iterations", limit))
			}

			now := clk.Peek()
			team.Tick(now)
			team.Diagnostics()
			ctrl.Iterate()
			sum.Iterations++

			if clk.Peek()-lastFrame >= digestInterval {
				vid.NewFrame()
				lastFrame = clk.Peek()
			}
		}

		// make sure the final results screen is in the digest
		vid.NewFrame()

		return nil
	}

	err := performance.RunProfiler(opt.Profile, run)
	if err != nil {
		return sum, err
	}

	sum.Results = ctrl.Results()
	sum.Simulated = clk.Peek()
	sum.VideoFrames = vid.Frames()
	sum.VideoHash = vid.Hash()
	sum.AudioTones = aud.Tones()
	sum.AudioHash = aud.Hash()

	logger.Logf(logger.Allow, "headless", "%d matches in %d iterations", len(sum.Results), sum.Iterations)

	if wav != nil {
		err = wav.Close()
		if err != nil {
			return sum, err
		}
	}

	if opt.MemViz != "" {
		err = writeMemViz(opt.MemViz, ctrl)
		if err != nil {
			return sum, err
		}
	}

	return sum, nil
}

func iterationLimit(spec specification.Spec, matches int) int {
	poll := spec.PollInterval
	if poll < 1 {
		poll = 1
	}
	perMatch := int(int64(spec.MatchDuration)*1000/poll) * 2
	return (perMatch + 10000) * matches
}

func writeMemViz(filename string, ctrl *match.Controller) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(curated.MemViz, err)
	}
	defer f.Close()

	memviz.Map(f, ctrl.World())
	logger.Logf(logger.Allow, "headless", "memviz graph written to %s", filename)

	return nil
}

// Write the summary to the io.Writer. The digest hashes are included only
// if requested.
func (sum Summary) Write(output io.Writer, digests bool) {
	for i, r := range sum.Results {
		outcome, _ := render.Outcome(r.Scores[0], r.Scores[1])
		fmt.Fprintf(output, "match %d: %d - %d (%s)\n", i+1, r.Scores[0], r.Scores[1], outcome)
	}

	rate := performance.CalcRate(sum.Iterations, sum.Duration)
	fmt.Fprintf(output, "%d iterations in %.2fs (%s)\n", sum.Iterations, sum.Duration.Seconds(), rate)
	fmt.Fprintf(output, "simulated time: %.1fs\n", float64(sum.Simulated)/1000.0)

	if digests {
		fmt.Fprintf(output, "video: %s (%d frames)\n", sum.VideoHash, sum.VideoFrames)
		fmt.Fprintf(output, "audio: %s (%d tones)\n", sum.AudioHash, sum.AudioTones)
	}
}
