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

package simulation_test

import (
	"testing"

	"github.com/jetsetilly/hungryballs/game/simulation"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/random"
	"github.com/jetsetilly/hungryballs/test"
)

// coin positions are taken from the list in turn. the arguments to Uniform()
// are ignored
type positions struct {
	values []int
	idx    int
}

func (p *positions) Uniform(_, _ int) int {
	v := p.values[p.idx%len(p.values)]
	p.idx++
	return v
}

// a coin position far away from both balls
var farAway = &positions{values: []int{88, 60}}

func TestReset(t *testing.T) {
	w := simulation.NewWorld(specification.Default, farAway)
	w.Reset(1000)

	test.ExpectEquality(t, w.Balls[0].X, 40)
	test.ExpectEquality(t, w.Balls[1].X, 136)
	test.ExpectEquality(t, w.Balls[0].Y, 190)
	test.ExpectEquality(t, w.Balls[1].Y, 190)
	test.ExpectEquality(t, w.Remaining, 60)
	test.ExpectEquality(t, w.Scores, [2]int{0, 0})
	test.ExpectEquality(t, w.Coins.Active(), 0)
	test.ExpectEquality(t, w.Start, int64(1000))
}

func TestTimer(t *testing.T) {
	w := simulation.NewWorld(specification.Default, farAway)
	w.Reset(5000)

	var in [2]simulation.Input

	rep := w.Step(5000, in)
	test.ExpectFailure(t, rep.Finished)
	test.ExpectEquality(t, rep.Remaining, 60)

	rep = w.Step(5999, in)
	test.ExpectEquality(t, rep.Remaining, 60)

	rep = w.Step(6000, in)
	test.ExpectEquality(t, rep.Remaining, 59)

	rep = w.Step(64999, in)
	test.ExpectEquality(t, rep.Remaining, 1)
	test.ExpectFailure(t, rep.Finished)

	rep = w.Step(65000, in)
	test.ExpectEquality(t, rep.Remaining, 0)
	test.ExpectSuccess(t, rep.Finished)
}

func TestHorizontal(t *testing.T) {
	w := simulation.NewWorld(specification.Default, farAway)
	w.Reset(0)

	// one edge at base speed
	rep := w.Step(1, [2]simulation.Input{{Count: 1, Speed: 1}, {Count: -1, Speed: 1}})
	test.ExpectEquality(t, w.Balls[0].X, 60)
	test.ExpectEquality(t, w.Balls[1].X, 116)
	test.ExpectEquality(t, rep.Moved, [2]int{20, -20})

	// unchanged counts do not move the balls
	rep = w.Step(2, [2]simulation.Input{{Count: 1, Speed: 20}, {Count: -1, Speed: 20}})
	test.ExpectEquality(t, rep.Moved, [2]int{0, 0})
	test.ExpectEquality(t, w.Balls[0].X, 60)

	// fast rotation is limited
	rep = w.Step(3, [2]simulation.Input{{Count: 2, Speed: 20}, {Count: -1}})
	test.ExpectEquality(t, rep.Moved[0], 100)
	test.ExpectEquality(t, w.Balls[0].X, 160)

	// and the ball stays in the play field
	w.Step(4, [2]simulation.Input{{Count: 3, Speed: 1}, {Count: -1}})
	test.ExpectEquality(t, w.Balls[0].X, 166)

	// speed of zero is treated as one
	rep = w.Step(5, [2]simulation.Input{{Count: 2, Speed: 0}, {Count: -1}})
	test.ExpectEquality(t, rep.Moved[0], -20)
}

func TestHorizontalBounds(t *testing.T) {
	spec := specification.Default
	w := simulation.NewWorld(spec, farAway)
	w.Reset(0)

	rnd := random.NewSeeded(99)
	var in [2]simulation.Input

	for i := 0; i < 5000; i++ {
		for p := range in {
			in[p].Count += rnd.Uniform(-8, 9)
			in[p].Speed = rnd.Uniform(1, 21)
		}
		rep := w.Step(int64(i), in)
		for p := range in {
			test.ExpectSuccess(t, rep.Moved[p] >= -100 && rep.Moved[p] <= 100, i, p)
			test.ExpectSuccess(t, w.Balls[p].X >= spec.MinX && w.Balls[p].X <= spec.MaxX, i, p)
		}
	}
}

func TestVertical(t *testing.T) {
	spec := specification.Default
	w := simulation.NewWorld(spec, farAway)
	w.Reset(0)

	held := [2]simulation.Input{{Held: true}, {Held: true}}
	released := [2]simulation.Input{}

	w.Step(1, held)
	test.ExpectEquality(t, w.Balls[0].Y, 160)

	for i := 0; i < 10; i++ {
		w.Step(1, held)
	}
	test.ExpectEquality(t, w.Balls[0].Y, spec.MinY)
	test.ExpectEquality(t, w.Balls[1].Y, spec.MinY)

	w.Step(1, released)
	test.ExpectEquality(t, w.Balls[0].Y, spec.MinY+30)

	for i := 0; i < 10; i++ {
		w.Step(1, released)
	}
	test.ExpectEquality(t, w.Balls[0].Y, spec.MaxY)

	// any pattern of holding the button
	rnd := random.NewSeeded(7)
	for i := 0; i < 2000; i++ {
		var in [2]simulation.Input
		in[0].Held = rnd.Intn(2) == 0
		in[1].Held = rnd.Intn(3) == 0
		w.Step(1, in)
		for p := range in {
			test.ExpectSuccess(t, w.Balls[p].Y >= spec.MinY && w.Balls[p].Y <= spec.MaxY, i, p)
		}
	}
}

func TestCoinSpawning(t *testing.T) {
	w := simulation.NewWorld(specification.Default, farAway)
	w.Reset(10000)

	var in [2]simulation.Input

	// first coin on the first tick
	rep := w.Step(10000, in)
	test.ExpectSuccess(t, rep.Spawned)
	test.ExpectEquality(t, rep.SpawnSlot, 0)
	test.ExpectEquality(t, w.Coins.Slots[0].X, 88)
	test.ExpectEquality(t, w.Coins.Slots[0].Y, 60)

	// not until the interval has passed
	rep = w.Step(12500, in)
	test.ExpectFailure(t, rep.Spawned)
	rep = w.Step(12501, in)
	test.ExpectSuccess(t, rep.Spawned)
	test.ExpectEquality(t, rep.SpawnSlot, 1)

	rep = w.Step(15002, in)
	test.ExpectEquality(t, rep.SpawnSlot, 2)
	test.ExpectFailure(t, rep.Evicted)
	test.ExpectEquality(t, w.Coins.Active(), 3)

	// the fourth coin evicts the first
	rep = w.Step(17503, in)
	test.ExpectEquality(t, rep.SpawnSlot, 0)
	test.ExpectSuccess(t, rep.Evicted)
	test.ExpectEquality(t, rep.EvictedCoin.Created, int64(10000))
	test.ExpectEquality(t, w.Coins.Active(), 3)
}

func TestCoinPositionRange(t *testing.T) {
	spec := specification.Default
	w := simulation.NewWorld(spec, random.NewSeeded(3))
	w.Reset(0)

	var in [2]simulation.Input
	for now := int64(0); now < 59000; now += 100 {
		rep := w.Step(now, in)
		if rep.Spawned {
			c := w.Coins.Slots[rep.SpawnSlot]
			test.ExpectSuccess(t, c.X >= spec.CoinMinX && c.X < spec.CoinMaxX, c)
			test.ExpectSuccess(t, c.Y >= spec.CoinMinY && c.Y < spec.CoinMaxY, c)
		}
	}
}

func TestCollision(t *testing.T) {
	// coin touching player 1 resting on the ground at 40,190
	w := simulation.NewWorld(specification.Default, &positions{values: []int{45, 185}})
	w.Reset(0)

	rep := w.Step(0, [2]simulation.Input{})
	test.DemandEquality(t, len(rep.Collected), 1)
	test.ExpectEquality(t, rep.Collected[0].Player, 0)
	test.ExpectEquality(t, rep.Collected[0].Slot, 0)
	test.ExpectEquality(t, w.Scores, [2]int{1, 0})
	test.ExpectEquality(t, w.Coins.Active(), 0)

	// nothing more to eat
	rep = w.Step(1, [2]simulation.Input{})
	test.ExpectEquality(t, len(rep.Collected), 0)
	test.ExpectEquality(t, w.Scores, [2]int{1, 0})
}

func TestCollisionThreshold(t *testing.T) {
	// exactly BallRadius+CoinRadius away from player 1
	w := simulation.NewWorld(specification.Default, &positions{values: []int{54, 190}})
	w.Reset(0)

	rep := w.Step(0, [2]simulation.Input{})
	test.ExpectEquality(t, len(rep.Collected), 0)
	test.ExpectEquality(t, w.Scores, [2]int{0, 0})
	test.ExpectEquality(t, w.Coins.Active(), 1)

	// one pixel closer
	w.Balls[0].X = 41
	rep = w.Step(1, [2]simulation.Input{})
	test.ExpectEquality(t, len(rep.Collected), 1)
	test.ExpectEquality(t, w.Scores, [2]int{1, 0})
}

func TestCollisionTieBreak(t *testing.T) {
	w := simulation.NewWorld(specification.Default, &positions{values: []int{45, 190}})
	w.Reset(0)

	// both balls touch the coin
	w.Balls[1].X = 50

	rep := w.Step(0, [2]simulation.Input{})
	test.DemandEquality(t, len(rep.Collected), 1)
	test.ExpectEquality(t, rep.Collected[0].Player, 0)
	test.ExpectEquality(t, w.Scores, [2]int{1, 0})
}

func TestFinishedStepDoesNothing(t *testing.T) {
	w := simulation.NewWorld(specification.Default, farAway)
	w.Reset(0)

	rep := w.Step(60000, [2]simulation.Input{{Count: 5, Held: true}})
	test.ExpectSuccess(t, rep.Finished)
	test.ExpectFailure(t, rep.Spawned)
	test.ExpectEquality(t, w.Balls[0].X, 40)
	test.ExpectEquality(t, w.Balls[0].Y, 190)
}
