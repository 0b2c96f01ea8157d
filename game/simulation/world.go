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

package simulation

import (
	"fmt"

	"github.com/jetsetilly/hungryballs/game/entities"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/logger"
)

// Uniform is the source of random numbers used to place coins. The returned
// value is in the half-open range [min, max).
type Uniform interface {
	Uniform(min, max int) int
}

// Input is the state of a player's input device at the time of the tick.
type Input struct {
	// the accumulated count of the encoder
	Count int

	// speed multiplier of the encoder. values less than one are treated as
	// one
	Speed int

	// the button is being held down
	Held bool
}

// Collection is a coin eaten by a player.
type Collection struct {
	Player int
	Slot   int
	Coin   entities.Coin
}

// Report is the result of a call to Step().
type Report struct {
	// the match has finished. nothing else in the report is meaningful
	Finished bool

	// remaining time in seconds
	Remaining int

	// horizontal movement of each ball
	Moved [specification.NumPlayers]int

	// a coin has been spawned into SpawnSlot
	Spawned   bool
	SpawnSlot int

	// the spawn evicted an active coin from the slot
	Evicted     bool
	EvictedCoin entities.Coin

	// coins eaten this tick in the order they were eaten
	Collected []Collection
}

// World is the state of a match.
type World struct {
	spec specification.Spec
	rng  Uniform

	Balls  [specification.NumPlayers]entities.Ball
	Coins  entities.CoinRing
	Scores [specification.NumPlayers]int

	// time the match started and the number of seconds remaining
	Start     int64
	Remaining int

	// time of the most recent coin spawn
	lastSpawn int64
	spawned   bool

	// the encoder counts seen by the previous tick
	lastCount [specification.NumPlayers]int
}

// NewWorld is the preferred method of initialisation for the World type. The
// world should be Reset() before the first call to Step().
func NewWorld(spec specification.Spec, rng Uniform) *World {
	w := &World{
		spec: spec,
		rng:  rng,
	}
	w.Reset(0)
	return w
}

// Spec returns the specification used by the world.
func (w *World) Spec() specification.Spec {
	return w.spec
}

// Reset the world to the start of a match. Encoder counts are expected to
// start again from zero.
func (w *World) Reset(now int64) {
	for i := range w.Balls {
		w.Balls[i] = entities.NewBall(w.spec.BallStartX[i], w.spec.MaxY)
		w.Scores[i] = 0
		w.lastCount[i] = 0
	}
	w.Coins.Reset()
	w.Start = now
	w.Remaining = w.spec.MatchDuration
	w.lastSpawn = now
	w.spawned = false
}

// Step advances the world by one tick.
func (w *World) Step(now int64, inputs [specification.NumPlayers]Input) Report {
	var rep Report

	w.Remaining = w.spec.MatchDuration - int((now-w.Start)/1000)
	rep.Remaining = w.Remaining
	if w.Remaining <= 0 {
		rep.Finished = true
		return rep
	}

	for i := range w.Balls {
		w.Balls[i].StartTick()
	}

	for i := range w.Balls {
		rep.Moved[i] = w.moveHorizontal(i, inputs[i])
	}

	for i := range w.Balls {
		w.moveVertical(i, inputs[i].Held)
	}

	w.spawn(now, &rep)
	w.collide(&rep)

	return rep
}

func (w *World) moveHorizontal(player int, in Input) int {
	if in.Count == w.lastCount[player] {
		return 0
	}

	speed := in.Speed
	if speed < 1 {
		speed = 1
	}

	dx := (in.Count - w.lastCount[player]) * w.spec.BaseSpeed * speed
	dx = entities.Clamp(dx, -w.spec.MaxMovement, w.spec.MaxMovement)

	b := &w.Balls[player]
	b.X = entities.Clamp(b.X+dx, w.spec.MinX, w.spec.MaxX)
	w.lastCount[player] = in.Count

	logger.Logf(logger.Allow, "simulation", "P%d Move: %d Speed Multiplier: %d", player+1, dx, speed)

	return dx
}

func (w *World) moveVertical(player int, held bool) {
	b := &w.Balls[player]
	if held {
		b.Y -= w.spec.JumpSpeed
	} else {
		b.Y += w.spec.Gravity
	}
	b.Y = entities.Clamp(b.Y, w.spec.MinY, w.spec.MaxY)
}

// the first coin of a match appears on the first tick
func (w *World) spawn(now int64, rep *Report) {
	if w.spawned && now-w.lastSpawn <= w.spec.CoinInterval {
		return
	}

	x := w.rng.Uniform(w.spec.CoinMinX, w.spec.CoinMaxX)
	y := w.rng.Uniform(w.spec.CoinMinY, w.spec.CoinMaxY)
	slot, evicted, ok := w.Coins.Spawn(x, y, now)

	rep.Spawned = true
	rep.SpawnSlot = slot
	rep.Evicted = ok
	rep.EvictedCoin = evicted

	w.lastSpawn = now
	w.spawned = true
}

func (w *World) collide(rep *Report) {
	touch := float64(w.spec.BallRadius + w.spec.CoinRadius)

	for slot := range w.Coins.Slots {
		for player := range w.Balls {
			c := w.Coins.Slots[slot]
			if !c.Active {
				break
			}
			if w.Balls[player].Distance(c.X, c.Y) < touch {
				w.Scores[player]++
				w.Coins.Retire(slot)
				rep.Collected = append(rep.Collected, Collection{
					Player: player,
					Slot:   slot,
					Coin:   c,
				})
			}
		}
	}
}

func (w *World) String() string {
	return fmt.Sprintf("P1 %s %d, P2 %s %d, time %d", w.Balls[0], w.Scores[0], w.Balls[1], w.Scores[1], w.Remaining)
}
