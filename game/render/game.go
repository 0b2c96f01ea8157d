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

package render

import (
	"fmt"

	"github.com/jetsetilly/hungryballs/game/entities"
	"github.com/jetsetilly/hungryballs/game/simulation"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/hardware/display"
)

// scoreboard layout. all text is in the small font
const (
	scoreboardY = 5
	p1LabelX    = 10
	p1ScoreX    = 34
	timeLabelX  = 62
	timeX       = 100
	p2LabelX    = 130
	p2ScoreX    = 153

	scoreboardFont = display.Small
)

var scoreX = [specification.NumPlayers]int{p1ScoreX, p2ScoreX}

// what has been painted on the display
type painted struct {
	scores    [specification.NumPlayers]string
	remaining string
	balls     [specification.NumPlayers]entities.Ball
	coins     [specification.MaxCoins]entities.Coin
}

// Game draws the play field of a match.
type Game struct {
	disp display.Display
	spec specification.Spec

	painted painted

	// time of the most recent redraw of the ground line
	lastGround int64

	// number of circles drawn or erased by the most recent Update()
	Circles int
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(disp display.Display, spec specification.Spec) *Game {
	return &Game{
		disp: disp,
		spec: spec,
	}
}

// Begin draws the play field for a new match. The display should have been
// cleared.
func (g *Game) Begin(w *simulation.World, now int64) {
	g.painted = painted{}
	g.Circles = 0

	g.disp.SetFont(scoreboardFont)
	g.disp.DrawText(p1LabelX, scoreboardY, "P1:", PlayerColors[0])
	g.disp.DrawText(timeLabelX, scoreboardY, "TIME:", textColor)
	g.disp.DrawText(p2LabelX, scoreboardY, "P2:", PlayerColors[1])

	g.disp.DrawLine(0, g.spec.SeparatorLine, g.spec.ScreenWidth-1, g.spec.SeparatorLine, lineColor)
	g.drawGround()
	g.lastGround = now

	for i := range g.painted.scores {
		g.painted.scores[i] = g.text(scoreX[i], "", fmt.Sprintf("%2d", w.Scores[i]), PlayerColors[i])
	}
	g.painted.remaining = g.text(timeX, "", fmt.Sprintf("%2d", w.Remaining), textColor)

	for i, b := range w.Balls {
		g.disp.FillCircle(b.X, b.Y, g.spec.BallRadius, PlayerColors[i])
		g.painted.balls[i] = b
	}
}

// Update repaints everything that has changed since the previous call to
// Update() or Begin().
func (g *Game) Update(w *simulation.World, now int64) {
	g.Circles = 0

	g.coins(w)
	g.balls(w)
	g.scoreboard(w)

	if now-g.lastGround > g.spec.GroundRedrawInterval {
		g.drawGround()
		g.lastGround = now
	}
}

func (g *Game) drawGround() {
	g.disp.DrawLine(0, g.spec.GroundLevel, g.spec.ScreenWidth-1, g.spec.GroundLevel, lineColor)
}

// text erases the previously painted string before drawing the new string.
// returns the new string
func (g *Game) text(x int, prev string, s string, col display.Color) string {
	if prev != "" {
		w := scoreboardFont.TextWidth(prev)
		g.disp.FillRectangle(x, scoreboardY, x+w-1, scoreboardY+scoreboardFont.Height()-1, background)
	}
	g.disp.SetFont(scoreboardFont)
	g.disp.DrawText(x, scoreboardY, s, col)
	return s
}

func (g *Game) scoreboard(w *simulation.World) {
	for i := range w.Scores {
		s := fmt.Sprintf("%2d", w.Scores[i])
		if s != g.painted.scores[i] {
			g.painted.scores[i] = g.text(scoreX[i], g.painted.scores[i], s, PlayerColors[i])
		}
	}

	s := fmt.Sprintf("%2d", max(w.Remaining, 0))
	if s != g.painted.remaining {
		g.painted.remaining = g.text(timeX, g.painted.remaining, s, textColor)
	}
}

func (g *Game) coins(w *simulation.World) {
	for slot, c := range w.Coins.Slots {
		p := g.painted.coins[slot]
		if p == c {
			continue
		}

		if p.Active {
			g.disp.FillCircle(p.X, p.Y, g.spec.CoinRadius, background)
			g.Circles++
		}
		if c.Active {
			g.disp.FillCircle(c.X, c.Y, g.spec.CoinRadius, coinColor)
			g.Circles++
		}
		g.painted.coins[slot] = c
	}
}

// two circles overlap if the distance between their centres is less than the
// sum of their radii. the extra pixel allows for the rasterisation of the
// circles
func overlaps(x1, y1, r1, x2, y2, r2 int) bool {
	dx := x1 - x2
	dy := y1 - y2
	rr := r1 + r2 + 1
	return dx*dx+dy*dy < rr*rr
}

func (g *Game) balls(w *simulation.World) {
	var moved [specification.NumPlayers]bool
	var nearGround bool

	// erase balls that have moved
	for i, b := range w.Balls {
		p := g.painted.balls[i]
		if b.X == p.X && b.Y == p.Y {
			continue
		}
		moved[i] = true
		g.disp.FillCircle(p.X, p.Y, g.spec.BallRadius, background)
		g.Circles++

		if p.Y+g.spec.BallRadius >= g.spec.GroundLevel-g.spec.GroundProximity ||
			b.Y+g.spec.BallRadius >= g.spec.GroundLevel-g.spec.GroundProximity {
			nearGround = true
		}
	}

	// repair anything damaged by the erasure
	for i := range w.Balls {
		if !moved[i] {
			continue
		}
		p := g.painted.balls[i]

		for _, c := range g.painted.coins {
			if c.Active && overlaps(p.X, p.Y, g.spec.BallRadius, c.X, c.Y, g.spec.CoinRadius) {
				g.disp.FillCircle(c.X, c.Y, g.spec.CoinRadius, coinColor)
				g.Circles++
			}
		}

		for j, o := range g.painted.balls {
			if j != i && !moved[j] && overlaps(p.X, p.Y, g.spec.BallRadius, o.X, o.Y, g.spec.BallRadius) {
				moved[j] = true
			}
		}
	}

	// draw balls in their new positions
	for i, b := range w.Balls {
		if !moved[i] {
			continue
		}
		g.disp.FillCircle(b.X, b.Y, g.spec.BallRadius, PlayerColors[i])
		g.Circles++
		g.painted.balls[i] = b
	}

	if nearGround {
		g.drawGround()
	}
}
