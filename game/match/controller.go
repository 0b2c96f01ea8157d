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

package match

import (
	"context"

	"github.com/jetsetilly/hungryballs/game/menu"
	"github.com/jetsetilly/hungryballs/game/render"
	"github.com/jetsetilly/hungryballs/game/sequence"
	"github.com/jetsetilly/hungryballs/game/simulation"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/hardware/buzzer"
	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/hardware/encoder"
	"github.com/jetsetilly/hungryballs/hardware/pins"
	"github.com/jetsetilly/hungryballs/logger"
)

// Devices are the collaborators of the Controller.
type Devices struct {
	Display display.Display
	IO      pins.IO
	Clock   clock.Clock
	Random  simulation.Uniform

	// the buzzer may be nil
	Buzzer buzzer.Buzzer
}

// Result of a finished match.
type Result struct {
	Scores [specification.NumPlayers]int
}

// Controller is the game console.
type Controller struct {
	spec specification.Spec
	dev  Devices

	decoder *encoder.Decoder
	menu    *menu.Menu
	world   *simulation.World

	menuRender *render.Menu
	gameRender *render.Game

	phase Phase

	// the events from the most recent poll of the inputs
	events [specification.NumPlayers]encoder.Events

	// the results of every finished match
	results []Result
}

// NewController is the preferred method of initialisation for the Controller
// type. The pins are configured immediately but nothing is drawn until
// PowerOn() is called.
func NewController(spec specification.Spec, dev Devices) *Controller {
	if dev.Buzzer == nil {
		dev.Buzzer = buzzer.Silent{}
	}

	ctrl := &Controller{
		spec:       spec,
		dev:        dev,
		decoder:    encoder.NewDecoder(dev.IO, pins.Wiring()),
		menu:       menu.NewMenu(),
		world:      simulation.NewWorld(spec, dev.Random),
		menuRender: render.NewMenu(dev.Display),
		gameRender: render.NewGame(dev.Display, spec),
	}

	return ctrl
}

// Phase returns the current phase of the game.
func (ctrl *Controller) Phase() Phase {
	return ctrl.phase
}

// World returns the state of the current or most recent match.
func (ctrl *Controller) World() *simulation.World {
	return ctrl.world
}

// Menu returns the state of the menu.
func (ctrl *Controller) Menu() *menu.Menu {
	return ctrl.menu
}

// Events returns the input events from the most recent iteration.
func (ctrl *Controller) Events() [specification.NumPlayers]encoder.Events {
	return ctrl.events
}

// Results returns the results of every finished match in the order they were
// played.
func (ctrl *Controller) Results() []Result {
	return ctrl.results
}

func (ctrl *Controller) setPhase(p Phase) {
	if p != ctrl.phase {
		logger.Logf(logger.Allow, "match", "%s -> %s", ctrl.phase, p)
	}
	ctrl.phase = p
}

// PowerOn initialises the display, plays the splash screens and presents
// the main menu.
func (ctrl *Controller) PowerOn() {
	disp := ctrl.dev.Display
	disp.Begin()
	disp.SetOrientation(display.Landscape)
	disp.SetBacklight(ctrl.spec.Backlight)
	disp.SetBackgroundColor(display.Black)
	disp.Clear()

	logger.Log(logger.Allow, "match", "Encoders and TFT Ready!")

	sequence.Sequence{
		{Name: "shapes", Draw: func() { render.Shapes(disp) }, Dwell: ctrl.spec.SplashShapes},
		{Name: "welcome", Draw: func() { render.Welcome(disp, ctrl.spec.MatchDuration) }, Dwell: ctrl.spec.SplashWelcome},
	}.Play(ctrl.dev.Clock)

	ctrl.mainMenu()
}

// Run calls Iterate() until the context is cancelled. The PowerOn() function
// is called first if it has not already been called.
func (ctrl *Controller) Run(ctx context.Context) {
	if ctrl.phase == PowerOff {
		ctrl.PowerOn()
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		ctrl.Iterate()
	}
}

// Iterate runs a single iteration of the game loop.
func (ctrl *Controller) Iterate() {
	now := ctrl.dev.Clock.Now()
	ctrl.events = ctrl.decoder.Poll(now)

	switch ctrl.phase {
	case PowerOff:
		ctrl.PowerOn()
	case MainMenu, PlayAgainMenu:
		ctrl.menuIteration()
	case Starting:
		ctrl.startMatch()
	case Playing:
		ctrl.playIteration(now)
	case Results:
		ctrl.showResults()
	}

	if ctrl.spec.PollInterval > 0 {
		ctrl.dev.Clock.Sleep(ctrl.spec.PollInterval)
	}
}

func (ctrl *Controller) mainMenu() {
	ctrl.menu.Reset()
	ctrl.menuRender.Begin(render.StartPrompt, ctrl.menu)
	ctrl.setPhase(MainMenu)
}

func (ctrl *Controller) menuIteration() {
	var changed bool

	for i, ev := range ctrl.events {
		// one toggle per detent
		if ev.Rotation.ClockEdge && ctrl.menu.Rotate(i) {
			changed = true
		}
		if ev.Button == encoder.Pressed && ctrl.menu.Press(i) {
			logger.Logf(logger.Allow, "match", "P%d locked %s", i+1, ctrl.menu.Players[i].Option)
		}
	}

	if changed {
		ctrl.menuRender.Update(ctrl.menu)
	}

	outcome := ctrl.menu.Outcome()

	switch outcome {
	case menu.Pending:
		return
	case menu.Accepted:
		ctrl.setPhase(Starting)
		return
	}

	if ctrl.phase == PlayAgainMenu {
		// either player declining returns to the main menu
		ctrl.dev.Display.Clear()
		ctrl.mainMenu()
		return
	}

	switch outcome {
	case menu.Declined:
		disp := ctrl.dev.Display
		sequence.Sequence{
			{Name: "farewell", Draw: func() { render.Farewell(disp) }, Dwell: ctrl.spec.Farewell},
		}.Play(ctrl.dev.Clock)
		ctrl.dev.Display.Clear()
		ctrl.mainMenu()
	case menu.Split:
		// the players disagree. the game stays on the main menu with both
		// selections reset and unlocked, otherwise the locked selections
		// could never change and the menu would never be left
		logger.Log(logger.Allow, "match", "players disagree")
		ctrl.menu.Reset()
		ctrl.menuRender.Update(ctrl.menu)
	}
}

func (ctrl *Controller) startMatch() {
	disp := ctrl.dev.Display
	sequence.Sequence{
		{Name: "game starts", Draw: func() { render.GameStarts(disp) }, Dwell: ctrl.spec.GameStarts},
	}.Play(ctrl.dev.Clock)
	disp.Clear()

	now := ctrl.dev.Clock.Now()
	ctrl.decoder.Reset()
	ctrl.world.Reset(now)
	ctrl.gameRender.Begin(ctrl.world, now)
	ctrl.dev.Buzzer.Tone(ctrl.spec.StartTone, ctrl.spec.StartToneLen)

	ctrl.setPhase(Playing)
}

func (ctrl *Controller) playIteration(now int64) {
	var inputs [specification.NumPlayers]simulation.Input
	for i, ev := range ctrl.events {
		inputs[i] = simulation.Input{
			Count: ev.Count,
			Speed: ev.Speed,
			Held:  ev.Held,
		}
	}

	rep := ctrl.world.Step(now, inputs)
	if rep.Finished {
		ctrl.gameRender.Update(ctrl.world, now)
		ctrl.results = append(ctrl.results, Result{Scores: ctrl.world.Scores})
		ctrl.dev.Buzzer.Tone(ctrl.spec.FinishTone, ctrl.spec.FinishToneLen)
		logger.Logf(logger.Allow, "match", "final score %d - %d", ctrl.world.Scores[0], ctrl.world.Scores[1])
		ctrl.setPhase(Results)
		return
	}

	if rep.Evicted {
		logger.Logf(logger.Allow, "match", "coin %s evicted", rep.EvictedCoin)
	}
	for _, c := range rep.Collected {
		ctrl.dev.Buzzer.Tone(ctrl.spec.CoinTone[c.Player], ctrl.spec.CoinToneLen)
		logger.Logf(logger.Allow, "match", "P%d ate coin at (%d,%d). score %d", c.Player+1, c.Coin.X, c.Coin.Y, ctrl.world.Scores[c.Player])
	}

	ctrl.gameRender.Update(ctrl.world, now)
}

func (ctrl *Controller) showResults() {
	disp := ctrl.dev.Display
	scores := ctrl.world.Scores
	sequence.Sequence{
		{Name: "results", Draw: func() { render.Results(disp, scores[0], scores[1]) }, Dwell: ctrl.spec.Results},
	}.Play(ctrl.dev.Clock)

	ctrl.menu.Reset()
	ctrl.menuRender.Begin(render.PlayAgainPrompt, ctrl.menu)
	ctrl.setPhase(PlayAgainMenu)
}
