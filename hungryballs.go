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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/hungryballs/bots"
	"github.com/jetsetilly/hungryballs/bots/chaser"
	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/game/match"
	"github.com/jetsetilly/hungryballs/game/specification"
	"github.com/jetsetilly/hungryballs/gui"
	"github.com/jetsetilly/hungryballs/gui/sdlplay"
	"github.com/jetsetilly/hungryballs/gui/termplay"
	"github.com/jetsetilly/hungryballs/hardware/buzzer"
	"github.com/jetsetilly/hungryballs/hardware/clock"
	"github.com/jetsetilly/hungryballs/hardware/display/framebuffer"
	"github.com/jetsetilly/hungryballs/hardware/pins"
	"github.com/jetsetilly/hungryballs/hardware/pins/virtual"
	"github.com/jetsetilly/hungryballs/headless"
	"github.com/jetsetilly/hungryballs/logger"
	"github.com/jetsetilly/hungryballs/modalflag"
	"github.com/jetsetilly/hungryballs/performance"
	"github.com/jetsetilly/hungryballs/random"
	"github.com/jetsetilly/hungryballs/statsview"
	"github.com/jetsetilly/hungryballs/version"
	"github.com/jetsetilly/hungryballs/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has its own handler
	// so that it can end gracefully.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"

	// destroy the current gui without quitting.
	//
	// takes a chan struct{} argument, which is closed once the gui has been
	// destroyed.
	reqDestroyGui stateReq = "DESTROYGUI"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer in an interface is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}

			case reqDestroyGui:
				if gui != nil {
					gui.Destroy(os.Stderr)
					gui = nil
				}
				if v, ok := state.args.(chan struct{}); ok {
					close(v)
				} else {
					panic(fmt.Sprintf("%s requires a chan struct{} argument", reqDestroyGui))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout, EnvPrefix: "HUNGRYBALLS_"}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubMode("PLAY", "play in a window")
	md.AddSubMode("TERMINAL", "play in the terminal")
	md.AddSubMode("HEADLESS", "bots play without any display")
	md.AdditionalHelp("keys: P1 A/D rotate, S button. P2 J/L rotate, K button. ESC quits")
	showVersion := md.AddBool("version", false, "print version and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.Current())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERMINAL":
		err = terminal(md, sync)

	case "HEADLESS":
		err = runHeadless(md, os.Stdout)

	default:
		err = curated.Errorf(curated.UnknownMode, md.Mode())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the devices and bots shared by the interactive modes.
type console struct {
	fb   *framebuffer.Framebuffer
	brd  *virtual.Board
	clk  *clock.Real
	ctrl *match.Controller
	team bots.Team
	wav  *wavwriter.WavWriter

	// the buzzers that the controller sounds
	bz buzzer.Multi
}

func newConsole(wav string) (*console, error) {
	con := &console{
		fb:  framebuffer.NewFramebuffer(),
		brd: virtual.NewBoard(pins.Wiring()),
		clk: clock.NewReal(),
	}

	if wav != "" {
		var err error
		con.wav, err = wavwriter.NewWavWriter(wav, con.clk)
		if err != nil {
			return nil, err
		}
		con.bz = append(con.bz, con.wav)
	}

	return con, nil
}

// power on the console. the controller is created with the buzzers that have
// been added up to this point.
func (con *console) power(seed int64, bot string) error {
	var rnd *random.Random
	if seed == 0 {
		rnd = random.NewRandom()
	} else {
		rnd = random.NewSeeded(seed)
	}
	logger.Logf(logger.Allow, "hungryballs", "random seed: %d", rnd.Seed)

	con.ctrl = match.NewController(specification.Default, match.Devices{
		Display: con.fb,
		IO:      con.brd,
		Clock:   con.clk,
		Random:  rnd,
		Buzzer:  con.bz,
	})

	var err error
	con.team, err = parseBots(bot, con.ctrl, con.brd)
	if err != nil {
		return err
	}

	// bots turn the encoders at a steady pace. a human player is paced by
	// the keyboard
	if len(con.team) > 0 {
		con.brd.SetPacing(con.clk, headless.Pacing)
	}

	return nil
}

// run the game loop until the context is done.
func (con *console) run(ctx context.Context) error {
	defer con.team.Quit()

	con.ctrl.PowerOn()
	for {
		select {
		case <-ctx.Done():
			if con.wav != nil {
				return con.wav.Close()
			}
			return nil
		default:
		}
		con.team.Tick(con.clk.Now())
		con.team.Diagnostics()
		con.ctrl.Iterate()
	}
}

// parseBots returns the bots named by the setting: NONE, P1, P2 or BOTH.
func parseBots(setting string, ctrl *match.Controller, brd *virtual.Board) (bots.Team, error) {
	var team bots.Team
	switch strings.ToUpper(setting) {
	case "", "NONE":
	case "P1":
		team = append(team, chaser.NewChaser(0, ctrl, brd))
	case "P2":
		team = append(team, chaser.NewChaser(1, ctrl, brd))
	case "BOTH":
		team = append(team, chaser.NewChaser(0, ctrl, brd), chaser.NewChaser(1, ctrl, brd))
	default:
		return nil, curated.Errorf(curated.CommandLine, fmt.Errorf("unknown bot setting: %s", setting))
	}
	for _, b := range team {
		logger.Logf(logger.Allow, "hungryballs", "%s joined the game", b.BotID())
	}
	return team, nil
}

// interrupt returns a context that is cancelled by the returned cancel
// function or by an interrupt signal.
func interrupt(sync *mainSync) (context.Context, context.CancelFunc) {
	// turn off the fallback ctrl-c handling so that the mode can finish
	// writing any files before quitting
	sync.state <- stateRequest{req: reqNoIntSig}
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", 0.0, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap window updates to the refresh rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	seed := md.AddInt64("seed", 0, "seed for coin placement (0 for random)")
	bot := md.AddString("bot", "NONE", "players controlled by a bot: NONE, P1, P2, BOTH")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(curated.CommandLine, fmt.Errorf("too many arguments for %s mode", md))
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf(curated.CommandLine, fmt.Errorf("statsview not available in this build"))
		}
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	con, err := newConsole(*wav)
	if err != nil {
		return err
	}

	ctx, cancel := interrupt(sync)
	defer cancel()

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(con.fb, con.brd, float32(*scaling), cancel)
	}

	// wait for creator result
	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	err = scr.SetFeature(gui.ReqSetFPSCap, *fpsCap)
	if err != nil {
		return err
	}

	if snd := scr.Buzzer(); snd != nil {
		con.bz = append(con.bz, snd)
	}

	err = con.power(*seed, *bot)
	if err != nil {
		return err
	}

	return con.run(ctx)
}

func terminal(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	width := md.AddInt("width", 0, "width of the display in columns (0 to fit the terminal)")
	wav := md.AddString("wav", "", "record audio to wav file")
	seed := md.AddInt64("seed", 0, "seed for coin placement (0 for random)")
	bot := md.AddString("bot", "NONE", "players controlled by a bot: NONE, P1, P2, BOTH")
	tail := md.AddInt("tail", 0, "number of log entries to print on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(curated.CommandLine, fmt.Errorf("too many arguments for %s mode", md))
	}

	// the log would spoil the display. it can be printed on exit instead
	logger.SetEcho(nil)

	con, err := newConsole(*wav)
	if err != nil {
		return err
	}

	ctx, cancel := interrupt(sync)
	defer cancel()

	sync.creator <- func() (GuiCreator, error) {
		return termplay.NewTermPlay(con.fb, con.brd, *width, cancel)
	}

	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	err = con.power(*seed, *bot)
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqSetTitle, fmt.Sprintf("%s  P1 A/D/S  P2 J/L/K  ESC quits", strings.ToUpper(version.ApplicationName)))
	if err != nil {
		return err
	}

	err = con.run(ctx)

	// the terminal must be restored before the log can be printed
	done := make(chan struct{})
	sync.state <- stateRequest{req: reqDestroyGui, args: done}
	<-done

	if *tail > 0 {
		logger.Tail(logger.NewColorizer(os.Stdout), *tail)
	}

	return err
}

func runHeadless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	matches := md.AddInt("matches", 1, "number of matches for the bots to play")
	seed := md.AddInt64("seed", 0, "seed for coin placement (0 for random)")
	digests := md.AddBool("digest", false, "print digests of the video and audio output")
	wav := md.AddString("wav", "", "record audio to wav file")
	viz := md.AddString("memviz", "", "write graph of the final game state to file")
	cpuProfile := md.AddString("profile", "", "write cpu profile to file")
	memProfile := md.AddString("memprofile", "", "write memory profile to file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(curated.CommandLine, fmt.Errorf("too many arguments for %s mode", md))
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	sum, err := headless.Run(headless.Options{
		Matches: *matches,
		Seed:    *seed,
		Wav:     *wav,
		MemViz:  *viz,
		Profile: performance.Profile{
			CPU: *cpuProfile,
			Mem: *memProfile,
		},
	})
	if err != nil {
		return err
	}

	sum.Write(output, *digests)

	return nil
}
