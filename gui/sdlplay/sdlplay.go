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

// Package sdlplay presents the game in a window using SDL. The framebuffer is
// copied to a streaming texture whenever it changes and keyboard events are
// turned into encoder movement on the virtual board.
//
// All SDL functions are called from the main thread. The game loop runs in
// its own goroutine and talks to SdlPlay through the framebuffer, the virtual
// board and the buzzer, all of which are safe for concurrent use.
package sdlplay

import (
	"io"
	"unsafe"

	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/hardware/display"
	"github.com/jetsetilly/hungryballs/logger"
	"github.com/jetsetilly/hungryballs/performance/limiter"
	"github.com/jetsetilly/hungryballs/userinput"
	"github.com/jetsetilly/hungryballs/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// the rate at which the window is updated. the game loop is not limited by
// this value
const framesPerSecond = 60

// Framebuffer defines the functions required of the display being presented.
type Framebuffer interface {
	Pixels(dst []byte) int
	Backlight() uint8
}

// SdlPlay is a simple SDL window showing the display of the game console.
type SdlPlay struct {
	fb    Framebuffer
	board userinput.HandleInput

	controllers userinput.Controllers

	// called on the main thread when the user asks to quit
	onQuit func()

	// feature requests from other goroutines
	featureReq chan featureRequest
	featureErr chan error

	// limit screen updates to a fixed fps
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// sound for the buzzer
	snd *Sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// copy of the framebuffer and the generation it was copied at
	pixels     []byte
	generation int

	scale float32
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(fb Framebuffer, board userinput.HandleInput, scale float32, onQuit func()) (*SdlPlay, error) {
	scr := &SdlPlay{
		fb:         fb,
		board:      board,
		onQuit:     onQuit,
		featureReq: make(chan featureRequest),
		featureErr: make(chan error),
		fpsCap:     true,
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		generation: -1,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(curated.SDL, err)
	}

	setupService()

	// SDL window. window size is set in setScaling()
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width, display.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(curated.SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(curated.SDL, err)
	}

	// texture is the same size as the display. scaling is applied when it is
	// copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf(curated.SDL, err)
	}

	err = scr.setScaling(scale)
	if err != nil {
		return nil, curated.Errorf(curated.SDL, err)
	}

	scr.lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		return nil, curated.Errorf(curated.SDL, err)
	}

	// a missing sound device is not fatal. the game is played in silence
	scr.snd, err = NewSound()
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "no sound: %v", err)
		scr.snd = nil
	}

	scr.showWindow(true)

	return scr, nil
}

// Buzzer returns the sound device. Returns nil if there is no sound device.
// The result should be tested for nil before being added to a buzzer.Multi
// because a nil *Sound is not a nil interface.
func (scr *SdlPlay) Buzzer() *Sound {
	return scr.snd
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.lmtr.Stop()

	if scr.snd != nil {
		scr.snd.close()
	}

	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}

func (scr *SdlPlay) setScaling(scale float32) error {
	if scale <= 0 {
		scale = 3
	}
	scr.scale = scale

	w := int32(float32(display.Width) * scale)
	h := int32(float32(display.Height) * scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetScale(scale, scale)
}

// present copies the framebuffer to the window if it has changed since the
// last call.
func (scr *SdlPlay) present() error {
	gen := scr.fb.Pixels(scr.pixels)
	if gen == scr.generation {
		return nil
	}
	scr.generation = gen

	err := scr.texture.Update(nil, unsafe.Pointer(&scr.pixels[0]), display.Width*pixelDepth)
	if err != nil {
		return err
	}

	// the backlight is simulated by dimming the texture
	bl := scr.fb.Backlight()
	err = scr.texture.SetColorMod(bl, bl, bl)
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// IsVisible returns true if the window is showing.
func (scr *SdlPlay) IsVisible() bool {
	flgs := scr.window.GetFlags()
	return flgs&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}
