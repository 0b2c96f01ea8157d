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

package sdlplay

import (
	"github.com/jetsetilly/hungryballs/logger"
	"github.com/jetsetilly/hungryballs/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// translate an SDL event into a userinput event. returns nil if the event is
// of no interest.
func translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Mod:    keyMod(),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.MouseWheelEvent:
		return userinput.EventMouseWheel{Delta: int(ev.Y)}

	case *sdl.MouseButtonEvent:
		var b userinput.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			b = userinput.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			b = userinput.MouseButtonRight
		case sdl.BUTTON_MIDDLE:
			b = userinput.MouseButtonMiddle
		}
		return userinput.EventMouseButton{
			Button: b,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}
	}

	return nil
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. we don't want to leave
	// queued events for the next frame because key presses would lag
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		uev := translate(ev)
		if uev == nil {
			continue
		}

		scr.controllers.HandleUserInput(uev, scr.board)
		if scr.controllers.Quit && scr.onQuit != nil {
			scr.onQuit()
		}
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	// wait for frame limiter
	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	err := scr.present()
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "present: %v", err)
	}
}
