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
	"github.com/jetsetilly/hungryballs/curated"
	"github.com/jetsetilly/hungryballs/gui"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	var err error

	if len(request.args) == 0 {
		scr.featureErr <- curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		return
	}

	switch request.request {
	case gui.ReqSetVisibility:
		if v, ok := request.args[0].(bool); ok {
			scr.showWindow(v)
		} else {
			err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}

	case gui.ReqSetScale:
		if v, ok := request.args[0].(float32); ok {
			err = scr.setScaling(v)
			scr.generation = -1
		} else {
			err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}

	case gui.ReqSetFPSCap:
		if v, ok := request.args[0].(bool); ok {
			scr.fpsCap = v
		} else {
			err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}

	case gui.ReqSetTitle:
		if v, ok := request.args[0].(string); ok {
			scr.window.SetTitle(v)
		} else {
			err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
