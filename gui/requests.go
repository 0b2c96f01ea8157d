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

package gui

// FeatureReq is used to request the setting of a gui attribute eg. the scale
// of the window.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and an error returned.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// show or hide the window.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the number of screen pixels for every display pixel.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// whether presentation of the display is capped to the frame limiter.
	ReqSetFPSCap FeatureReq = "ReqSetFPSCap" // bool

	// text shown in the title of the window or the status line of the
	// terminal.
	ReqSetTitle FeatureReq = "ReqSetTitle" // string
)
