// This file is part of DGVita.
//
// DGVita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DGVita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DGVita.  If not, see <https://www.gnu.org/licenses/>.

package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
)

// keyboard keys that stand in for controller buttons
var keys = map[sdl.Keycode]hosts.Key{
	sdl.K_UP:        hosts.KeyUp,
	sdl.K_DOWN:      hosts.KeyDown,
	sdl.K_LEFT:      hosts.KeyLeft,
	sdl.K_RIGHT:     hosts.KeyRight,
	sdl.K_z:         hosts.KeyCross,
	sdl.K_x:         hosts.KeyCircle,
	sdl.K_a:         hosts.KeySquare,
	sdl.K_s:         hosts.KeyTriangle,
	sdl.K_q:         hosts.KeyLTrigger,
	sdl.K_w:         hosts.KeyRTrigger,
	sdl.K_1:         hosts.KeyL1,
	sdl.K_2:         hosts.KeyR1,
	sdl.K_RETURN:    hosts.KeyStart,
	sdl.K_BACKSPACE: hosts.KeySelect,
}

// controller buttons in the SDL layout. the face buttons are positional so
// the bottom button (A on an xbox pad) is the cross
var padButtons = []struct {
	button sdl.GameControllerButton
	vita   input.Buttons
}{
	{sdl.CONTROLLER_BUTTON_A, input.Cross},
	{sdl.CONTROLLER_BUTTON_B, input.Circle},
	{sdl.CONTROLLER_BUTTON_X, input.Square},
	{sdl.CONTROLLER_BUTTON_Y, input.Triangle},
	{sdl.CONTROLLER_BUTTON_BACK, input.Select},
	{sdl.CONTROLLER_BUTTON_START, input.Start},
	{sdl.CONTROLLER_BUTTON_LEFTSTICK, input.L3},
	{sdl.CONTROLLER_BUTTON_RIGHTSTICK, input.R3},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, input.LTrigger},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, input.RTrigger},
	{sdl.CONTROLLER_BUTTON_DPAD_UP, input.Up},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, input.Down},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, input.Left},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, input.Right},
}

// analog triggers are reported as the L1 and R1 buttons once they pass this
// value. the trigger range is 0 to 32767
const triggerThreshold = 16384

func padSample(pad *sdl.GameController) input.ControllerSample {
	var s input.ControllerSample

	for _, b := range padButtons {
		if pad.Button(b.button) != 0 {
			s.Buttons |= b.vita
		}
	}

	if pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT) > triggerThreshold {
		s.Buttons |= input.L1
	}
	if pad.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT) > triggerThreshold {
		s.Buttons |= input.R1
	}

	s.LX = hosts.AxisFromInt16(pad.Axis(sdl.CONTROLLER_AXIS_LEFTX))
	s.LY = hosts.AxisFromInt16(pad.Axis(sdl.CONTROLLER_AXIS_LEFTY))
	s.RX = hosts.AxisFromInt16(pad.Axis(sdl.CONTROLLER_AXIS_RIGHTX))
	s.RY = hosts.AxisFromInt16(pad.Axis(sdl.CONTROLLER_AXIS_RIGHTY))

	return s
}
