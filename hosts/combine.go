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

package hosts

import (
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
)

// Combined is a platform.Controller that merges the samples of several
// controllers. Buttons are combined and each axis takes the value furthest
// from the centre.
type Combined []platform.Controller

// Combine controllers into a single controller. If there is only one
// controller it is returned unchanged.
func Combine(controllers ...platform.Controller) platform.Controller {
	if len(controllers) == 1 {
		return controllers[0]
	}
	return Combined(controllers)
}

// Sample implements the platform.Controller interface. An error from any
// controller is returned immediately.
func (c Combined) Sample() (input.ControllerSample, error) {
	s := input.NeutralSample
	for _, ctrl := range c {
		t, err := ctrl.Sample()
		if err != nil {
			return input.NeutralSample, err
		}
		s.Buttons |= t.Buttons
		for _, a := range []input.Axis{input.LX, input.LY, input.RX, input.RY} {
			if distance(t.Axis(a)) > distance(s.Axis(a)) {
				s.SetAxis(a, t.Axis(a))
			}
		}
	}
	return s, nil
}

func distance(v uint8) int {
	d := int(v) - input.AxisCentre
	if d < 0 {
		return -d
	}
	return d
}
