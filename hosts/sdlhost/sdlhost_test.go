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
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/dgvita/test"
)

func TestHasPad(t *testing.T) {
	var pads []pad
	test.ExpectSuccess(t, !hasPad(pads, 0))

	pads = append(pads, pad{id: 3}, pad{id: 7})
	test.ExpectSuccess(t, hasPad(pads, sdl.JoystickID(3)))
	test.ExpectSuccess(t, hasPad(pads, sdl.JoystickID(7)))
	test.ExpectSuccess(t, !hasPad(pads, sdl.JoystickID(0)))
}
