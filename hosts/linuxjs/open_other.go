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

//go:build !linux

package linuxjs

import (
	"github.com/jetsetilly/dgvita/curated"
)

// Open is not supported on this platform.
func Open(path string) (*Joystick, error) {
	return nil, curated.Errorf(OpenFailed, "joystick devices are only supported on linux")
}
