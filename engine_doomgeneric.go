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

//go:build doomgeneric && cgo

package main

import (
	"github.com/jetsetilly/dgvita/engine"
	"github.com/jetsetilly/dgvita/engine/doomgeneric"
)

// the doomgeneric engine keeps its own time so the paced argument is ignored
func newEngine(_ bool) engine.Engine {
	return doomgeneric.NewDoomgeneric()
}
