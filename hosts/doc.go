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

// Package hosts contains the parts shared by the host implementations in the
// sub-packages. A host provides the platform.Display and platform.Controller
// for a particular environment.
//
// Hosts with a keyboard translate their native key codes to the Key type.
// The Keyboard type then tracks which keys are held and presents them as
// controller buttons, so that a keyboard player uses the same mapping as a
// gamepad player.
package hosts
