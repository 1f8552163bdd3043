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

// Package platform connects an engine to a host.
//
// A host provides a Display, for showing frames, and a Controller, for
// sampling the player's input. The Backend implements the engine.Callbacks
// interface on top of these. The Driver runs the main loop: sample the
// controller, update the input queue and tick the engine.
//
//	inp, _ := input.NewInput(mapping, input.DefaultDeadzone, input.DefaultQueueSize)
//	be, _ := platform.NewBackend(display, inp, eng)
//	drv := platform.NewDriver(be, controller)
//	_ = drv.Create(wad.Args("dgvita", iwad))
//	_ = drv.Run(ctx)
//
// A host that has been closed by the user (a window closed for example)
// returns the Closed error from Sample(). Run() treats this as a normal end.
package platform
