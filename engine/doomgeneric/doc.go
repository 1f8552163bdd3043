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

// Package doomgeneric binds the doomgeneric C engine to the engine.Engine
// interface. The binding requires cgo and is only built with the doomgeneric
// build tag:
//
//	go build -tags doomgeneric .
//
// The engine must be available as a C library (libdoomgeneric) built from the
// doomgeneric sources without any of the platform files (doomgeneric_sdl.c
// etc.). The platform functions DG_Init, DG_DrawFrame, DG_SleepMs,
// DG_GetTicksMs, DG_GetKey and DG_SetWindowTitle are provided by this package.
// Use CGO_CFLAGS and CGO_LDFLAGS to point at the library if it is not
// installed in a standard location.
//
// The C engine has global state so there can only be one Doomgeneric
// instance in a process.
package doomgeneric
