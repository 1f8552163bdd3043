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

// Package engine defines the contract between a game engine and the platform
// it runs on.
//
// The engine calls the platform through the Callbacks interface. The
// platform drives the engine through the Engine interface. The engine's
// frame buffer is a fixed size slice of 0x00RRGGBB pixels that is read by
// the platform during DrawFrame().
package engine

import "github.com/jetsetilly/dgvita/doomkeys"

// Callbacks are the functions an engine requires of the platform.
type Callbacks interface {
	// Init is called once before the first tick. The origin for
	// GetTicksMs() is the time of this call.
	Init()

	// DrawFrame is called once per tick when the frame buffer is complete.
	DrawFrame()

	// SleepMs pauses the calling goroutine for approximately ms
	// milliseconds.
	SleepMs(ms uint32)

	// GetTicksMs returns the number of milliseconds since Init().
	GetTicksMs() uint32

	// GetKey returns the oldest pending key event. The ok value is false if
	// there are no pending events.
	GetKey() (pressed bool, key doomkeys.Code, ok bool)

	// SetWindowTitle is a request to change the title of the window. The
	// request can be ignored.
	SetWindowTitle(title string)
}

// Engine is the interface to a game engine.
type Engine interface {
	// Create initialises the engine with the command line arguments. The
	// first argument is the program name. The engine calls Init() on the
	// callbacks before Create() returns.
	Create(args []string, cb Callbacks) error

	// Tick advances the engine by one step. DrawFrame() is called during the
	// tick.
	Tick() error

	// ScreenBuffer returns the engine's frame buffer. Can be nil before
	// Create() has been called.
	ScreenBuffer() []uint32

	// Resolution returns the size of the frame buffer.
	Resolution() (width int, height int)
}

// Resolution of the doomgeneric frame buffer unless the engine is built
// otherwise.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// TicRate is the number of game tics per second. An engine that keeps its own
// time will not tick more often than this on average.
const TicRate = 35
