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

package platform

import (
	"time"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/doomkeys"
	"github.com/jetsetilly/dgvita/engine"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/logger"
)

// Backend implements the engine.Callbacks interface.
type Backend struct {
	display Display
	input   *input.Input
	engine  engine.Engine
	blitter *blit.Blitter

	// the display buffer. rewritten completely every frame
	buffer []uint32

	// the time Init() was called
	origin time.Time

	// the source of time. replaced in tests
	clock Clock

	frames        int
	presentErrors int
	title         string
}

// Clock is the source of time for the Backend.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// NewBackend is the preferred method of initialisation for the Backend type.
// The engine's resolution is read immediately and must not change.
func NewBackend(display Display, inp *input.Input, eng engine.Engine) (*Backend, error) {
	sw, sh := eng.Resolution()
	dw, dh := display.Resolution()

	blt, err := blit.NewBlitter(blit.Size{Width: sw, Height: sh}, blit.Size{Width: dw, Height: dh}, display.Format())
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}

	be := &Backend{
		display: display,
		input:   inp,
		engine:  eng,
		blitter: blt,
		buffer:  make([]uint32, dw*dh),
		clock:   systemClock{},
	}
	be.origin = be.clock.Now()

	logger.Logf(logger.Allow, "platform", "blitter: %s", blt)

	return be, nil
}

// SetClock changes the source of time. Should be called before Init().
func (be *Backend) SetClock(clk Clock) {
	be.clock = clk
	be.origin = clk.Now()
}

// Buffer returns the display buffer. The contents are those of the most
// recent frame.
func (be *Backend) Buffer() []uint32 {
	return be.buffer
}

// Blitter returns the blitter used by DrawFrame().
func (be *Backend) Blitter() *blit.Blitter {
	return be.blitter
}

// Frames returns the number of frames presented.
func (be *Backend) Frames() int {
	return be.frames
}

// PresentErrors returns the number of frames that could not be presented.
func (be *Backend) PresentErrors() int {
	return be.presentErrors
}

// Title returns the most recent title requested by the engine.
func (be *Backend) Title() string {
	return be.title
}

// Init implements the engine.Callbacks interface.
func (be *Backend) Init() {
	be.origin = be.clock.Now()
}

// DrawFrame implements the engine.Callbacks interface.
func (be *Backend) DrawFrame() {
	src := be.engine.ScreenBuffer()
	if src == nil {
		return
	}

	if err := be.blitter.Blit(be.buffer, src); err != nil {
		be.presentErrors++
		logger.Log(logger.Allow, "platform", err)
		return
	}

	if err := be.display.Present(be.buffer); err != nil {
		be.presentErrors++
		logger.Logf(logger.Allow, "platform", "present: %v", err)
		return
	}

	be.frames++
}

// SleepMs implements the engine.Callbacks interface.
func (be *Backend) SleepMs(ms uint32) {
	be.clock.Sleep(time.Duration(ms) * time.Millisecond)
}

// GetTicksMs implements the engine.Callbacks interface.
func (be *Backend) GetTicksMs() uint32 {
	return uint32(be.clock.Now().Sub(be.origin).Milliseconds())
}

// GetKey implements the engine.Callbacks interface.
func (be *Backend) GetKey() (bool, doomkeys.Code, bool) {
	ev, ok := be.input.Poll()
	if !ok {
		return false, 0, false
	}
	return ev.Pressed, ev.Code, true
}

// SetWindowTitle implements the engine.Callbacks interface.
func (be *Backend) SetWindowTitle(title string) {
	be.title = title
	if d, ok := be.display.(TitledDisplay); ok {
		d.SetTitle(title)
	}
}
