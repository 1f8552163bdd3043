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

// Package ebitenhost is a host using the ebiten game library. Unlike the
// other hosts, ebiten owns the main loop and so the host drives the
// platform.Driver from the ebiten Update() function.
package ebitenhost

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/version"
)

// Host is the ebiten implementation of the platform.Display and
// platform.Controller interfaces. It also implements the ebiten.Game
// interface.
type Host struct {
	width  int
	height int

	// pixels written by Present() and copied to the offscreen image in
	// Draw(). RGBA byte order
	crit   sync.Mutex
	pixels []byte
	dirty  bool

	offscreen *ebiten.Image

	kb     hosts.Keyboard
	sample input.ControllerSample

	// set by Run()
	ctx context.Context
	drv *platform.Driver
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(width int, height int, scale float64) *Host {
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowSize(int(float64(width)*scale), int(float64(height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	return &Host{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*4),
		sample: input.NeutralSample,
	}
}

// Resolution implements the platform.Display interface.
func (h *Host) Resolution() (int, int) {
	return h.width, h.height
}

// Format implements the platform.Display interface.
func (h *Host) Format() blit.PixelFormat {
	return blit.FormatABGR8888
}

// Present implements the platform.Display interface.
func (h *Host) Present(buf []uint32) error {
	if len(buf) != h.width*h.height {
		return curated.Errorf("ebiten: display buffer is the wrong size")
	}

	h.crit.Lock()
	defer h.crit.Unlock()

	for i, p := range buf {
		r, g, b := blit.FormatABGR8888.Unpack(p)
		h.pixels[i*4] = r
		h.pixels[i*4+1] = g
		h.pixels[i*4+2] = b
		h.pixels[i*4+3] = 0xff
	}
	h.dirty = true

	return nil
}

// SetTitle implements the platform.TitledDisplay interface.
func (h *Host) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Sample implements the platform.Controller interface. The sample is the one
// taken at the start of the current Update().
func (h *Host) Sample() (input.ControllerSample, error) {
	return h.sample, nil
}

// Run the driver until the window is closed or the context is done. Must be
// called from the main thread.
func (h *Host) Run(ctx context.Context, drv *platform.Driver) error {
	h.ctx = ctx
	h.drv = drv
	return ebiten.RunGame(h)
}

// Update implements the ebiten.Game interface.
func (h *Host) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if h.ctx != nil {
		select {
		case <-h.ctx.Done():
			return ebiten.Termination
		default:
		}
	}

	if !ebiten.IsFocused() {
		h.kb.ReleaseAll()
	}

	h.sample = h.poll()

	if h.drv == nil {
		return nil
	}

	if err := h.drv.Step(); err != nil {
		if curated.Is(err, platform.Closed) {
			return ebiten.Termination
		}
		return err
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.offscreen == nil {
		h.offscreen = ebiten.NewImage(h.width, h.height)
	}

	h.crit.Lock()
	if h.dirty {
		h.offscreen.WritePixels(h.pixels)
		h.dirty = false
	}
	h.crit.Unlock()

	screen.DrawImage(h.offscreen, nil)
}

// Layout implements the ebiten.Game interface. The logical screen is always
// the size of the display buffer and ebiten scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}
