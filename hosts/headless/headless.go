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

// Package headless is a host without a window. Frames are counted and the
// most recent frame is kept so that it can be saved as a screenshot.
package headless

import (
	"sync"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/screenshot"
)

// Default resolution of the headless display. The same as the Vita screen.
const (
	DefaultWidth  = 960
	DefaultHeight = 544
)

// Host is a headless display and controller.
type Host struct {
	crit sync.Mutex

	width  int
	height int
	format blit.PixelFormat

	last   []uint32
	frames int
	title  string

	// the host reports that it has been closed once this many frames have
	// been presented. zero means never
	limit int

	// script of samples returned by Sample(). the final sample is repeated
	script []input.ControllerSample
	sample int
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(width int, height int, format blit.PixelFormat) *Host {
	return &Host{
		width:  width,
		height: height,
		format: format,
		last:   make([]uint32, width*height),
	}
}

// SetFrameLimit sets the number of frames after which the host reports that
// it has been closed. A value of zero or less removes the limit.
func (h *Host) SetFrameLimit(frames int) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.limit = max(frames, 0)
}

// SetScript sets the samples returned by successive calls to Sample(). Once
// the script is exhausted the final sample is repeated. An empty script
// means the neutral sample.
func (h *Host) SetScript(script []input.ControllerSample) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.script = script
	h.sample = 0
}

// Resolution implements the platform.Display interface.
func (h *Host) Resolution() (int, int) {
	return h.width, h.height
}

// Format implements the platform.Display interface.
func (h *Host) Format() blit.PixelFormat {
	return h.format
}

// Present implements the platform.Display interface.
func (h *Host) Present(buf []uint32) error {
	h.crit.Lock()
	defer h.crit.Unlock()
	copy(h.last, buf)
	h.frames++
	return nil
}

// SetTitle implements the platform.TitledDisplay interface.
func (h *Host) SetTitle(title string) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.title = title
}

// Sample implements the platform.Controller interface.
func (h *Host) Sample() (input.ControllerSample, error) {
	h.crit.Lock()
	defer h.crit.Unlock()

	if h.limit > 0 && h.frames >= h.limit {
		return input.NeutralSample, curated.Errorf(platform.Closed)
	}

	if len(h.script) == 0 {
		return input.NeutralSample, nil
	}

	s := h.script[min(h.sample, len(h.script)-1)]
	h.sample++
	return s, nil
}

// Frames returns the number of frames presented.
func (h *Host) Frames() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.frames
}

// Title returns the most recent title.
func (h *Host) Title() string {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.title
}

// LastFrame returns a copy of the most recently presented frame.
func (h *Host) LastFrame() []uint32 {
	h.crit.Lock()
	defer h.crit.Unlock()
	return append([]uint32(nil), h.last...)
}

// Screenshot saves the most recently presented frame to the named file.
func (h *Host) Screenshot(path string) error {
	return screenshot.Save(path, h.LastFrame(), h.width, h.height, h.format)
}
