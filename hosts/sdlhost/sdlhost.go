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

// Package sdlhost is a host using an SDL window and SDL game controllers.
//
// SDL requires that all calls are made from the main thread. The host does no
// work of its own; it must be driven from the goroutine that created it and
// that goroutine must be locked to the main thread.
package sdlhost

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/logger"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/version"
)

// Host is the SDL implementation of the platform.Display and
// platform.Controller interfaces.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int

	pads []pad
	kb   hosts.Keyboard

	closed bool
}

// NewHost is the preferred method of initialisation for the Host type. The
// window is scaled by the scale value but the display buffer is always width
// by height pixels.
func NewHost(width int, height int, scale float32) (*Host, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	h := &Host{
		width:  width,
		height: height,
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	h.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(width)*scale), int32(float32(height)*scale),
		uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		h.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	h.renderer, err = sdl.CreateRenderer(h.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		h.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// keep the aspect ratio when the window is resized
	err = h.renderer.SetLogicalSize(int32(width), int32(height))
	if err != nil {
		h.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	h.texture, err = h.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		h.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// add game controllers present at startup. controllers attached later
	// are added by the event loop
	for i := 0; i < sdl.NumJoysticks(); i++ {
		h.openPad(i)
	}
	if len(h.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	return h, nil
}

// an open game controller and its joystick instance
type pad struct {
	ctrl *sdl.GameController
	id   sdl.JoystickID
}

// hasPad returns true if the joystick instance is already open.
func hasPad(pads []pad, id sdl.JoystickID) bool {
	for _, p := range pads {
		if p.id == id {
			return true
		}
	}
	return false
}

// open the controller at the device index. SDL sends a device added event for
// controllers present at startup so the same device can be seen twice
func (h *Host) openPad(idx int) {
	if !sdl.IsGameController(idx) {
		return
	}
	if hasPad(h.pads, sdl.JoystickGetDeviceInstanceID(idx)) {
		return
	}
	ctrl := sdl.GameControllerOpen(idx)
	if ctrl == nil || !ctrl.Attached() {
		return
	}
	logger.Logf(logger.Allow, "sdl", "gamepad: %s", ctrl.Name())
	h.pads = append(h.pads, pad{ctrl: ctrl, id: ctrl.Joystick().InstanceID()})
}

// remove controllers that are no longer attached
func (h *Host) prunePads() {
	n := h.pads[:0]
	for _, p := range h.pads {
		if p.ctrl.Attached() {
			n = append(n, p)
		} else {
			logger.Logf(logger.Allow, "sdl", "gamepad removed: %s", p.ctrl.Name())
			p.ctrl.Close()
		}
	}
	h.pads = n
}

// Destroy the window and release all SDL resources.
func (h *Host) Destroy() {
	for _, p := range h.pads {
		p.ctrl.Close()
	}
	h.pads = nil
	if h.texture != nil {
		_ = h.texture.Destroy()
	}
	if h.renderer != nil {
		_ = h.renderer.Destroy()
	}
	if h.window != nil {
		_ = h.window.Destroy()
	}
	sdl.Quit()
}

// Resolution implements the platform.Display interface.
func (h *Host) Resolution() (int, int) {
	return h.width, h.height
}

// Format implements the platform.Display interface. The pixel layout matches
// the SDL_PIXELFORMAT_ABGR8888 texture.
func (h *Host) Format() blit.PixelFormat {
	return blit.FormatABGR8888
}

// Present implements the platform.Display interface.
func (h *Host) Present(buf []uint32) error {
	if len(buf) != h.width*h.height {
		return curated.Errorf("sdl: display buffer is the wrong size")
	}

	err := h.texture.Update(nil, unsafe.Pointer(&buf[0]), h.width*4)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = h.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = h.renderer.Copy(h.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	h.renderer.Present()

	return nil
}

// SetTitle implements the platform.TitledDisplay interface.
func (h *Host) SetTitle(title string) {
	h.window.SetTitle(title)
}

// Sample implements the platform.Controller interface. Pending SDL events are
// serviced before the sample is taken.
func (h *Host) Sample() (input.ControllerSample, error) {
	h.service()
	if h.closed {
		return input.NeutralSample, curated.Errorf(platform.Closed)
	}

	s := input.NeutralSample
	if len(h.pads) > 0 {
		s = padSample(h.pads[0].ctrl)
	}

	return h.kb.Merge(s), nil
}

func (h *Host) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			h.closed = true

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				h.kb.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			k, ok := keys[ev.Keysym.Sym]
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				h.kb.Press(k)
			case sdl.KEYUP:
				h.kb.Release(k)
			}

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				h.openPad(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				h.prunePads()
			}
		}
	}
}
