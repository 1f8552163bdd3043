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

// Package testcard is an engine that draws a test card. It requires no game
// data and is used when the program is built without the doomgeneric engine.
//
// The card is made of eight colour bars above a greyscale ramp. A marker is
// moved with the arrow keys and the strafe keys. The bottom rows of the card
// show which keys are held, one column per key code. The USE key inverts the
// marker and ESCAPE inverts the whole card.
//
// Drawing is deterministic. The same sequence of key events always produces
// the same sequence of frames.
package testcard

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/doomkeys"
	"github.com/jetsetilly/dgvita/engine"
)

// TicRate is the number of ticks per second when pacing is enabled.
const TicRate = engine.TicRate

// the size of the marker in pixels
const markerSize = 16

// the number of pixels the marker moves each tick
const markerSpeed = 4

// the height of the held key display
const keyStripHeight = 8

// Sentinel error patterns.
const (
	NotCreated = "testcard: engine has not been created"
	BadArgs    = "testcard: bad arguments: %v"
)

// the eight colour bars
var bars = []uint32{
	0xffffff, 0xffff00, 0x00ffff, 0x00ff00,
	0xff00ff, 0xff0000, 0x0000ff, 0x000000,
}

// Testcard implements the engine.Engine interface.
type Testcard struct {
	// sleep between ticks so that the engine runs at TicRate
	Paced bool

	width  int
	height int

	cb     engine.Callbacks
	buffer []uint32

	iwad  string
	pwads []string

	frame  int
	x, y   int
	held   [256]bool
	escape bool

	// the tick count at the start of the most recent frame
	lastTicks uint32
}

// NewTestcard is the preferred method of initialisation for the Testcard
// type.
func NewTestcard(width int, height int) *Testcard {
	return &Testcard{
		width:  width,
		height: height,
	}
}

func (tc *Testcard) String() string {
	return fmt.Sprintf("testcard %dx%d frame %d", tc.width, tc.height, tc.frame)
}

// Create implements the engine.Engine interface. The -iwad and -file
// arguments are recorded and shown in the window title but the files are
// never read.
func (tc *Testcard) Create(args []string, cb engine.Callbacks) error {
	if tc.width < markerSize || tc.height < keyStripHeight+markerSize {
		return curated.Errorf(BadArgs, fmt.Sprintf("resolution %dx%d", tc.width, tc.height))
	}

	tc.iwad = ""
	tc.pwads = tc.pwads[:0]
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-iwad":
			if i+1 >= len(args) {
				return curated.Errorf(BadArgs, "-iwad requires a value")
			}
			i++
			tc.iwad = args[i]
		case "-file":
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				tc.pwads = append(tc.pwads, args[i])
			}
		}
	}

	tc.cb = cb
	tc.buffer = make([]uint32, tc.width*tc.height)
	tc.frame = 0
	tc.x = (tc.width - markerSize) / 2
	tc.y = (tc.height - keyStripHeight - markerSize) / 2
	tc.held = [256]bool{}
	tc.escape = false

	tc.cb.Init()
	tc.lastTicks = tc.cb.GetTicksMs()

	title := "testcard"
	if tc.iwad != "" {
		title = fmt.Sprintf("testcard: %s", filepath.Base(tc.iwad))
	}
	tc.cb.SetWindowTitle(title)

	return nil
}

// IWAD returns the value of the -iwad argument given to Create().
func (tc *Testcard) IWAD() string {
	return tc.iwad
}

// PWADs returns the values of the -file argument given to Create().
func (tc *Testcard) PWADs() []string {
	return slices.Clone(tc.pwads)
}

// Frame returns the number of frames drawn since Create().
func (tc *Testcard) Frame() int {
	return tc.frame
}

// Held returns true if the key is currently held.
func (tc *Testcard) Held(key doomkeys.Code) bool {
	return tc.held[key]
}

// Marker returns the position of the top left corner of the marker.
func (tc *Testcard) Marker() (int, int) {
	return tc.x, tc.y
}

// ScreenBuffer implements the engine.Engine interface.
func (tc *Testcard) ScreenBuffer() []uint32 {
	return tc.buffer
}

// Resolution implements the engine.Engine interface.
func (tc *Testcard) Resolution() (int, int) {
	return tc.width, tc.height
}

// Tick implements the engine.Engine interface.
func (tc *Testcard) Tick() error {
	if tc.cb == nil {
		return curated.Errorf(NotCreated)
	}

	for {
		pressed, key, ok := tc.cb.GetKey()
		if !ok {
			break
		}
		tc.held[key] = pressed
		if key == doomkeys.Escape && pressed {
			tc.escape = !tc.escape
		}
	}

	tc.move()
	tc.draw()
	tc.frame++
	tc.cb.DrawFrame()

	if tc.Paced {
		const msPerTic = 1000 / TicRate
		now := tc.cb.GetTicksMs()
		if elapsed := now - tc.lastTicks; elapsed < msPerTic {
			tc.cb.SleepMs(msPerTic - elapsed)
		}
		tc.lastTicks = tc.cb.GetTicksMs()
	}

	return nil
}

func (tc *Testcard) move() {
	if tc.held[doomkeys.LeftArrow] || tc.held[doomkeys.StrafeL] {
		tc.x -= markerSpeed
	}
	if tc.held[doomkeys.RightArrow] || tc.held[doomkeys.StrafeR] {
		tc.x += markerSpeed
	}
	if tc.held[doomkeys.UpArrow] {
		tc.y -= markerSpeed
	}
	if tc.held[doomkeys.DownArrow] {
		tc.y += markerSpeed
	}
	tc.x = min(max(tc.x, 0), tc.width-markerSize)
	tc.y = min(max(tc.y, 0), tc.height-keyStripHeight-markerSize)
}

func (tc *Testcard) draw() {
	card := tc.height - keyStripHeight
	ramp := card * 2 / 3

	var invert uint32
	if tc.escape {
		invert = 0xffffff
	}

	for y := range tc.height {
		row := tc.buffer[y*tc.width : (y+1)*tc.width]
		for x := range row {
			var c uint32
			switch {
			case y < ramp:
				c = bars[x*len(bars)/tc.width]
			case y < card:
				v := uint32(x * 256 / tc.width)
				c = v<<16 | v<<8 | v
			default:
				if tc.held[x*256/tc.width] {
					c = 0xffffff
				}
			}
			row[x] = c ^ invert
		}
	}

	marker := uint32(0xffffff)
	if tc.held[doomkeys.Use] {
		marker = 0x000000
	}
	if tc.held[doomkeys.Fire] {
		marker = 0xff8000
	}
	for y := tc.y; y < tc.y+markerSize; y++ {
		for x := tc.x; x < tc.x+markerSize; x++ {
			tc.buffer[y*tc.width+x] = marker ^ invert
		}
	}
}
