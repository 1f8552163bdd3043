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

// Package digest creates fingerprints of the frames presented to a display.
// The fingerprint of each frame is chained to the fingerprint of the previous
// frame so the Hash() of the most recent frame identifies the entire
// sequence of frames.
//
// Used by the recorder package to check that a playback is producing the same
// output as the recording.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/jetsetilly/dgvita/platform"
)

// Video wraps a platform.Display. Every frame presented is added to the
// digest before being passed to the wrapped display.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	platform.Display

	crit   sync.Mutex
	digest [sha1.Size]byte
	frames int

	// the previous digest followed by the frame's pixels
	pixels []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(display platform.Display) *Video {
	w, h := display.Resolution()
	return &Video{
		Display: display,
		pixels:  make([]byte, sha1.Size+w*h*4),
	}
}

// Hash of the most recent frame.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frames
}

// ResetDigest forgets all previous frames.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Present implements the platform.Display interface.
func (dig *Video) Present(buf []uint32) error {
	dig.crit.Lock()

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	for _, p := range buf {
		if n+4 > len(dig.pixels) {
			break
		}
		binary.LittleEndian.PutUint32(dig.pixels[n:], p)
		n += 4
	}
	dig.digest = sha1.Sum(dig.pixels[:n])
	dig.frames++

	dig.crit.Unlock()

	return dig.Display.Present(buf)
}

// SetTitle implements the platform.TitledDisplay interface. The title is
// passed on if the wrapped display accepts titles.
func (dig *Video) SetTitle(title string) {
	if d, ok := dig.Display.(platform.TitledDisplay); ok {
		d.SetTitle(title)
	}
}
