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

package recorder

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/digest"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
)

// Sentinel error patterns.
const (
	PlaybackHashError = "playback: unexpected output at line %d (step %d)"
	NotRecording      = "playback: %s is not a recording"
)

// Playback implements the platform.Controller interface. Samples are taken
// from a previously made recording.
type Playback struct {
	transcript string

	// information from the header
	Args       string
	Resolution string

	sequence []entry
	seqCt    int

	dig *digest.Video

	step    int
	current input.ControllerSample

	// the step of the last entry
	endStep int
}

func (plb *Playback) String() string {
	if plb.endStep == 0 {
		return fmt.Sprintf("%d/%d", plb.step, plb.endStep)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.step, plb.endStep, 100*(float64(plb.step)/float64(plb.endStep)))
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	buffer, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(strings.TrimRight(string(buffer), "\n"), "\n")
	if len(lines) < numHeaderLines || lines[lineMagic] != magicString {
		return nil, curated.Errorf(NotRecording, transcript)
	}

	plb := &Playback{
		transcript: transcript,
		Args:       lines[lineArgs],
		Resolution: lines[lineResolution],
		current:    input.NeutralSample,
	}

	for i := numHeaderLines; i < len(lines); i++ {
		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, curated.Errorf("playback: line %d: %v", i+1, err)
		}

		// entries must be in step order
		if len(plb.sequence) > 0 && e.step <= plb.sequence[len(plb.sequence)-1].step {
			return nil, curated.Errorf("playback: line %d: step out of order", i+1)
		}

		plb.sequence = append(plb.sequence, e)
		plb.endStep = e.step
	}

	return plb, nil
}

// Attach the display digest. The resolution of the display must match the
// recording.
func (plb *Playback) Attach(dig *digest.Video) error {
	if r := resolution(dig.Resolution()); r != plb.Resolution {
		return curated.Errorf("playback: recording was made with a display of %s. trying to playback with a display of %s", plb.Resolution, r)
	}
	plb.dig = dig
	return nil
}

// Sample implements the platform.Controller interface. Returns the
// platform.Closed error once the end of the recording has been reached.
func (plb *Playback) Sample() (input.ControllerSample, error) {
	if plb.seqCt < len(plb.sequence) {
		e := plb.sequence[plb.seqCt]
		if e.step == plb.step {
			plb.seqCt++
			if plb.dig != nil && e.hash != plb.dig.Hash() {
				return input.NeutralSample, curated.Errorf(PlaybackHashError, e.line, e.step)
			}
			plb.current = e.sample
		}
	}

	// the final entry marks the end of the recording
	if plb.step >= plb.endStep {
		return input.NeutralSample, curated.Errorf(platform.Closed)
	}

	plb.step++

	return plb.current, nil
}
