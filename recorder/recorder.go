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
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/digest"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/logger"
	"github.com/jetsetilly/dgvita/platform"
)

// Recorder implements the platform.Controller interface. Samples are taken
// from the wrapped controller and written to the recording when they change.
type Recorder struct {
	ctrl platform.Controller
	dig  *digest.Video

	output io.WriteCloser

	step int
	last input.ControllerSample
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The digest must be the display used by the platform.Backend. The
// engine arguments are written to the recording for information.
func NewRecorder(transcript string, ctrl platform.Controller, dig *digest.Video, args []string) (*Recorder, error) {
	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{
		ctrl:   ctrl,
		dig:    dig,
		output: f,
		last:   input.NeutralSample,
	}

	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineArgs] = strings.Join(args, " ")
	lines[lineResolution] = resolution(dig.Resolution())

	if err := rec.write(strings.Join(lines, "\n")); err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return rec, nil
}

func (rec *Recorder) write(line string) error {
	_, err := io.WriteString(rec.output, fmt.Sprintf("%s\n", line))
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// Sample implements the platform.Controller interface.
func (rec *Recorder) Sample() (input.ControllerSample, error) {
	s, err := rec.ctrl.Sample()
	if err != nil {
		return s, err
	}

	// the first sample is always written so that the recording starts with a
	// hash of the initial state
	if s != rec.last || rec.step == 0 {
		e := entry{step: rec.step, sample: s, hash: rec.dig.Hash()}
		if err := rec.write(e.String()); err != nil {
			return s, err
		}
		rec.last = s
	}

	rec.step++

	return s, nil
}

// End the recording. The final entry marks the end of the recording.
func (rec *Recorder) End() error {
	e := entry{step: rec.step, sample: rec.last, hash: rec.dig.Hash()}
	err := rec.write(e.String())

	if cerr := rec.output.Close(); cerr != nil && err == nil {
		err = curated.Errorf("recorder: %v", cerr)
	}

	logger.Logf(logger.Allow, "recorder", "recording ended after %d steps", rec.step)

	return err
}
