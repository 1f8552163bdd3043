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

package recorder_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/digest"
	"github.com/jetsetilly/dgvita/engine/testcard"
	"github.com/jetsetilly/dgvita/hosts/headless"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/recorder"
	"github.com/jetsetilly/dgvita/test"
)

var args = []string{"dgvita", "-iwad", "chex.wad"}

// the script moves the testcard marker so that the frames depend on the
// samples
func script() []input.ControllerSample {
	var s []input.ControllerSample
	for i := range 20 {
		c := input.NeutralSample
		switch {
		case i < 5:
			c.Buttons = input.Right
		case i < 10:
			c.LY = 0
		case i < 12:
			c.Buttons = input.Cross
		}
		s = append(s, c)
	}
	return s
}

func newDriver(t *testing.T, display platform.Display, ctrl platform.Controller) *platform.Driver {
	t.Helper()

	m, err := input.Preset(input.PresetDisplay)
	test.DemandSuccess(t, err)
	inp, err := input.NewInput(m, input.DefaultDeadzone, input.DefaultQueueSize)
	test.DemandSuccess(t, err)

	be, err := platform.NewBackend(display, inp, testcard.NewTestcard(64, 40))
	test.DemandSuccess(t, err)

	drv := platform.NewDriver(be, ctrl)
	t.Cleanup(drv.Close)
	test.DemandSuccess(t, drv.Create(args))

	return drv
}

func record(t *testing.T, fn string) string {
	t.Helper()

	h := headless.NewHost(96, 60, blit.FormatABGR8888)
	h.SetScript(script())
	h.SetFrameLimit(len(script()))
	dig := digest.NewVideo(h)

	rec, err := recorder.NewRecorder(fn, h, dig, args)
	test.DemandSuccess(t, err)

	drv := newDriver(t, dig, rec)
	test.DemandSuccess(t, drv.Run(context.Background()))
	test.DemandSuccess(t, rec.End())

	return dig.Hash()
}

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")
	recorded := record(t, fn)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	test.ExpectEquality(t, lines[0], "dgvita recording v1")
	test.ExpectEquality(t, lines[1], "dgvita -iwad chex.wad")
	test.ExpectEquality(t, lines[2], "96x60")

	// only changes are recorded. right, LY, cross, neutral and the final
	// entry
	test.ExpectEquality(t, len(lines), 3+5)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Args, "dgvita -iwad chex.wad")

	h := headless.NewHost(96, 60, blit.FormatABGR8888)
	dig := digest.NewVideo(h)
	test.DemandSuccess(t, plb.Attach(dig))

	drv := newDriver(t, dig, plb)
	test.ExpectSuccess(t, drv.Run(context.Background()))
	test.ExpectEquality(t, h.Frames(), len(script()))
	test.ExpectEquality(t, dig.Hash(), recorded)
	test.ExpectEquality(t, plb.String(), "20/20 (100.0%)")
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")
	_ = record(t, fn)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	h := headless.NewHost(96, 60, blit.FormatABGR8888)
	dig := digest.NewVideo(h)
	test.DemandSuccess(t, plb.Attach(dig))

	// a different engine resolution produces different frames
	m, _ := input.Preset(input.PresetDisplay)
	inp, _ := input.NewInput(m, input.DefaultDeadzone, input.DefaultQueueSize)
	be, err := platform.NewBackend(dig, inp, testcard.NewTestcard(64, 48))
	test.DemandSuccess(t, err)
	drv := platform.NewDriver(be, plb)
	defer drv.Close()
	test.DemandSuccess(t, drv.Create(args))

	err = drv.Run(context.Background())
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackHashError))
}

func TestBadRecordings(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "notrecording")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello\n"), 0o600))
	_, err := recorder.NewPlayback(fn)
	test.ExpectSuccess(t, curated.Is(err, recorder.NotRecording))

	fn = filepath.Join(dir, "badline")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("dgvita recording v1\n\n96x60\n0, 0000, 128\n"), 0o600))
	_, err = recorder.NewPlayback(fn)
	test.ExpectFailure(t, err)

	fn = filepath.Join(dir, "order")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("dgvita recording v1\n\n96x60\n"+
		"5, 0000, 128, 128, 128, 128, 00\n"+
		"2, 0000, 128, 128, 128, 128, 00\n"), 0o600))
	_, err = recorder.NewPlayback(fn)
	test.ExpectFailure(t, err)

	fn = filepath.Join(dir, "resolution")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("dgvita recording v1\n\n96x60\n"), 0o600))
	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, plb.Attach(digest.NewVideo(headless.NewHost(10, 10, blit.FormatABGR8888))))

	// an empty recording ends immediately
	test.DemandSuccess(t, plb.Attach(digest.NewVideo(headless.NewHost(96, 60, blit.FormatABGR8888))))
	_, err = plb.Sample()
	test.ExpectSuccess(t, curated.Is(err, platform.Closed))
}
