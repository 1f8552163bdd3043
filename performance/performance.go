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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/platform"
)

// Leadtime is the period the driver runs for before measurement begins. It
// allows the frame rate to settle down.
var Leadtime = 2 * time.Second

// Check the performance of the driver. The engine must already have been
// created.
//
// The driver will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(ctx context.Context, output io.Writer, profile Profile, drv *platform.Driver, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	if Leadtime > 0 {
		lead, cancel := context.WithTimeout(ctx, Leadtime)
		err := drv.Run(lead)
		cancel()
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	// the context may have been cancelled during the lead time
	if ctx.Err() != nil {
		return nil
	}

	startFrame := drv.Backend().Frames()
	startTime := time.Now()

	runner := func() error {
		measure, cancel := context.WithTimeout(ctx, duration)
		defer cancel()
		return drv.Run(measure)
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the driver may have stopped before the duration elapsed
	elapsed := time.Since(startTime).Seconds()

	numFrames := drv.Backend().Frames() - startFrame
	fps, accuracy := CalcFPS(numFrames, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed, accuracy)

	return nil
}
