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
	"context"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/logger"
	"github.com/jetsetilly/dgvita/performance/limiter"
)

// Driver runs the main loop.
type Driver struct {
	backend    *Backend
	controller Controller

	// frame cap. nil if there is no cap
	limiter *limiter.FpsLimiter

	steps int
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(backend *Backend, controller Controller) *Driver {
	return &Driver{
		backend:    backend,
		controller: controller,
	}
}

// Backend returns the backend being driven.
func (drv *Driver) Backend() *Backend {
	return drv.backend
}

// Input returns the input used by the backend.
func (drv *Driver) Input() *input.Input {
	return drv.backend.input
}

// Steps returns the number of calls to Step() that have completed.
func (drv *Driver) Steps() int {
	return drv.steps
}

// Create the engine with the arguments. The backend is given to the engine as
// its callbacks.
func (drv *Driver) Create(args []string) error {
	logger.Logf(logger.Allow, "platform", "engine arguments: %v", args)
	if err := drv.backend.engine.Create(args, drv.backend); err != nil {
		return curated.Errorf("platform: %v", err)
	}
	return nil
}

// SetFPSCap limits the number of steps per second. A value of zero or less
// removes the limit.
func (drv *Driver) SetFPSCap(fps int) {
	if fps <= 0 {
		if drv.limiter != nil {
			drv.limiter.Close()
			drv.limiter = nil
		}
		return
	}
	if drv.limiter == nil {
		drv.limiter = limiter.NewFPSLimiter(fps)
		return
	}
	drv.limiter.SetLimit(fps)
}

// Close releases the resources used by the driver. The engine and the host
// are not affected.
func (drv *Driver) Close() {
	drv.SetFPSCap(0)
}

// Step samples the controller, updates the input queue and ticks the engine.
func (drv *Driver) Step() error {
	s, err := drv.controller.Sample()
	if err != nil {
		return err
	}
	drv.backend.input.Update(s)

	if err := drv.backend.engine.Tick(); err != nil {
		return curated.Errorf("platform: %v", err)
	}

	drv.steps++
	return nil
}

// Run calls Step() until the context is done, the controller reports that the
// host has been closed or an error occurs. Returns nil for a normal end.
func (drv *Driver) Run(ctx context.Context) error {
	defer func() {
		logger.Logf(logger.Allow, "platform", "%d steps, %d frames, %d events dropped",
			drv.steps, drv.backend.Frames(), drv.backend.input.Dropped())
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if drv.limiter != nil {
			drv.limiter.Wait()
		}

		if err := drv.Step(); err != nil {
			if curated.Is(err, Closed) {
				return nil
			}
			return err
		}
	}
}
