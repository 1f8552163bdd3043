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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(35)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		driver.Step()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// this is a rough attempt at frame rate limiting. only any good if the base
// performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond atomic.Int64
	secondsPerFrame atomic.Int64 // time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// A limit of zero or less is treated as one frame per second.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	go func() {
		t := time.Now()
		adjust := time.Duration(0)
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			spf := time.Duration(lim.secondsPerFrame.Load())
			time.Sleep(spf + adjust)

			// carry any oversleep into the next frame
			nt := time.Now()
			adjust -= nt.Sub(t) - spf
			adjust = max(adjust, -spf)
			adjust = min(adjust, spf)
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	framesPerSecond = max(framesPerSecond, 1)
	lim.framesPerSecond.Store(int64(framesPerSecond))
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Close stops the ticker goroutine. Wait() must not be called after Close().
func (lim *FpsLimiter) Close() {
	close(lim.quit)
}
