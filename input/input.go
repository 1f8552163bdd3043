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

package input

import (
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/doomkeys"
	"github.com/jetsetilly/dgvita/logger"
)

// DefaultDeadzone is the distance from the centre of an axis inside which the
// axis is considered neutral.
const DefaultDeadzone = 40

// MaxDeadzone is the largest deadzone accepted by SetDeadzone(). A larger
// value would mean that an axis could never become active.
const MaxDeadzone = AxisCentre - 1

// BadDeadzone is returned by SetDeadzone() for a value out of range.
const BadDeadzone = "input: bad deadzone: %d (range is 0 to %d)"

// Input compares controller samples and pushes key events onto an
// EventQueue.
//
// SampleAndEnqueue(), Update(), SetMapping() and SetDeadzone() must be called
// from the same goroutine. Poll() can be called from a different goroutine.
type Input struct {
	queue    *EventQueue
	mapping  Mapping
	deadzone int

	// the sample most recently passed to SampleAndEnqueue()
	previous ControllerSample

	// logical keys in the order events are generated
	keys []doomkeys.Code

	// index into keys for each binding in the mapping
	buttonKey []int
	axisKey   []int

	// key states for the current and previous sample. reused every call to
	// avoid allocation
	curr []bool
	prev []bool
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(mapping Mapping, deadzone int, queueSize int) (*Input, error) {
	q, err := NewEventQueue(queueSize)
	if err != nil {
		return nil, err
	}

	inp := &Input{
		queue:    q,
		previous: NeutralSample,
	}

	if err := inp.SetDeadzone(deadzone); err != nil {
		return nil, err
	}
	inp.SetMapping(mapping)

	return inp, nil
}

// release every key that is active in the stored previous sample under the
// current configuration. the next Update() presses whatever is held under the
// new configuration
func (inp *Input) release() {
	if len(inp.keys) > 0 {
		inp.states(inp.previous, inp.prev)
		for i, k := range inp.keys {
			if inp.prev[i] {
				inp.push(KeyEvent{Code: k, Pressed: false})
			}
		}
	}
	inp.previous = NeutralSample
}

func (inp *Input) push(ev KeyEvent) {
	if !inp.queue.Push(ev) {
		logger.Logf(logger.Allow, "input", "event queue full: dropped %s", ev)
	}
}

// SetMapping changes the mapping. The mapping is copied. Keys held under the
// old mapping are released.
func (inp *Input) SetMapping(mapping Mapping) {
	inp.release()

	inp.mapping = mapping.Clone()
	inp.keys = inp.mapping.Keys()

	idx := func(k doomkeys.Code) int {
		for i := range inp.keys {
			if inp.keys[i] == k {
				return i
			}
		}
		panic("key missing from mapping")
	}

	inp.buttonKey = make([]int, len(inp.mapping.Buttons))
	for i, b := range inp.mapping.Buttons {
		inp.buttonKey[i] = idx(b.Key)
	}
	inp.axisKey = make([]int, len(inp.mapping.Axes))
	for i, a := range inp.mapping.Axes {
		inp.axisKey[i] = idx(a.Key)
	}

	inp.curr = make([]bool, len(inp.keys))
	inp.prev = make([]bool, len(inp.keys))
}

// Mapping returns a copy of the current mapping.
func (inp *Input) Mapping() Mapping {
	return inp.mapping.Clone()
}

// SetDeadzone changes the deadzone for all axes. Keys held under the old
// deadzone are released.
func (inp *Input) SetDeadzone(deadzone int) error {
	if deadzone < 0 || deadzone > MaxDeadzone {
		return curated.Errorf(BadDeadzone, deadzone, MaxDeadzone)
	}
	inp.release()
	inp.deadzone = deadzone
	return nil
}

// Deadzone returns the current deadzone.
func (inp *Input) Deadzone() int {
	return inp.deadzone
}

// Queue returns the event queue.
func (inp *Input) Queue() *EventQueue {
	return inp.queue
}

// Previous returns the stored previous sample.
func (inp *Input) Previous() ControllerSample {
	return inp.previous
}

// states sets the state of every logical key for the sample.
func (inp *Input) states(s ControllerSample, out []bool) {
	clear(out)

	for i, b := range inp.mapping.Buttons {
		if s.Buttons&b.Button != 0 {
			out[inp.buttonKey[i]] = true
		}
	}

	for i, a := range inp.mapping.Axes {
		v := int(s.Axis(a.Axis)) - AxisCentre
		switch a.Direction {
		case Negative:
			if v < -inp.deadzone {
				out[inp.axisKey[i]] = true
			}
		case Positive:
			if v > inp.deadzone {
				out[inp.axisKey[i]] = true
			}
		}
	}
}

// SampleAndEnqueue pushes an event for every logical key whose state differs
// between the previous and current samples. Events are pushed in the order the
// keys first appear in the mapping. The current sample becomes the stored
// previous sample.
func (inp *Input) SampleAndEnqueue(current ControllerSample, previous ControllerSample) {
	inp.states(current, inp.curr)
	inp.states(previous, inp.prev)

	for i, k := range inp.keys {
		if inp.curr[i] == inp.prev[i] {
			continue
		}
		inp.push(KeyEvent{Code: k, Pressed: inp.curr[i]})
	}

	inp.previous = current
}

// Update is SampleAndEnqueue() with the stored previous sample.
func (inp *Input) Update(current ControllerSample) {
	inp.SampleAndEnqueue(current, inp.previous)
}

// Poll removes and returns the oldest key event. Returns false if there are no
// events waiting.
func (inp *Input) Poll() (KeyEvent, bool) {
	return inp.queue.Poll()
}

// Dropped returns the number of events dropped because the queue was full.
func (inp *Input) Dropped() uint64 {
	return inp.queue.Dropped()
}
