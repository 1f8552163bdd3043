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
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/doomkeys"
)

// KeyEvent is a single press or release of a logical key.
type KeyEvent struct {
	Code    doomkeys.Code
	Pressed bool
}

func (ev KeyEvent) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s pressed", ev.Code)
	}
	return fmt.Sprintf("%s released", ev.Code)
}

// DefaultQueueSize is the capacity of the event queue unless configured
// otherwise. One slot is always unused so the queue holds at most
// DefaultQueueSize-1 events.
const DefaultQueueSize = 64

// MinQueueSize is the smallest capacity accepted by NewEventQueue().
const MinQueueSize = 2

// BadQueueSize is returned by NewEventQueue() for a capacity that is too small.
const BadQueueSize = "input: bad queue size: %d (minimum is %d)"

// EventQueue is a fixed capacity ring buffer of key events.
//
// The queue is empty when the write and read cursors are equal. It is full
// when advancing the write cursor would make it equal to the read cursor.
// Pushing to a full queue drops the event and leaves the queue unchanged.
//
// Push() and Poll() can be called from different goroutines so long as there
// is only one goroutine pushing and one goroutine polling.
type EventQueue struct {
	events []KeyEvent

	// cursors are indices into the events array. write is only changed by
	// Push() and read is only changed by Poll()
	write atomic.Uint32
	read  atomic.Uint32

	dropped atomic.Uint64
}

// NewEventQueue is the preferred method of initialisation for the EventQueue
// type.
func NewEventQueue(capacity int) (*EventQueue, error) {
	if capacity < MinQueueSize {
		return nil, curated.Errorf(BadQueueSize, capacity, MinQueueSize)
	}
	return &EventQueue{
		events: make([]KeyEvent, capacity),
	}, nil
}

func (q *EventQueue) String() string {
	return fmt.Sprintf("%d/%d events (%d dropped)", q.Len(), q.Cap(), q.Dropped())
}

func (q *EventQueue) advance(i uint32) uint32 {
	i++
	if i == uint32(len(q.events)) {
		return 0
	}
	return i
}

// Push adds the event to the queue. Returns false if the queue is full and the
// event has been dropped.
func (q *EventQueue) Push(ev KeyEvent) bool {
	w := q.write.Load()
	next := q.advance(w)
	if next == q.read.Load() {
		q.dropped.Add(1)
		return false
	}
	q.events[w] = ev
	q.write.Store(next)
	return true
}

// Poll removes and returns the oldest event in the queue. Returns false if
// the queue is empty. Never blocks.
func (q *EventQueue) Poll() (KeyEvent, bool) {
	r := q.read.Load()
	if r == q.write.Load() {
		return KeyEvent{}, false
	}
	ev := q.events[r]
	q.read.Store(q.advance(r))
	return ev, true
}

// Len returns the number of events waiting in the queue.
func (q *EventQueue) Len() int {
	w := int(q.write.Load())
	r := int(q.read.Load())
	if w >= r {
		return w - r
	}
	return len(q.events) - r + w
}

// Cap returns the maximum number of events the queue can hold. This is one
// fewer than the capacity given to NewEventQueue().
func (q *EventQueue) Cap() int {
	return len(q.events) - 1
}

// Cursors returns the current write and read cursors.
func (q *EventQueue) Cursors() (write int, read int) {
	return int(q.write.Load()), int(q.read.Load())
}

// Dropped returns the number of events that have been dropped because the
// queue was full.
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
