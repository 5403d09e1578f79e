// Package queue provides a reference bounded FIFO implementing fsm.Queue,
// the capability interface the core engine consumes for its event queue.
//
// Ring is a fixed-capacity circular buffer using masked index arithmetic,
// adapted from the masking technique in the example pack's catrate ring
// buffer (a growable, sorted ring used for rate-limiting event history).
// Unlike that buffer, Ring does not grow as events are added: IsFull
// reports back pressure instead. Only Init can enlarge it.
package queue

import (
	"errors"

	"github.com/larshei/lfsm"
)

// ErrFull is returned by Add when the ring has no free slots.
var ErrFull = errors.New("queue: ring is full")

// ErrEmpty is returned by Read when the ring holds no events.
var ErrEmpty = errors.New("queue: ring is empty")

// Ring is a fixed-capacity circular buffer of fsm.Event values.
type Ring struct {
	buf   []fsm.Event
	limit int
	r, w  uint
}

// NewRing allocates a Ring. Its backing array is the next power of two
// at or above capacity (masked index arithmetic requires a power-of-2
// backing array); IsFull still enforces the caller's requested capacity,
// not the rounded-up one.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Ring{buf: make([]fsm.Event, size), limit: capacity}
}

// Init satisfies fsm.Queue. When info.Capacity is larger than the ring's
// current capacity, the ring is replaced by an empty one of that capacity;
// a smaller or zero capacity leaves the ring untouched.
func (r *Ring) Init(info fsm.Info) error {
	if info.Capacity > 0 && info.Capacity > r.limit {
		*r = *NewRing(info.Capacity)
	}
	return nil
}

func (r *Ring) mask(v uint) uint { return v & (uint(len(r.buf)) - 1) }

// Len reports the number of queued events.
func (r *Ring) Len() int { return int(r.w - r.r) }

// Cap reports the ring's backing capacity (a power of two, possibly
// larger than the capacity requested at construction).
func (r *Ring) Cap() int { return len(r.buf) }

// IsEmpty satisfies fsm.Queue.
func (r *Ring) IsEmpty() bool { return r.Len() == 0 }

// IsFull satisfies fsm.Queue.
func (r *Ring) IsFull() bool { return r.Len() >= r.limit }

// Add satisfies fsm.Queue.
func (r *Ring) Add(event fsm.Event) error {
	if r.IsFull() {
		return ErrFull
	}
	r.buf[r.mask(r.w)] = event
	r.w++
	return nil
}

// Read satisfies fsm.Queue, popping the oldest queued event.
func (r *Ring) Read() (fsm.Event, error) {
	if r.IsEmpty() {
		return 0, ErrEmpty
	}
	v := r.buf[r.mask(r.r)]
	r.r++
	return v, nil
}

// Peek returns the i-th queued event (0 is the next to be read) without
// removing it, mirroring the original C library's direct indexed read
// into its backing ring buffer, used there for debugging.
func (r *Ring) Peek(i int) (fsm.Event, bool) {
	if i < 0 || i >= r.Len() {
		return 0, false
	}
	return r.buf[r.mask(r.r+uint(i))], true
}
