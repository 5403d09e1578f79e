package fsm

import "errors"

// Sentinel errors. Use errors.Is to test for these across the %w-wrapped
// context added at each call site.
var (
	// ErrPoolExhausted is returned by Init when no pool slot is free.
	ErrPoolExhausted = errors.New("fsm: pool exhausted")
	// ErrQueueInit is returned by Init when the supplied Queue fails to
	// initialize.
	ErrQueueInit = errors.New("fsm: queue init failed")
	// ErrAllocation is returned by Init when the dense lookup tables
	// cannot be built, including when the implied table size exceeds the
	// configured MaxIndexCells circuit breaker.
	ErrAllocation = errors.New("fsm: lookup table allocation refused")
	// ErrEventOutOfRange is returned by AddEvent when the event falls
	// outside [event_min, event_max] for the machine.
	ErrEventOutOfRange = errors.New("fsm: event out of range")
	// ErrQueueFull is returned by AddEvent when the underlying Queue
	// reports full.
	ErrQueueFull = errors.New("fsm: queue full")
	// ErrReservedState is returned by Init when a transition or callback
	// row references InvalidState as a user state.
	ErrReservedState = errors.New("fsm: state collides with reserved sentinel")
	// ErrNotActive is returned by any operation on a Context after
	// Deinit has released it.
	ErrNotActive = errors.New("fsm: context is not active")
	// ErrEmptyTable is returned by Init when the transition table has no
	// rows; there is nothing to index extrema from.
	ErrEmptyTable = errors.New("fsm: transition table is empty")
	// ErrInitialStateOutOfRange is returned by Init when initial falls
	// outside the [state_min, state_max] range derived from the
	// transition table, which would leave dispatch indexing the dense
	// lookup table out of bounds.
	ErrInitialStateOutOfRange = errors.New("fsm: initial state out of range")
)
