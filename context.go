package fsm

import "github.com/rs/zerolog"

// Context is a live machine instance: its tables, derived indices, queue,
// user data, and current/previous state. Context values are claimed from
// a Pool by Init and must not be copied after that.
type Context struct {
	pool   *Pool
	slot   int
	active bool

	transitions []Transition
	callbacks   []StateCallbacks

	transitionIndex []*Transition
	transitionPos   []int // parallel to transitionIndex; -1 = empty cell
	callbackIndex   []*StateCallbacks

	stateMin, stateMax State
	eventMin, eventMax Event
	eventCount         int

	queue Queue

	currentState      State
	previousStepState State

	userData any
	logger   zerolog.Logger
}

// UserData returns the opaque pointer supplied at Init.
func (c *Context) UserData() any { return c.userData }

// CurrentState returns the machine's current state.
func (c *Context) CurrentState() State { return c.currentState }

// PreviousState returns the state the machine was in before its most
// recent transition, or InvalidState before the first one.
func (c *Context) PreviousState() State { return c.previousStepState }

// Transitions returns the sorted transition table backing this machine.
func (c *Context) Transitions() []Transition { return c.transitions }

// Callbacks returns the state callback table backing this machine.
func (c *Context) Callbacks() []StateCallbacks { return c.callbacks }

// TransitionIndex returns the dense (state,event) -> transition lookup.
func (c *Context) TransitionIndex() []*Transition { return c.transitionIndex }

// CallbackIndex returns the dense state -> callback-row lookup.
func (c *Context) CallbackIndex() []*StateCallbacks { return c.callbackIndex }

// StateRange returns the minimum and maximum state referenced by the
// transition table.
func (c *Context) StateRange() (min, max State) { return c.stateMin, c.stateMax }

// EventRange returns the minimum and maximum event referenced by the
// transition table.
func (c *Context) EventRange() (min, max Event) { return c.eventMin, c.eventMax }

// Lookup returns the first candidate transition for the current state and
// the given event, and whether one was found. It does not evaluate
// guards; see Run for the full dispatch algorithm.
func (c *Context) Lookup(e Event) (*Transition, bool) {
	t, ok := c.lookupCell(c.currentState, e)
	return t, ok
}

func (c *Context) lookupCell(s State, e Event) (*Transition, bool) {
	if s < c.stateMin || s > c.stateMax || e < c.eventMin || e > c.eventMax {
		return nil, false
	}
	offset := int(s-c.stateMin)*c.eventCount + int(e-c.eventMin)
	t := c.transitionIndex[offset]
	return t, t != nil
}

// ForceState sets the current state directly, bypassing dispatch and all
// callbacks. It mirrors the original C library's lfsm_set_state, intended
// for test bring-up, not for use in steady-state operation.
func (c *Context) ForceState(s State) {
	c.currentState = s
	c.previousStepState = s
}
