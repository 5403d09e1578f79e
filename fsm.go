package fsm

import "fmt"

// Init claims a Context from a Pool (the package default unless WithPool
// overrides it), wires the transition and callback tables and the event
// Queue, and fires the initial state's on_entry/on_run before returning.
//
// transitions is sorted in place by (Current, Event); the caller retains
// ownership of its backing array but must not mutate it again while the
// machine is active. Init returns an error wrapping ErrPoolExhausted,
// ErrEmptyTable, ErrReservedState, ErrInitialStateOutOfRange, ErrQueueInit,
// or ErrAllocation on failure; no partial Context is left active in the
// pool in that case.
func Init(transitions []Transition, callbacks []StateCallbacks, q Queue, userData any, initial State, opts ...Option) (*Context, error) {
	if len(transitions) == 0 {
		return nil, ErrEmptyTable
	}

	o := resolveOptions(opts)

	ctx := o.pool.claim()
	if ctx == nil {
		return nil, fmt.Errorf("%w: pool size %d", ErrPoolExhausted, o.pool.Size())
	}

	if initial == InvalidState || stateCollides(transitions, callbacks) {
		o.pool.release(ctx)
		return nil, fmt.Errorf("%w: 0x%X is reserved", ErrReservedState, uint8(InvalidState))
	}

	prepareTable(transitions)
	stateMin, stateMax, eventMin, eventMax := findExtrema(transitions)

	if initial < stateMin || initial > stateMax {
		o.pool.release(ctx)
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrInitialStateOutOfRange, initial, stateMin, stateMax)
	}

	transitionIndex, transitionPos, err := buildTransitionIndex(transitions, stateMin, stateMax, eventMin, eventMax, o.maxIndexCells)
	if err != nil {
		o.pool.release(ctx)
		return nil, err
	}
	callbackIndex := buildCallbackIndex(callbacks, stateMin, stateMax)

	if err := q.Init(Info{Capacity: o.queueSize}); err != nil {
		o.pool.release(ctx)
		return nil, fmt.Errorf("%w: %v", ErrQueueInit, err)
	}

	ctx.transitions = transitions
	ctx.callbacks = callbacks
	ctx.transitionIndex = transitionIndex
	ctx.transitionPos = transitionPos
	ctx.callbackIndex = callbackIndex
	ctx.stateMin, ctx.stateMax = stateMin, stateMax
	ctx.eventMin, ctx.eventMax = eventMin, eventMax
	ctx.eventCount = int(eventMax-eventMin) + 1
	ctx.queue = q
	ctx.userData = userData
	ctx.currentState = initial
	ctx.previousStepState = InvalidState
	ctx.logger = o.logger

	// Fire the initial state's on_entry/on_run, exactly as every
	// subsequent dispatch step would for a state change from InvalidState.
	if err := ctx.runCallbacks(); err != nil {
		ctx.logger.Warn().Err(err).Msg("fsm: initial callback step returned error")
	}

	return ctx, nil
}

func stateCollides(transitions []Transition, callbacks []StateCallbacks) bool {
	for _, t := range transitions {
		if t.Current == InvalidState || t.Next == InvalidState {
			return true
		}
	}
	for _, c := range callbacks {
		if c.State == InvalidState {
			return true
		}
	}
	return false
}

// AddEvent enqueues event for later dispatch by Run. It rejects events
// outside [event_min, event_max] without enqueuing, and reports a full
// queue; both are reported as errors, per ErrEventOutOfRange and
// ErrQueueFull respectively.
func (c *Context) AddEvent(event Event) error {
	if !c.active {
		return ErrNotActive
	}
	if event < c.eventMin || event > c.eventMax {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrEventOutOfRange, event, c.eventMin, c.eventMax)
	}
	if err := c.queue.Add(event); err != nil {
		return fmt.Errorf("%w: %v", ErrQueueFull, err)
	}
	return nil
}

// Run consumes one queued event (if any), dispatches it, and runs
// callbacks for the resulting state. See package docs for the full
// algorithm.
func (c *Context) Run() (RunResult, error) {
	if !c.active {
		return RunResult{Status: Error}, ErrNotActive
	}

	if c.queue.IsEmpty() {
		return RunResult{Status: NOP}, nil
	}

	event, err := c.queue.Read()
	if err != nil {
		return RunResult{Status: Error}, err
	}

	c.dispatch(event)
	cbErr := c.runCallbacks()

	status := OK
	if !c.queue.IsEmpty() {
		status = MoreQueued
	}
	return RunResult{Status: status, CallbackErr: cbErr}, nil
}

// Deinit releases ctx's dense indices and returns its slot to the pool.
// The caller's transition and callback tables are left untouched: the
// engine never owned that storage.
func (c *Context) Deinit() error {
	if !c.active {
		return ErrNotActive
	}
	p := c.pool
	c.active = false
	p.release(c)
	return nil
}
