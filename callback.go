package fsm

// runCallbacks implements the callback orchestrator: on_exit of the
// previous state before on_entry of the next; on_run always runs for the
// resulting state. It is invoked once after every dispatch step, and once
// more at the end of Init with previousStepState == InvalidState.
func (c *Context) runCallbacks() error {
	prev, cur := c.previousStepState, c.currentState
	curRow := c.callbackRow(cur)
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if prev != cur {
		if prevRow := c.callbackRow(prev); prevRow != nil && prev != InvalidState {
			record(c.invoke(prevRow.OnExit))
		}
		if curRow != nil {
			record(c.invoke(curRow.OnEntry))
			record(c.invoke(curRow.OnRun))
		}
		return firstErr
	}

	if curRow != nil {
		record(c.invoke(curRow.OnRun))
	}
	return firstErr
}

func (c *Context) callbackRow(s State) *StateCallbacks {
	if s < c.stateMin || s > c.stateMax {
		return nil
	}
	return c.callbackIndex[s-c.stateMin]
}

// invoke runs a single callback slot. Nil slots are skipped silently. A
// non-nil error is logged at warn level here and returned to the caller,
// which threads the first one through to RunResult.CallbackErr without
// aborting the remaining orchestration steps.
func (c *Context) invoke(fn CallbackFunc) error {
	if fn == nil {
		return nil
	}
	if err := fn(c); err != nil {
		c.logger.Warn().Err(err).Msg("fsm: callback returned error")
		return err
	}
	return nil
}
