package fsm

// dispatch implements the core of Run: resolve one event, already read
// from the queue by Run, against the transition index and guards, and
// apply the winning transition (if any) to the context's current state.
// It reports whether a transition fired; Run does not use that result,
// since the callback orchestrator works from previousStepState and
// currentState.
func (c *Context) dispatch(event Event) (fired bool) {
	if event < c.eventMin || event > c.eventMax {
		// Out-of-range event dequeued mid-run is treated the same as no
		// match found: it is consumed, but on_run of the unchanged
		// current state still fires via the callback orchestrator.
		c.logger.Debug().
			Int("event", int(event)).
			Msg("fsm: event out of range, consumed as no-match")
		return false
	}

	if c.currentState < c.stateMin || c.currentState > c.stateMax {
		// Can only happen via ForceState moving a Context outside the
		// range its table was indexed for; treated as a no-match rather
		// than indexing the dense table out of bounds.
		c.logger.Debug().
			Int("state", int(c.currentState)).
			Int("event", int(event)).
			Msg("fsm: current state out of indexed range")
		return false
	}

	offset := int(c.currentState-c.stateMin)*c.eventCount + int(event-c.eventMin)
	pos := c.transitionPos[offset]
	if pos < 0 {
		c.logger.Debug().
			Int("state", int(c.currentState)).
			Int("event", int(event)).
			Msg("fsm: no transition registered for state/event")
		return false
	}

	winner := c.findWinningTransition(pos, event)
	if winner == nil {
		c.logger.Debug().
			Int("state", int(c.currentState)).
			Int("event", int(event)).
			Msg("fsm: all guards declined")
		return false
	}

	c.previousStepState = c.currentState
	c.currentState = winner.Next
	c.logger.Debug().
		Int("from", int(c.previousStepState)).
		Int("to", int(c.currentState)).
		Int("event", int(event)).
		Msg("fsm: transition fired")
	return true
}

// findWinningTransition walks forward from pos through the contiguous
// block of rows sharing (current_state, event), returning the first whose
// guard matches (a nil guard matches unconditionally). Guard evaluation
// order is the caller-authored order preserved by the stable sort.
func (c *Context) findWinningTransition(pos int, event Event) *Transition {
	for i := pos; i < len(c.transitions); i++ {
		t := &c.transitions[i]
		if t.Current != c.currentState || t.Event != event {
			break
		}
		if t.Guard == nil || t.Guard(c) {
			return t
		}
	}
	return nil
}
