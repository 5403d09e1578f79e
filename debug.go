package fsm

import (
	"fmt"
	"io"
)

// DebugDump writes the sorted transition table and both dense indices to
// w, for bring-up and troubleshooting. It is a separate concern from the
// core dispatch path and reads only through the public introspection
// accessors, in the spirit of the original C library's lovely_fsm_debug.c
// table dump, kept out of the hot path it was split from.
func (c *Context) DebugDump(w io.Writer) error {
	stateMin, stateMax := c.StateRange()
	eventMin, eventMax := c.EventRange()
	eventCount := int(eventMax-eventMin) + 1
	if _, err := fmt.Fprintf(w, "state range [%d,%d] event range [%d,%d]\n",
		stateMin, stateMax, eventMin, eventMax); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "--- transitions (sorted) ---"); err != nil {
		return err
	}
	for _, t := range c.Transitions() {
		guarded := "unguarded"
		if t.Guard != nil {
			guarded = "guarded"
		}
		if _, err := fmt.Fprintf(w, "  %d --%d[%s]--> %d\n", t.Current, t.Event, guarded, t.Next); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "--- transition index ---"); err != nil {
		return err
	}
	for i, t := range c.TransitionIndex() {
		if t == nil {
			continue
		}
		state := stateMin + State(i/eventCount)
		event := eventMin + Event(i%eventCount)
		if _, err := fmt.Fprintf(w, "  (%d,%d) -> first row %d--%d-->%d\n", state, event, t.Current, t.Event, t.Next); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "--- callback index ---"); err != nil {
		return err
	}
	for i, row := range c.CallbackIndex() {
		if row == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "  state %d -> entry=%v run=%v exit=%v\n",
			stateMin+State(i), row.OnEntry != nil, row.OnRun != nil, row.OnExit != nil); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "current=%d previous=%d\n", c.CurrentState(), c.PreviousState()); err != nil {
		return err
	}
	return nil
}
