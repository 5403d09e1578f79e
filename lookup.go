package fsm

import "fmt"

// buildTransitionIndex walks the sorted transition table once, writing
// each distinct (state,event) group's first row into a dense index. Cells
// never written stay nil: the (state,event) pair is undefined. transitionPos
// mirrors transitionIndex with the row's position in the sorted slice, for
// the dispatcher to walk forward through an equal-key block without
// re-deriving it from a pointer.
func buildTransitionIndex(transitions []Transition, stateMin, stateMax State, eventMin, eventMax Event, maxCells int) ([]*Transition, []int, error) {
	eventCount := int(eventMax-eventMin) + 1
	stateCount := int(stateMax-stateMin) + 1
	cells := stateCount * eventCount
	if cells <= 0 || cells > maxCells {
		return nil, nil, fmt.Errorf("%w: %d state(s) x %d event(s) = %d cells exceeds limit %d",
			ErrAllocation, stateCount, eventCount, cells, maxCells)
	}

	index := make([]*Transition, cells)
	pos := make([]int, cells)
	for i := range pos {
		pos[i] = -1
	}

	// sentinel previous-key guaranteed to differ from the first row.
	prevState := transitions[0].Current + 1
	prevEvent := transitions[0].Event + 1

	for i := range transitions {
		t := &transitions[i]
		if t.Current != prevState || t.Event != prevEvent {
			offset := int(t.Current-stateMin)*eventCount + int(t.Event-eventMin)
			index[offset] = t
			pos[offset] = i
			prevState, prevEvent = t.Current, t.Event
		}
	}
	return index, pos, nil
}

// buildCallbackIndex scans the state-callback table and stores each row at
// offset (row.State - stateMin). Rows whose state falls outside the
// transition table's observed range are skipped: they can never be
// reached by dispatch, so indexing them would be undefined per the
// invariant "for every s in range without a row it is null."
func buildCallbackIndex(callbacks []StateCallbacks, stateMin, stateMax State) []*StateCallbacks {
	stateCount := int(stateMax-stateMin) + 1
	index := make([]*StateCallbacks, stateCount)
	for i := range callbacks {
		c := &callbacks[i]
		offset := int(c.State - stateMin)
		if offset >= 0 && offset < stateCount {
			index[offset] = c
		}
	}
	return index
}
