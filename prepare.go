package fsm

import "sort"

// prepareTable sorts transitions in place by (Current, Event) ascending.
// sort.SliceStable already gives the O(n log n) stability the original C
// library's bubble sort achieves by brute force; the two differ in
// algorithm but not in contract (see DESIGN.md).
func prepareTable(transitions []Transition) {
	sort.SliceStable(transitions, func(i, j int) bool {
		if transitions[i].Current != transitions[j].Current {
			return transitions[i].Current < transitions[j].Current
		}
		return transitions[i].Event < transitions[j].Event
	})
}

// findExtrema scans the (already sorted) table once for the state and
// event bounds used to size the dense indices. State bounds fold in both
// Current and Next, since either may sit outside the other's range.
func findExtrema(transitions []Transition) (stateMin, stateMax State, eventMin, eventMax Event) {
	stateMin, stateMax = transitions[0].Current, transitions[0].Current
	eventMin, eventMax = transitions[0].Event, transitions[0].Event

	for _, t := range transitions {
		if t.Current < stateMin {
			stateMin = t.Current
		}
		if t.Current > stateMax {
			stateMax = t.Current
		}
		if t.Next < stateMin {
			stateMin = t.Next
		}
		if t.Next > stateMax {
			stateMax = t.Next
		}
		if t.Event < eventMin {
			eventMin = t.Event
		}
		if t.Event > eventMax {
			eventMax = t.Event
		}
	}
	return
}
