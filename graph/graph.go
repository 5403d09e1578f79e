// Package graph renders a machine's transition table to Graphviz DOT and
// Mermaid state-diagram syntax, for docs and debugging. Three independent
// FSM libraries in the example pack ship a visualizer for exactly this
// purpose (looplab/fsm's graphviz_visualizer.go and mermaid_visualizer.go,
// and derekbassett/fsm's visualize.go); this package follows their shape,
// adapted to a slice-based transition table instead of a map keyed by
// (state,event).
package graph

import (
	"fmt"
	"io"
	"sort"

	"github.com/larshei/lfsm"
)

// WriteDOT renders transitions as a Graphviz digraph. current, when it
// appears as a source state, is listed first so the rendered graph reads
// with the active state's outgoing edges up top.
func WriteDOT(w io.Writer, transitions []fsm.Transition, current fsm.State) error {
	sorted := sortedCopy(transitions)

	if _, err := fmt.Fprintln(w, "digraph fsm {"); err != nil {
		return err
	}

	for _, t := range sorted {
		if t.Current != current {
			continue
		}
		if err := writeDOTEdge(w, t); err != nil {
			return err
		}
	}
	for _, t := range sorted {
		if t.Current == current {
			continue
		}
		if err := writeDOTEdge(w, t); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, s := range sortedStates(sorted) {
		if _, err := fmt.Fprintf(w, "    %q;\n", stateLabel(s)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func writeDOTEdge(w io.Writer, t fsm.Transition) error {
	label := fmt.Sprintf("%d", t.Event)
	if t.Guard != nil {
		label += " [guarded]"
	}
	_, err := fmt.Fprintf(w, "    %q -> %q [ label = %q ];\n", stateLabel(t.Current), stateLabel(t.Next), label)
	return err
}

// WriteMermaid renders transitions as a Mermaid stateDiagram-v2.
func WriteMermaid(w io.Writer, transitions []fsm.Transition, initial fsm.State) error {
	sorted := sortedCopy(transitions)

	if _, err := fmt.Fprintln(w, "stateDiagram-v2"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "    [*] --> %s\n", stateLabel(initial)); err != nil {
		return err
	}
	for _, t := range sorted {
		label := fmt.Sprintf("%d", t.Event)
		if t.Guard != nil {
			label += " [guarded]"
		}
		if _, err := fmt.Fprintf(w, "    %s --> %s: %s\n", stateLabel(t.Current), stateLabel(t.Next), label); err != nil {
			return err
		}
	}
	return nil
}

func sortedCopy(transitions []fsm.Transition) []fsm.Transition {
	out := make([]fsm.Transition, len(transitions))
	copy(out, transitions)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current < out[j].Current
		}
		return out[i].Event < out[j].Event
	})
	return out
}

func sortedStates(transitions []fsm.Transition) []fsm.State {
	seen := make(map[fsm.State]bool)
	var states []fsm.State
	for _, t := range transitions {
		for _, s := range [2]fsm.State{t.Current, t.Next} {
			if !seen[s] {
				seen[s] = true
				states = append(states, s)
			}
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

func stateLabel(s fsm.State) string {
	return fmt.Sprintf("%d", s)
}
