package main

import (
	"fmt"
	"os"

	"github.com/larshei/lfsm"
	"gopkg.in/yaml.v3"
)

// tableDoc is the YAML shape lfsmctl reads. Callback slots are booleans,
// not code: a demo CLI has no expression language to evaluate, so every
// declared slot resolves to a callback that logs its own firing. Guards
// are resolved by name against a small builtin set (currently just
// "always"); an absent guard is a nil guard, matching unconditionally.
type tableDoc struct {
	Transitions []transitionDoc `yaml:"transitions"`
	States      []stateDoc      `yaml:"states"`
}

type transitionDoc struct {
	Current int    `yaml:"current"`
	Event   int    `yaml:"event"`
	Guard   string `yaml:"guard"`
	Next    int    `yaml:"next"`
}

type stateDoc struct {
	State   int  `yaml:"state"`
	OnEntry bool `yaml:"on_entry"`
	OnRun   bool `yaml:"on_run"`
	OnExit  bool `yaml:"on_exit"`
}

func loadTable(path string) (tableDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tableDoc{}, fmt.Errorf("read %s: %w", path, err)
	}
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return tableDoc{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func namedGuard(name string) fsm.GuardFunc {
	switch name {
	case "", "none":
		return nil
	case "always":
		return fsm.Always
	default:
		return nil
	}
}

func loggingCallback(label string) fsm.CallbackFunc {
	return func(ctx *fsm.Context) error {
		fmt.Fprintf(os.Stderr, "  callback: %s (state=%d)\n", label, ctx.CurrentState())
		return nil
	}
}

func (d tableDoc) build() ([]fsm.Transition, []fsm.StateCallbacks) {
	transitions := make([]fsm.Transition, 0, len(d.Transitions))
	for _, t := range d.Transitions {
		transitions = append(transitions, fsm.Transition{
			Current: fsm.State(t.Current),
			Event:   fsm.Event(t.Event),
			Guard:   namedGuard(t.Guard),
			Next:    fsm.State(t.Next),
		})
	}

	callbacks := make([]fsm.StateCallbacks, 0, len(d.States))
	for _, s := range d.States {
		row := fsm.StateCallbacks{State: fsm.State(s.State)}
		if s.OnEntry {
			row.OnEntry = loggingCallback(fmt.Sprintf("state %d on_entry", s.State))
		}
		if s.OnRun {
			row.OnRun = loggingCallback(fmt.Sprintf("state %d on_run", s.State))
		}
		if s.OnExit {
			row.OnExit = loggingCallback(fmt.Sprintf("state %d on_exit", s.State))
		}
		callbacks = append(callbacks, row)
	}
	return transitions, callbacks
}
