// Package fsm implements a table-driven finite-state-machine runtime for
// embedded and control-oriented software.
//
// A machine is declared with a flat transition table and a per-state
// callback table. Events flow through a bounded [Queue]; [Context.Run]
// dispatches one event at a time by looking up the (state, event) pair,
// evaluating optional guards to pick a winning transition, and invoking
// the appropriate entry/run/exit callbacks.
//
// The engine does not do hierarchical or orthogonal states, transition
// actions distinct from entry/exit, dynamic table mutation after Init, or
// concurrent dispatch on a single Context. Callers must serialize calls to
// a given Context.
package fsm
