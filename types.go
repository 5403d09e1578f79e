package fsm

// State identifies a machine state. Values are small non-negative
// integers; InvalidState is reserved and must never be used as a user
// state.
type State int

// Event identifies an input accepted by a machine.
type Event int

// InvalidState marks "no previous state." It is what a Context's previous
// state holds after Init, until the first successful transition.
const InvalidState State = 0xFE

// GuardFunc decides whether a Transition fires. A nil guard matches
// unconditionally. Guards must be pure with respect to machine state: they
// may read Context.UserData but must not call AddEvent or Run, and must
// not mutate anything the dispatcher depends on.
type GuardFunc func(ctx *Context) bool

// CallbackFunc runs on entry, run, or exit of a state. A returned error is
// logged and does not interrupt dispatch or roll back the state change.
type CallbackFunc func(ctx *Context) error

// Always is a guard that matches unconditionally, distinct from a nil
// guard when a table is generated and the generator always wants to emit
// a guard value.
var Always GuardFunc = func(*Context) bool { return true }

// Transition is one row of a transition table: from Current, on Event,
// guarded optionally by Guard, moving to Next.
type Transition struct {
	Current State
	Event   Event
	Guard   GuardFunc
	Next    State
}

// StateCallbacks is one row of a state callback table. Any of the three
// slots may be nil; nil slots are skipped silently.
type StateCallbacks struct {
	State   State
	OnEntry CallbackFunc
	OnRun   CallbackFunc
	OnExit  CallbackFunc
}
