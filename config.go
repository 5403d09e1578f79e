package fsm

import "github.com/rs/zerolog"

// Compile-time tunables in the original C source became runtime-overridable
// defaults here: Go has no preprocessor, so these are plain constants,
// adjustable per-Init via Option rather than per-build via #define.
const (
	// DefaultPoolSize is the capacity of the package-level default Pool.
	DefaultPoolSize = 3
	// DefaultQueueSize is the event capacity Init requests from the
	// supplied Queue when WithQueueSize is not given.
	DefaultQueueSize = 5
	// DefaultMaxIndexCells bounds (stateMax-stateMin+1)*eventCount so a
	// sparse, far-apart-valued table can't force an unbounded slice
	// allocation.
	DefaultMaxIndexCells = 1 << 20
)

type options struct {
	pool          *Pool
	logger        zerolog.Logger
	maxIndexCells int
	queueSize     int
}

// Option configures Init.
type Option func(*options)

// WithPool directs Init to claim its Context from p instead of the
// package-level default Pool.
func WithPool(p *Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithLogger attaches a zerolog.Logger used to trace dispatch decisions
// and callback failures. The default is a disabled logger: the core does
// no forced I/O unless the caller opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxIndexCells overrides the dense-index size circuit breaker.
func WithMaxIndexCells(n int) Option {
	return func(o *options) { o.maxIndexCells = n }
}

// WithQueueSize overrides the capacity Init requests from the supplied
// Queue via Queue.Init. How a Queue reacts is up to its Init: the
// reference queue.Ring grows to n but is left untouched when its capacity
// is already at least n, so this only raises the floor Init asks for.
func WithQueueSize(n int) Option {
	return func(o *options) { o.queueSize = n }
}

func resolveOptions(opts []Option) options {
	o := options{
		pool:          defaultPool,
		logger:        zerolog.Nop(),
		maxIndexCells: DefaultMaxIndexCells,
		queueSize:     DefaultQueueSize,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
