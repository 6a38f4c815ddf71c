package expr

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-expr/internal/config"
	"github.com/cwbudde/algo-expr/internal/cpu"
	"github.com/cwbudde/algo-expr/internal/isa"
	"github.com/cwbudde/algo-expr/internal/isa/registry"
	"github.com/cwbudde/algo-expr/internal/logging"
)

// Engine executes store roots with one vector model and the scalar model.
// An Engine is immutable after construction and safe to share; executions
// on overlapping arrays must not run concurrently.
type Engine[T isa.Float] struct {
	backend string
	vector  isa.Model[T]
	scalar  isa.Model[T]
	unroll  int
	stream  bool
	debug   bool
}

type options struct {
	backend  string
	features *cpu.Features
	unroll   int
	stream   bool
	debug    bool
}

// Option configures an Engine, or the Engine of a new Array.
type Option func(*options)

// WithBackend forces a registered backend by name ("generic", "sse2",
// "avx", "avx2", "avx512", "neon"). An empty name selects automatically.
func WithBackend(name string) Option {
	return func(o *options) { o.backend = name }
}

// WithFeatures selects the backend for f instead of the detected CPU.
func WithFeatures(f cpu.Features) Option {
	return func(o *options) { o.features = &f }
}

// WithUnroll forces the unroll factor. Zero restores the cost model.
func WithUnroll(u int) Option {
	return func(o *options) { o.unroll = u }
}

// WithStreamingStores routes stores through the non-temporal primitive.
func WithStreamingStores(on bool) Option {
	return func(o *options) { o.stream = on }
}

// WithDebug validates operand lengths before each execution and panics on
// a mismatch.
func WithDebug(on bool) Option {
	return func(o *options) { o.debug = on }
}

// NewEngine selects a backend and returns an Engine for element type T.
// Options override the process configuration read by internal/config.
func NewEngine[T isa.Float](opts ...Option) (*Engine[T], error) {
	cfg := config.Load()
	o := options{
		backend: cfg.Backend,
		unroll:  cfg.Unroll,
		stream:  cfg.Stream,
		debug:   cfg.Debug,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.unroll < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUnroll, o.unroll)
	}

	entry, err := selectEntry(o, cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine[T]{
		backend: entry.Name,
		vector:  registry.Model[T](entry),
		scalar:  isa.Scalar[T](),
		unroll:  o.unroll,
		stream:  o.stream,
		debug:   o.debug,
	}

	logging.WithComponent("expr").Debugf("engine %T: backend %s, pack %d, alignment %d, registers %d, unroll %d",
		*new(T), e.backend, e.vector.PackSize(), e.vector.Alignment(), e.vector.Registers(), e.unroll)

	return e, nil
}

// selectEntry prefers an explicitly named backend; NoSIMD only narrows
// automatic selection.
func selectEntry(o options, cfg config.Config) (*registry.Entry, error) {
	if o.backend != "" {
		entry := registry.Global.LookupName(o.backend)
		if entry == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, o.backend)
		}
		return entry, nil
	}

	features := cpu.DetectFeatures()
	if o.features != nil {
		features = *o.features
	}
	if cfg.NoSIMD {
		features.ForceGeneric = true
	}

	entry := registry.Global.Lookup(features)
	if entry == nil {
		return nil, ErrNoBackend
	}
	return entry, nil
}

// Backend returns the name of the selected backend.
func (e *Engine[T]) Backend() string { return e.backend }

// PackSize returns the elements per vector register.
func (e *Engine[T]) PackSize() int { return e.vector.PackSize() }

// Alignment returns the byte alignment arrays need for this engine.
func (e *Engine[T]) Alignment() int { return e.vector.Alignment() }

// Registers returns the register budget of the cost model.
func (e *Engine[T]) Registers() int { return e.vector.Registers() }

// Approximate reports whether vector Rsqrt is approximate.
func (e *Engine[T]) Approximate() bool { return e.vector.Approximate() }

// Plan describes how an execution would be carried out.
type Plan struct {
	Backend  string
	PackSize int
	Stats    Stats

	// Unroll is the factor from the cost model or the forced value.
	Unroll int
	// Slots is the number of evaluators of the tier Unroll clamps to.
	Slots int

	// Element counts of each loop phase, in execution order. They sum to
	// the execution length.
	Blocked   int
	Tail      int
	Single    int
	Remainder int
}

// Vectorized returns the number of elements handled by the vector model.
func (p Plan) Vectorized() int {
	return p.Blocked + p.Tail + p.Single
}

// Plan computes the execution plan of root over n elements without
// touching any data.
func (e *Engine[T]) Plan(root Expr[T], n int) Plan {
	p, _ := e.plan(root.node(), n)
	return p
}

func (e *Engine[T]) plan(root *Node[T], n int) (Plan, tier) {
	stats := count(root)
	unroll := e.unroll
	if unroll == 0 {
		unroll = UnrollFactor(stats, e.vector.Registers())
	}
	t := tierFor(unroll)

	p := Plan{
		Backend:  e.backend,
		PackSize: e.vector.PackSize(),
		Stats:    stats,
		Unroll:   unroll,
		Slots:    t.slots,
	}
	if n > 0 {
		p.Blocked, p.Tail, p.Single, p.Remainder = t.split(n, p.PackSize)
	}
	return p, t
}

// Execute evaluates root over elements [0,n). root is normally a store
// built by Store or StoreScalar; a tree without stores is evaluated and
// discarded.
func (e *Engine[T]) Execute(root Expr[T], n int) {
	nd := root.node()
	if e.debug {
		if err := validate(nd, n); err != nil {
			panic(err)
		}
	}
	_, t := e.plan(nd, n)
	run(nd, n, e.vector, e.scalar, t, e.stream)
}

var (
	defaultMu sync.Mutex
	default32 *Engine[float32]
	default64 *Engine[float64]
)

// Default returns the shared Engine for T, built from the process
// configuration on first use. A configuration naming an unknown backend
// is reported once and replaced by automatic selection.
func Default[T isa.Float]() *Engine[T] {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	var zero T
	switch any(zero).(type) {
	case float32:
		if default32 == nil {
			default32 = mustDefault[float32]()
		}
		return any(default32).(*Engine[T])
	default:
		if default64 == nil {
			default64 = mustDefault[float64]()
		}
		return any(default64).(*Engine[T])
	}
}

func mustDefault[T isa.Float]() *Engine[T] {
	e, err := NewEngine[T]()
	if err == nil {
		return e
	}
	logging.WithComponent("expr").Warnf("default engine: %v; falling back to automatic selection", err)

	e, err = NewEngine[T](WithBackend(""), WithUnroll(0))
	if err != nil {
		panic(err)
	}
	return e
}

// resetDefaults drops the cached default engines. Used by tests that
// change configuration or forced CPU features.
func resetDefaults() {
	defaultMu.Lock()
	default32 = nil
	default64 = nil
	defaultMu.Unlock()
}

// Execute evaluates root over [0,n) with the default Engine for T.
func Execute[T isa.Float](root Expr[T], n int) {
	Default[T]().Execute(root, n)
}
