package wam

// machine.go assembles a Machine from its parts, following the teacher's
// functional-options constructor idiom (vm.New(opts ...OptionFn)).

import (
	"github.com/smoynes/wam/internal/log"
	"github.com/smoynes/wam/internal/term"
)

// Machine owns a Memory and the current read/write Mode. It implements Ops,
// and lives for exactly one query+program compile-and-run cycle: two
// machines never share memory.
type Machine struct {
	mem  *Memory
	mode mode

	functors *term.Table
	traceFn  TraceFunc
	log      *log.Logger
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithLogger overrides the machine's logger. The default is
// log.DefaultLogger().
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) { m.log = logger }
}

// New creates a Machine with numRegisters general registers, all initially
// Uninitialized, and an empty heap. functors resolves functor names and
// arities for the MGU printer and for Unify's argument-count bookkeeping.
func New(numRegisters int, functors *term.Table, opts ...Option) *Machine {
	m := &Machine{
		mode:     writeMode(),
		functors: functors,
		log:      log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.mem = NewMemory(numRegisters, functors, m.log)

	return m
}

// Memory returns the machine's memory, for callers (chiefly the MGU printer
// and test harnesses) that need direct heap access beyond the six M1 ops.
func (m *Machine) Memory() *Memory { return m.mem }

// Functors returns the functor table the machine resolves functor handles
// through.
func (m *Machine) Functors() *term.Table { return m.functors }
