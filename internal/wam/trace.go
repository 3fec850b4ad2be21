package wam

// trace.go adds an optional instruction trace sink, modeled on the
// teacher's WithDisplayListener option: a callback hook a caller can supply
// without the Machine type knowing anything about how traces get
// presented.

import "github.com/smoynes/wam/internal/term"

// TraceEvent describes one executed M1 instruction.
type TraceEvent struct {
	Op       string
	Register Register
	Functor  *term.Functor // nil for ops that don't name a functor.
	Mode     string
}

// TraceFunc receives every instruction the Machine executes successfully, in
// order. An instruction that returns an error is not reported.
type TraceFunc func(TraceEvent)

func (m *Machine) trace(op string, f *term.Functor, r Register) {
	m.log.Debug(op, "register", r, "mode", m.mode.String())

	if m.traceFn == nil {
		return
	}

	m.traceFn(TraceEvent{
		Op:       op,
		Register: r,
		Functor:  f,
		Mode:     m.mode.String(),
	})
}

// WithTrace installs fn as the machine's instruction trace sink.
func WithTrace(fn TraceFunc) Option {
	return func(m *Machine) { m.traceFn = fn }
}
