// Package wamtest collects test-only tooling for the internal/compile tests
// (the internal/wam tests do not use it): a Recorder that implements wam.Ops by capturing
// instruction text instead of mutating a heap, and a heap-assertion helper
// for tests that do run against a real wam.Machine. It plays the role the
// original prototype's test_heap! macro and MachineOps test recorder played:
// letting a compiler test assert on the instruction stream it produced
// without caring what a Machine would do with it.
package wamtest

import (
	"fmt"
	"testing"

	"github.com/smoynes/wam/internal/term"
	"github.com/smoynes/wam/internal/wam"
)

// Recorder implements wam.Ops by formatting each call as text and appending
// it to Instructions, in call order. It never fails: GetStructure,
// UnifyVariable, and UnifyValue always return nil, since the compiler's
// traversal order never depends on a Machine's runtime state.
type Recorder struct {
	tbl   *term.Table
	instr []string
}

// NewRecorder returns a Recorder that resolves functor handles through tbl.
func NewRecorder(tbl *term.Table) *Recorder {
	return &Recorder{tbl: tbl}
}

func (r *Recorder) emit(format string, args ...any) {
	r.instr = append(r.instr, fmt.Sprintf(format, args...))
}

func (r *Recorder) PutStructure(f term.Functor, reg wam.Register) {
	r.emit("put_structure %s, %s", r.tbl.FunctorString(f), reg)
}

func (r *Recorder) SetVariable(reg wam.Register) { r.emit("set_variable %s", reg) }

func (r *Recorder) SetValue(reg wam.Register) { r.emit("set_value %s", reg) }

func (r *Recorder) GetStructure(f term.Functor, reg wam.Register) error {
	r.emit("get_structure %s, %s", r.tbl.FunctorString(f), reg)
	return nil
}

func (r *Recorder) UnifyVariable(reg wam.Register) error {
	r.emit("unify_variable %s", reg)
	return nil
}

func (r *Recorder) UnifyValue(reg wam.Register) error {
	r.emit("unify_value %s", reg)
	return nil
}

// Instructions returns every instruction recorded so far, in call order.
func (r *Recorder) Instructions() []string { return r.instr }

// AssertInstructions fails t if got and want differ, reporting the index and
// text of the first mismatch.
func AssertInstructions(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("instruction count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instruction[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// AssertHeap fails t if a Machine's current heap dump differs from want,
// line for line.
func AssertHeap(t *testing.T, m *wam.Machine, want []string) {
	t.Helper()

	got := m.DumpHeap()

	if len(got) != len(want) {
		t.Fatalf("heap length = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heap[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
