package wam_test

// These tests drive Machine's six Ops directly with hand-derived instruction
// streams, rather than through a compiler, so that the heap/unification core
// is verified independently of internal/compile.

import (
	"errors"
	"testing"

	"github.com/smoynes/wam/internal/term"
	"github.com/smoynes/wam/internal/wam"
)

// TestQueryCompilationHeap reproduces the worked example's query compilation:
// p(Z, h(Z, W), f(W)) on a 5-register machine.
func TestQueryCompilationHeap(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	h2 := tbl.Functor("h", 2)
	f1 := tbl.Functor("f", 1)
	p3 := tbl.Functor("p", 3)

	m := wam.New(5, tbl)

	const r0, r1, r2, r3, r4 = wam.Register(0), wam.Register(1), wam.Register(2), wam.Register(3), wam.Register(4)

	m.PutStructure(h2, r2)
	m.SetVariable(r1)
	m.SetVariable(r4)
	m.PutStructure(f1, r3)
	m.SetValue(r4)
	m.PutStructure(p3, r0)
	m.SetValue(r1)
	m.SetValue(r2)
	m.SetValue(r3)

	want := []string{
		"H0: Structure(H1)",
		"H1: Functor(h/2)",
		"H2: Ref(H2)",
		"H3: Ref(H3)",
		"H4: Structure(H5)",
		"H5: Functor(f/1)",
		"H6: Ref(H3)",
		"H7: Structure(H8)",
		"H8: Functor(p/3)",
		"H9: Ref(H2)",
		"H10: Structure(H1)",
		"H11: Structure(H5)",
	}

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

// TestUnifyResolvesMGU reproduces Exercise 2.3: running the query
// p(Z, h(Z, W), f(W)) followed by the program p(f(X), h(Y, f(a)), Y) against
// the same machine succeeds and resolves register 0 to the expected MGU.
func TestUnifyResolvesMGU(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	h2 := tbl.Functor("h", 2)
	f1 := tbl.Functor("f", 1)
	p3 := tbl.Functor("p", 3)
	a0 := tbl.Functor("a", 0)

	m := wam.New(7, tbl)

	const (
		r0 = wam.Register(0)
		r1 = wam.Register(1)
		r2 = wam.Register(2)
		r3 = wam.Register(3)
		r4 = wam.Register(4)
		r5 = wam.Register(5)
		r6 = wam.Register(6)
	)

	// query(p(Z, h(Z, W), f(W)))
	m.PutStructure(h2, r2)
	m.SetVariable(r1)
	m.SetVariable(r4)
	m.PutStructure(f1, r3)
	m.SetValue(r4)
	m.PutStructure(p3, r0)
	m.SetValue(r1)
	m.SetValue(r2)
	m.SetValue(r3)

	// program(p(f(X), h(Y, f(a)), Y))
	mustOK(t, m.GetStructure(p3, r0))
	mustOK(t, m.UnifyVariable(r1))
	mustOK(t, m.UnifyVariable(r2))
	mustOK(t, m.UnifyVariable(r3))
	mustOK(t, m.GetStructure(f1, r1))
	mustOK(t, m.UnifyVariable(r4))
	mustOK(t, m.GetStructure(h2, r2))
	mustOK(t, m.UnifyValue(r3))
	mustOK(t, m.UnifyVariable(r5))
	mustOK(t, m.GetStructure(f1, r5))
	mustOK(t, m.UnifyVariable(r6))
	mustOK(t, m.GetStructure(a0, r6))

	want := "p(f(f(a)),h(f(f(a)),f(a)),f(f(a)))"
	if got := m.MGU(r0.Address()).String(); got != want {
		t.Errorf("MGU(R0) = %q, want %q", got, want)
	}
}

// TestUnifyFailure reproduces the functor-mismatch scenario:
// query(p(Z, Z)); program(p(f(X), g(X))) must fail when g/1 is matched where
// f/1 was already bound.
func TestUnifyFailure(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	p2 := tbl.Functor("p", 2)
	f1 := tbl.Functor("f", 1)
	g1 := tbl.Functor("g", 1)

	m := wam.New(4, tbl)

	const (
		r0 = wam.Register(0)
		r1 = wam.Register(1)
		r2 = wam.Register(2)
		r3 = wam.Register(3)
	)

	// query(p(Z, Z))
	m.PutStructure(p2, r0)
	m.SetVariable(r1)
	m.SetValue(r1)

	// program(p(f(X), g(X)))
	mustOK(t, m.GetStructure(p2, r0))
	mustOK(t, m.UnifyVariable(r1))
	mustOK(t, m.UnifyVariable(r2))
	mustOK(t, m.GetStructure(f1, r1))
	mustOK(t, m.UnifyVariable(r3))

	err := m.GetStructure(g1, r2)
	if err == nil {
		t.Fatal("GetStructure(g/1, R2) = nil, want a functor-mismatch error")
	}

	if !errors.Is(err, wam.ErrUnify) {
		t.Errorf("GetStructure(g/1, R2) error = %v, want wrapping %v", err, wam.ErrUnify)
	}
}

// TestTrivialAtom reproduces query(a); program(a) on a single-register
// machine.
func TestTrivialAtom(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	a0 := tbl.Functor("a", 0)

	m := wam.New(1, tbl)

	const r0 = wam.Register(0)

	m.PutStructure(a0, r0)
	mustOK(t, m.GetStructure(a0, r0))

	if got, want := m.MGU(r0.Address()).String(), "a"; got != want {
		t.Errorf("MGU(R0) = %q, want %q", got, want)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
