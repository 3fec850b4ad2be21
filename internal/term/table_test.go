package term_test

import (
	"testing"

	"github.com/smoynes/wam/internal/term"
)

func TestInternIsIdempotent(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()

	a := tbl.Intern("foo")
	b := tbl.Intern("foo")
	c := tbl.Intern("bar")

	if a != b {
		t.Errorf("Intern(%q) returned different handles: %v, %v", "foo", a, b)
	}

	if a == c {
		t.Errorf("Intern(%q) and Intern(%q) returned the same handle", "foo", "bar")
	}

	if got, want := tbl.Name(a), "foo"; got != want {
		t.Errorf("Name(%v) = %q, want %q", a, got, want)
	}
}

func TestFunctorIdentityByNameAndArity(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()

	f1 := tbl.Functor("h", 2)
	f2 := tbl.Functor("h", 2)
	f3 := tbl.Functor("h", 1)

	if f1 != f2 {
		t.Errorf("Functor(h,2) returned different handles on repeat calls: %v, %v", f1, f2)
	}

	if f1 == f3 {
		t.Errorf("Functor(h,2) and Functor(h,1) returned the same handle")
	}

	if got, want := tbl.FunctorString(f1), "h/2"; got != want {
		t.Errorf("FunctorString(h/2) = %q, want %q", got, want)
	}

	if got, want := tbl.Arity(f1), 2; got != want {
		t.Errorf("Arity(h/2) = %d, want %d", got, want)
	}
}

func TestNamePanicsOnUnknownHandle(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()

	defer func() {
		if recover() == nil {
			t.Error("Name(unknown handle) did not panic")
		}
	}()

	tbl.Name(term.Symbol(42))
}

func TestArityPanicsOnUnknownHandle(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()

	defer func() {
		if recover() == nil {
			t.Error("Arity(unknown handle) did not panic")
		}
	}()

	tbl.Arity(term.Functor(42))
}
