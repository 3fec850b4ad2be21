package term_test

import (
	"testing"

	"github.com/smoynes/wam/internal/term"
)

func TestStructureEqual(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	b := term.NewBuilder(tbl)

	cases := []struct {
		name      string
		a, b      term.Term
		wantEqual bool
	}{
		{
			name:      "identical structures",
			a:         b.Struct("f", b.Var("X")),
			b:         b.Struct("f", b.Var("X")),
			wantEqual: true,
		},
		{
			name:      "different variable names",
			a:         b.Struct("f", b.Var("X")),
			b:         b.Struct("f", b.Var("Y")),
			wantEqual: false,
		},
		{
			name:      "different arity",
			a:         b.Struct("h", b.Var("X"), b.Var("Y")),
			b:         b.Struct("h", b.Var("X")),
			wantEqual: false,
		},
		{
			name:      "different functor name, same arity",
			a:         b.Struct("f", b.Var("X")),
			b:         b.Struct("g", b.Var("X")),
			wantEqual: false,
		},
		{
			name:      "atom equals itself",
			a:         b.Atom("a"),
			b:         b.Atom("a"),
			wantEqual: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Equal(tc.b); got != tc.wantEqual {
				t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.wantEqual)
			}
		})
	}
}

func TestNewStructureArityMismatchPanics(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	f2 := tbl.Functor("h", 2)

	defer func() {
		if recover() == nil {
			t.Error("NewStructure with wrong child count did not panic")
		}
	}()

	term.NewStructure(tbl, f2, term.Variable{Name: "X"})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tbl := term.NewTable()
	b := term.NewBuilder(tbl)

	got := term.Format(tbl, b.Struct("p", b.Var("Z"), b.Struct("h", b.Var("Z"), b.Var("W")), b.Struct("f", b.Var("W"))))
	want := "p(?Z,h(?Z,?W),f(?W))"

	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
