package term

import "fmt"

// Term is the tagged sum of first-order terms this package represents:
// either a Variable or a Structure. Terms are immutable values; equality is
// structural, via Equal.
type Term interface {
	Equal(Term) bool

	// isTerm restricts implementations of Term to this package.
	isTerm()
}

// Variable is a named logic variable. Two variables are equal iff their
// names are equal.
type Variable struct {
	Name string
}

func (Variable) isTerm() {}

// Equal reports whether other is a Variable with the same name.
func (v Variable) Equal(other Term) bool {
	ov, ok := other.(Variable)
	return ok && ov.Name == v.Name
}

func (v Variable) String() string { return "?" + v.Name }

// Structure is a functor applied to an ordered sequence of argument terms.
// The functor's arity must equal len(Children); NewStructure enforces this
// at construction, but the zero value (and any Structure assembled by hand
// by a caller who bypasses NewStructure) does not re-check it, per spec: an
// arity mismatch is a construction-time programmer error, not a runtime one
// this package polices on every use.
type Structure struct {
	Functor  Functor
	Children []Term
}

func (Structure) isTerm() {}

// Equal reports whether other is a Structure with an equal functor handle
// and pairwise-equal children, in order.
func (s Structure) Equal(other Term) bool {
	os, ok := other.(Structure)
	if !ok || os.Functor != s.Functor || len(os.Children) != len(s.Children) {
		return false
	}

	for i, c := range s.Children {
		if !c.Equal(os.Children[i]) {
			return false
		}
	}

	return true
}

// NewStructure builds a Structure, panicking if the functor's declared
// arity disagrees with the number of children given. This is the
// construction-time invariant spec.md §3 calls a programmer error.
func NewStructure(tbl *Table, f Functor, children ...Term) Structure {
	if want := tbl.Arity(f); want != len(children) {
		panic(fmt.Sprintf("term: arity mismatch for %s: want %d children, got %d",
			tbl.FunctorString(f), want, len(children)))
	}

	return Structure{Functor: f, Children: children}
}

// Format renders a Term as text, resolving functor handles through tbl.
// Variables render as "?name"; structures render as "name(child,...)" or
// bare "name" when nullary.
func Format(tbl *Table, t Term) string {
	switch t := t.(type) {
	case Variable:
		return t.String()
	case Structure:
		if len(t.Children) == 0 {
			return tbl.FunctorName(t.Functor)
		}

		s := tbl.FunctorName(t.Functor) + "("

		for i, c := range t.Children {
			if i > 0 {
				s += ","
			}

			s += Format(tbl, c)
		}

		return s + ")"
	default:
		panic(fmt.Sprintf("term: unknown Term implementation %T", t))
	}
}
