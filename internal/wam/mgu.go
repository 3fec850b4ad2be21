package wam

// mgu.go implements the MGU printer (spec.md §4.4): walk the heap from a
// root address, following Refs, to emit the resolved term as text.

import (
	"fmt"
	"strings"
)

// Resolved is a Stringer view of whatever term is reachable from a root
// address on a Machine's heap. It defers rendering until String is called,
// so callers can pass it straight to fmt without an intermediate string.
type Resolved struct {
	m    *Machine
	root Address
}

// MGU returns a Resolved view rooted at addr, typically Register(0).
func (m *Machine) MGU(addr Address) Resolved {
	return Resolved{m: m, root: addr}
}

func (r Resolved) String() string {
	return resolveTerm(r.m, r.root)
}

func resolveTerm(m *Machine, addr Address) string {
	a := m.mem.Deref(addr)

	switch cell := m.mem.Load(a).(type) {
	case StructureCell:
		header, ok := m.mem.LoadSlot(cell.Target).(FunctorCell)
		if !ok {
			panic(fmt.Sprintf("wam: mgu: %s does not hold a functor header", cell.Target))
		}

		arity := m.functors.Arity(header.Functor)
		name := m.functors.FunctorName(header.Functor)

		if arity == 0 {
			return name
		}

		args := make([]string, arity)
		for i := 1; i <= arity; i++ {
			args[i-1] = resolveTerm(m, cell.Target.Plus(i).Address())
		}

		return name + "(" + strings.Join(args, ",") + ")"
	case RefCell:
		// Deref only stops on a Ref when it is self-referential: an
		// unbound variable.
		return "?"
	default:
		panic(fmt.Sprintf("wam: mgu: heap inconsistency at %s: %s", a, cell))
	}
}
