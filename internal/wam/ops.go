package wam

// ops.go implements the M1 instruction set (spec.md §4.2) as methods of
// Machine. Every operation leaves the heap invariants holding: a Structure
// cell's target slot always holds a Functor cell, and an unbound variable is
// always a self-referential Ref cell.

import (
	"fmt"

	"github.com/smoynes/wam/internal/term"
)

// Ops is the capability the compiler emits instructions against: the real
// Machine mutating its own Memory, or a test Recorder capturing the
// instruction stream for assertions.
type Ops interface {
	PutStructure(f term.Functor, r Register)
	SetVariable(r Register)
	SetValue(r Register)

	GetStructure(f term.Functor, r Register) error
	UnifyVariable(r Register) error
	UnifyValue(r Register) error
}

// PutStructure implements put_structure(f, r): allocate a structure header
// on the heap and point register r at it. Write mode only.
func (m *Machine) PutStructure(f term.Functor, r Register) {
	header := m.mem.NextSlot()
	m.mem.Push(NewStructureCell(header + 1))
	m.mem.Push(FunctorCell{Functor: f})
	m.mem.StoreRegister(r, NewStructureCell(header+1))

	m.trace("put_structure", &f, r)
}

// SetVariable implements set_variable(r): push a fresh self-referential Ref
// cell (a new unbound variable) and store it in r. Write mode only.
func (m *Machine) SetVariable(r Register) {
	s := m.mem.NextSlot()
	m.mem.Push(RefCell{Target: s})
	m.mem.StoreRegister(r, RefCell{Target: s})

	m.trace("set_variable", nil, r)
}

// SetValue implements set_value(r): push a copy of register r's current
// contents onto the heap. Write mode only.
func (m *Machine) SetValue(r Register) {
	m.mem.Push(m.mem.LoadRegister(r))

	m.trace("set_value", nil, r)
}

// GetStructure implements get_structure(f, r). It may be called in either
// mode: the register's dereferenced cell determines whether a new structure
// is built (the register held an unbound variable) or an existing one is
// matched (switching the machine into Read mode for the unify_* calls that
// follow).
func (m *Machine) GetStructure(f term.Functor, r Register) error {
	addr := m.mem.Deref(r.Address())

	switch cell := m.mem.Load(addr).(type) {
	case RefCell:
		header := m.mem.NextSlot()
		m.mem.Push(NewStructureCell(header + 1))
		m.mem.Push(FunctorCell{Functor: f})
		m.mem.Bind(addr, header.Address())
		m.mode = writeMode()

		m.trace("get_structure", &f, r)

		return nil
	case StructureCell:
		if header, ok := m.mem.LoadSlot(cell.Target).(FunctorCell); ok && header.Functor == f {
			m.mode = readMode(cell.Target + 1)

			m.trace("get_structure", &f, r)

			return nil
		}

		return fmt.Errorf("%w: get_structure: functor mismatch at %s", ErrUnify, r)
	case FunctorCell:
		// r did not name a root: defensive, since a well-formed compile
		// never emits get_structure against a bare functor header.
		return fmt.Errorf("%w: get_structure: %s is a functor header, not a root", ErrUnify, r)
	default:
		panic(fmt.Sprintf("wam: get_structure: unexpected cell %T at %s", cell, addr))
	}
}

// UnifyVariable implements unify_variable(r). In Read mode it copies the
// cell under inspection into r and advances the cursor; in Write mode it
// allocates a fresh unbound variable, exactly like set_variable.
func (m *Machine) UnifyVariable(r Register) error {
	switch m.mode.kind {
	case modeKindRead:
		m.mem.StoreRegister(r, m.mem.LoadSlot(m.mode.next))
		m.mode = m.mode.advance()
	case modeKindWrite:
		s := m.mem.NextSlot()
		m.mem.Push(RefCell{Target: s})
		m.mem.StoreRegister(r, RefCell{Target: s})
	}

	m.trace("unify_variable", nil, r)

	return nil
}

// UnifyValue implements unify_value(r). In Read mode it unifies register r
// against the cell under inspection and advances the cursor, propagating any
// functor mismatch; in Write mode it simply pushes r's value.
func (m *Machine) UnifyValue(r Register) error {
	switch m.mode.kind {
	case modeKindRead:
		next := m.mode.next
		m.mode = m.mode.advance()

		if err := m.mem.Unify(r.Address(), next.Address()); err != nil {
			return fmt.Errorf("unify_value: %w", err)
		}
	case modeKindWrite:
		m.mem.Push(m.mem.LoadRegister(r))
	}

	m.trace("unify_value", nil, r)

	return nil
}
