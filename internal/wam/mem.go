package wam

// mem.go implements the heap and register file, and the load, store, bind,
// deref, and unify primitives of spec.md §4.1. The heap grows only by push;
// it is never garbage collected within a run, per the Non-goals.

import (
	"errors"
	"fmt"

	"github.com/smoynes/wam/internal/log"
	"github.com/smoynes/wam/internal/term"
)

// Memory owns the heap and a fixed-size register file, both vectors of
// tagged Cells. It also holds the functor table used to interpret
// FunctorCells, since Unify must know a functor's arity to push the correct
// number of argument pairs onto its work stack.
type Memory struct {
	heap      []Cell
	registers []Cell

	functors *term.Table
	log      *log.Logger
}

// NewMemory creates a Memory with numRegisters registers, all initialized to
// Uninitialized, and an empty heap. functors resolves the arity of any
// FunctorCell the heap comes to hold.
func NewMemory(numRegisters int, functors *term.Table, logger *log.Logger) *Memory {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	regs := make([]Cell, numRegisters)
	for i := range regs {
		regs[i] = Uninitialized
	}

	return &Memory{
		registers: regs,
		functors:  functors,
		log:       logger,
	}
}

func (mem *Memory) functorArity(f term.Functor) int {
	return mem.functors.Arity(f)
}

// NextSlot returns the slot the next Push will land on. It does not mutate
// the heap.
func (mem *Memory) NextSlot() Slot { return Slot(len(mem.heap)) }

// Push appends a cell to the heap.
func (mem *Memory) Push(cell Cell) {
	mem.heap = append(mem.heap, cell)
}

// HeapLen returns the number of cells on the heap. It is a debugging
// accessor; core algorithms never need the length directly, since NextSlot
// gives the insertion point.
func (mem *Memory) HeapLen() int { return len(mem.heap) }

// View returns a copy of the heap, for tests and trace sinks. Never used by
// the core algorithms.
func (mem *Memory) View() []Cell {
	view := make([]Cell, len(mem.heap))
	copy(view, mem.heap)

	return view
}

// Load reads the cell at a. Loading Uninitialized is a fatal programmer
// error: it means the compiler emitted an instruction referencing a
// register it never allocated.
func (mem *Memory) Load(a Address) Cell {
	cell := mem.loadRaw(a)
	if cell.Kind() == KindUninitialized {
		panic(fmt.Sprintf("wam: load from uninitialized cell at %s", a))
	}

	return cell
}

func (mem *Memory) loadRaw(a Address) Cell {
	if a.IsRegister() {
		return mem.registers[a.Register()]
	}

	return mem.heap[a.Slot()]
}

// Store writes cell at a.
func (mem *Memory) Store(a Address, cell Cell) {
	if a.IsRegister() {
		mem.registers[a.Register()] = cell
		return
	}

	mem.heap[a.Slot()] = cell
}

// LoadSlot, LoadRegister, StoreSlot, and StoreRegister are convenience
// wrappers that widen a Slot/Register into an Address before delegating to
// Load/Store, so callers working purely in one pointer flavor don't have to
// spell out the widen at every call site.
func (mem *Memory) LoadSlot(s Slot) Cell            { return mem.Load(s.Address()) }
func (mem *Memory) LoadRegister(r Register) Cell     { return mem.Load(r.Address()) }
func (mem *Memory) StoreSlot(s Slot, c Cell)         { mem.Store(s.Address(), c) }
func (mem *Memory) StoreRegister(r Register, c Cell) { mem.Store(r.Address(), c) }

// Deref chases Ref cells starting at a until it lands on a non-Ref cell or a
// self-referential Ref (an unbound variable), returning the final address.
// Uninitialized cells reached along the way are fatal, exactly as a direct
// Load would be.
func (mem *Memory) Deref(a Address) Address {
	for {
		cell := mem.Load(a)

		ref, ok := cell.(RefCell)
		if !ok {
			return a
		}

		next := ref.Target.Address()
		if next.equal(a) {
			return a
		}

		a = next
	}
}

// DerefSlot is Deref specialized to heap slots: a Ref cell's target is
// always a Slot, so chasing from a Slot never leaves the heap, and the
// result is expressible as a Slot without losing pointer-flavor
// information.
func (mem *Memory) DerefSlot(s Slot) Slot {
	return mem.Deref(s.Address()).Slot()
}

// ErrUnify is the recoverable failure returned when two terms cannot be
// unified because their functors disagree.
var ErrUnify = errors.New("wam: unify: functor mismatch")

// Bind makes an unbound variable point at the other side of a binding. At
// least one of a, b must currently hold a Ref cell; if both do, a is bound
// to b's value (the reference implementation's deterministic tie-break).
// Binding two non-Ref cells is a programmer error: the caller should have
// established that one side is unbound before calling Bind.
func (mem *Memory) Bind(a, b Address) {
	_, aIsRef := mem.Load(a).(RefCell)
	_, bIsRef := mem.Load(b).(RefCell)

	switch {
	case aIsRef:
		mem.Store(a, mem.Load(b))
		mem.log.Debug("bind", "dst", a, "src", b)
	case bIsRef:
		mem.Store(b, mem.Load(a))
		mem.log.Debug("bind", "dst", b, "src", a)
	default:
		panic(fmt.Sprintf("wam: bind: neither %s nor %s is a reference cell", a, b))
	}
}

// unifyFrame is one pending pair of addresses on the explicit unification
// stack. Using an explicit LIFO, rather than recursion, keeps deeply nested
// terms from blowing the Go call stack.
type unifyFrame struct {
	a, b Address
}

// Unify unifies the terms rooted at a and b, mutating the heap to bind
// variables as needed. It returns ErrUnify only when two structures'
// functors disagree; any other inconsistency (Deref landing on a Functor or
// Uninitialized cell) is a heap-consistency bug and panics.
func (mem *Memory) Unify(a, b Address) error {
	stack := []unifyFrame{{a, b}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Every popped pair is dereferenced after popping, not before
		// pushing: children may have been bound in the interim by an
		// earlier frame's Bind.
		d1 := mem.Deref(top.a)
		d2 := mem.Deref(top.b)

		if d1.equal(d2) {
			continue
		}

		c1, c2 := mem.Load(d1), mem.Load(d2)

		if _, ok := c1.(RefCell); ok {
			mem.Bind(d1, d2)
			continue
		}

		if _, ok := c2.(RefCell); ok {
			mem.Bind(d1, d2)
			continue
		}

		s1, ok1 := c1.(StructureCell)
		s2, ok2 := c2.(StructureCell)

		if !ok1 || !ok2 {
			panic(fmt.Sprintf("wam: unify: heap inconsistency at %s (%s), %s (%s)",
				d1, c1, d2, c2))
		}

		f1, okf1 := mem.LoadSlot(s1.Target).(FunctorCell)
		f2, okf2 := mem.LoadSlot(s2.Target).(FunctorCell)

		if !okf1 || !okf2 {
			panic(fmt.Sprintf("wam: unify: structure cell does not point at a functor header: %s, %s",
				s1.Target, s2.Target))
		}

		if f1.Functor != f2.Functor {
			mem.log.Warn("unify failed", "f1", f1.Functor, "f2", f2.Functor)
			return fmt.Errorf("%w: %d != %d", ErrUnify, f1.Functor, f2.Functor)
		}

		arity := mem.functorArity(f1.Functor)
		for i := 1; i <= arity; i++ {
			stack = append(stack, unifyFrame{
				a: s1.Target.Plus(i).Address(),
				b: s2.Target.Plus(i).Address(),
			})
		}
	}

	return nil
}
