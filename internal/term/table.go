// Package term implements the data model of first-order terms: interned
// functors and immutable variables and structures built from them.
//
// A Table interns symbol names and (name, arity) functor pairs to compact
// handles. It has process-wide identity in the sense the spec describes: it
// is effectively append-only, and a single Table is normally shared by every
// term a program builds so that equal functors compare as equal handles. It
// is not safe for concurrent use without external synchronization; callers
// embedding this package in a multithreaded host should guard a shared Table
// with a mutex or keep one Table per goroutine.
package term

import (
	"fmt"

	"github.com/smoynes/wam/internal/log"
)

// Symbol is an opaque handle identifying an interned name. Equality is
// handle equality.
type Symbol uint32

// Functor is an opaque handle identifying an interned (name, arity) pair.
// Equality is handle equality.
type Functor uint32

// Table interns symbol names and functors to compact handles.
type Table struct {
	symbols   []string
	symbolIdx map[string]Symbol

	functors   []functorData
	functorIdx map[functorData]Functor
}

type functorData struct {
	name  Symbol
	arity uint32
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{
		symbolIdx:  make(map[string]Symbol),
		functorIdx: make(map[functorData]Functor),
	}
}

// Intern returns the handle for name, creating one if this is the first
// occurrence.
func (t *Table) Intern(name string) Symbol {
	if sym, ok := t.symbolIdx[name]; ok {
		return sym
	}

	sym := Symbol(len(t.symbols))
	t.symbols = append(t.symbols, name)
	t.symbolIdx[name] = sym

	log.DefaultLogger().Debug("intern", "symbol", sym, "name", name)

	return sym
}

// Name returns the interned string for a symbol. Panics if sym is out of
// range for this Table: an unknown handle is a programmer error, not a
// recoverable condition. A handle from another Table that happens to be in
// range is not detected.
func (t *Table) Name(sym Symbol) string {
	if int(sym) >= len(t.symbols) {
		panic(fmt.Sprintf("term: unknown symbol handle %d", sym))
	}

	return t.symbols[sym]
}

// Functor interns a (name, arity) pair, returning the same handle for every
// call with equal arguments.
func (t *Table) Functor(name string, arity int) Functor {
	data := functorData{name: t.Intern(name), arity: uint32(arity)}
	if f, ok := t.functorIdx[data]; ok {
		return f
	}

	f := Functor(len(t.functors))
	t.functors = append(t.functors, data)
	t.functorIdx[data] = f

	log.DefaultLogger().Debug("functor", "handle", f, "name", name, "arity", arity)

	return f
}

// FunctorName returns the interned name of a functor.
func (t *Table) FunctorName(f Functor) string {
	return t.Name(t.functorData(f).name)
}

// Arity returns the arity of a functor.
func (t *Table) Arity(f Functor) int {
	return int(t.functorData(f).arity)
}

// FunctorString renders a functor as "name/arity".
func (t *Table) FunctorString(f Functor) string {
	d := t.functorData(f)
	return fmt.Sprintf("%s/%d", t.Name(d.name), d.arity)
}

func (t *Table) functorData(f Functor) functorData {
	if int(f) >= len(t.functors) {
		panic(fmt.Sprintf("term: unknown functor handle %d", f))
	}

	return t.functors[f]
}
