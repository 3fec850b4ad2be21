package wam

// cell.go defines the tagged heap/register cell. Structure and Ref cells
// both carry a Slot, but they are distinct concrete types rather than a
// single "pointer cell" so that nothing downstream can confuse the two:
// a Structure cell always points at a functor header cell, a Ref cell
// always points at a (possibly self-referential) binding.

import (
	"fmt"

	"github.com/smoynes/wam/internal/term"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -output kind_string.go

// Kind identifies the concrete type of a Cell.
type Kind uint8

// Cell kinds.
const (
	KindStructure Kind = iota
	KindRef
	KindFunctor
	KindUninitialized
)

// Cell is the tagged sum stored in both the heap and the register file.
type Cell interface {
	Kind() Kind
	String() string

	// equal reports structural equality between two cells of the same
	// concrete type. Cells of different kinds are never equal.
	equal(Cell) bool
}

// StructureCell points at the functor header cell of a structure on the
// heap. Target is the slot of that functor header, which the instructions
// place immediately after the Structure cell itself; readers use Target
// directly, with no further offset.
type StructureCell struct{ Target Slot }

// NewStructureCell builds a StructureCell pointing at the functor header at
// slot header.
func NewStructureCell(header Slot) StructureCell { return StructureCell{Target: header} }

func (c StructureCell) Kind() Kind      { return KindStructure }
func (c StructureCell) String() string  { return fmt.Sprintf("Structure(%s)", c.Target) }
func (c StructureCell) equal(o Cell) bool {
	oc, ok := o.(StructureCell)
	return ok && oc.Target == c.Target
}

// RefCell is a reference cell. When its Target is the slot that holds the
// cell itself, it represents an unbound logic variable.
type RefCell struct{ Target Slot }

func (c RefCell) Kind() Kind     { return KindRef }
func (c RefCell) String() string { return fmt.Sprintf("Ref(%s)", c.Target) }
func (c RefCell) equal(o Cell) bool {
	oc, ok := o.(RefCell)
	return ok && oc.Target == c.Target
}

// FunctorCell is a functor header; it occupies a StructureCell's target slot
// on the heap, and the structure's arguments follow it.
type FunctorCell struct{ Functor term.Functor }

func (c FunctorCell) Kind() Kind     { return KindFunctor }
func (c FunctorCell) String() string { return fmt.Sprintf("Functor(%d)", uint32(c.Functor)) }
func (c FunctorCell) equal(o Cell) bool {
	oc, ok := o.(FunctorCell)
	return ok && oc.Functor == c.Functor
}

// uninitializedCell is the value of a register that has never been stored
// to. Loading it is a fatal programmer error, per spec.
type uninitializedCell struct{}

// Uninitialized is the sentinel value held by every register before it is
// first written.
var Uninitialized Cell = uninitializedCell{}

func (uninitializedCell) Kind() Kind     { return KindUninitialized }
func (uninitializedCell) String() string { return "Uninitialized" }
func (c uninitializedCell) equal(o Cell) bool {
	_, ok := o.(uninitializedCell)
	return ok
}
