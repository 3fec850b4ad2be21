package wam

// addr.go defines the three index flavors used to address cells: Register
// (an index into the register file), Slot (an index into the heap), and
// Address (the tagged union of the two). Keeping them as distinct types
// prevents confusing a heap position with a register number; Load/Store
// accept any of them, and deref preserves whichever flavor it was given.

import "fmt"

// Register is a stable index into the machine's register file.
type Register uint16

func (r Register) String() string { return fmt.Sprintf("R%d", uint16(r)) }

// Address widens a Register to the tagged pointer type.
func (r Register) Address() Address { return Address{kind: addrRegister, index: uint32(r)} }

// Slot is an index into the heap. It points at a specific heap cell.
type Slot uint32

func (s Slot) String() string { return fmt.Sprintf("H%d", uint32(s)) }

// Address widens a Slot to the tagged pointer type.
func (s Slot) Address() Address { return Address{kind: addrHeap, index: uint32(s)} }

// Plus returns the slot n cells after s.
func (s Slot) Plus(n int) Slot { return s + Slot(n) }

// addrKind distinguishes the two address spaces an Address may name.
type addrKind uint8

const (
	addrHeap addrKind = iota
	addrRegister
)

// Address is the tagged union of Slot and Register: every dereference
// target is expressible as one, and every Slot or Register can be widened
// into one via its Address method.
type Address struct {
	kind  addrKind
	index uint32
}

func (a Address) String() string {
	if a.kind == addrRegister {
		return Register(a.index).String()
	}

	return Slot(a.index).String()
}

// IsRegister reports whether a names a register.
func (a Address) IsRegister() bool { return a.kind == addrRegister }

// Slot reports the heap slot a names. Panics if a names a register: callers
// must check IsRegister first, since converting a register address to a
// slot silently would be a heap-consistency bug waiting to happen.
func (a Address) Slot() Slot {
	if a.kind != addrHeap {
		panic("wam: address is a register, not a heap slot")
	}

	return Slot(a.index)
}

// Register reports the register a names. Panics if a names a heap slot.
func (a Address) Register() Register {
	if a.kind != addrRegister {
		panic("wam: address is a heap slot, not a register")
	}

	return Register(a.index)
}

func (a Address) equal(b Address) bool {
	return a.kind == b.kind && a.index == b.index
}
