package wam

// dump.go renders heap cells as the "H3: Ref(H3)"-style text the tutorial's
// worked examples and this module's tests compare against. Cell.String
// alone can't render a FunctorCell's name/arity (a Cell has no table
// reference), so FormatCell takes the Machine that owns the functor table.

import "fmt"

// FormatCell renders a single cell, resolving any functor name/arity
// through m's functor table.
func (m *Machine) FormatCell(c Cell) string {
	if fc, ok := c.(FunctorCell); ok {
		return fmt.Sprintf("Functor(%s)", m.functors.FunctorString(fc.Functor))
	}

	return c.String()
}

// DumpHeap renders every heap cell as "H<i>: <cell>", in slot order.
func (m *Machine) DumpHeap() []string {
	view := m.mem.View()
	lines := make([]string, len(view))

	for i, c := range view {
		lines[i] = fmt.Sprintf("%s: %s", Slot(i), m.FormatCell(c))
	}

	return lines
}
