package term

// Builder is optional sugar over a Table for assembling Term literals. It is
// not part of the core collaboration the spec describes (callers remain
// free to build Variable/Structure values directly, and to intern functors
// through a Table themselves); it exists only so tests and worked examples
// in this module aren't forced to spell out Functor interning at every call
// site, the same convenience the original prototype's term!/structure!
// macros provided over raw struct literals.
type Builder struct {
	tbl *Table
}

// NewBuilder returns a Builder that interns functors through tbl.
func NewBuilder(tbl *Table) *Builder {
	return &Builder{tbl: tbl}
}

// Var returns a Variable term with the given name.
func (b *Builder) Var(name string) Term {
	return Variable{Name: name}
}

// Struct interns name/len(args) as a functor and returns a Structure
// applying it to args.
func (b *Builder) Struct(name string, args ...Term) Term {
	f := b.tbl.Functor(name, len(args))
	return NewStructure(b.tbl, f, args...)
}

// Atom is sugar for Struct(name) — a nullary structure.
func (b *Builder) Atom(name string) Term {
	return b.Struct(name)
}
