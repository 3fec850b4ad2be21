// Package compile implements the two term compilers: Query and Program.
// Both lower a term.Structure into a stream of wam.Ops instructions against
// a flat register numbering that both passes derive independently but
// deterministically from the same term.
package compile

import (
	"github.com/smoynes/wam/internal/log"
	"github.com/smoynes/wam/internal/term"
	"github.com/smoynes/wam/internal/wam"
)

// allocator assigns registers to the direct children of a structure,
// register 1 upward, with register 0 reserved for the root term a caller
// compiles into. Variables sharing a name share a register; every structure
// occurrence gets its own, freshly allocated register regardless of content,
// since a repeated substructure is a different term occurrence even when it
// happens to look the same.
type allocator struct {
	next wam.Register
	vars map[string]wam.Register
}

func newAllocator() *allocator {
	return &allocator{
		next: 1,
		vars: make(map[string]wam.Register),
	}
}

func (a *allocator) register(t term.Term) wam.Register {
	if v, ok := t.(term.Variable); ok {
		if r, ok := a.vars[v.Name]; ok {
			return r
		}

		r := a.next
		a.next++
		a.vars[v.Name] = r

		log.DefaultLogger().Debug("allocate", "register", r, "variable", v.Name)

		return r
	}

	r := a.next
	a.next++

	log.DefaultLogger().Debug("allocate", "register", r, "structure", true)

	return r
}

// Query compiles root, a query term, against ops, building it onto the heap
// into Register(0). Query instructions never fail: put_structure,
// set_variable, and set_value are unconditional heap writes.
func Query(ops wam.Ops, root term.Structure) {
	q := &queryCompiler{
		ops:       ops,
		alloc:     newAllocator(),
		generated: make(map[wam.Register]bool),
	}

	q.structure(root, wam.Register(0))
}

type queryCompiler struct {
	ops       wam.Ops
	alloc     *allocator
	generated map[wam.Register]bool
}

// structure builds s bottom-up: children are allocated registers, any
// structure children are recursively built first (queries assemble
// children before the parent that references them), and only then does the
// parent's own put_structure/set_* sequence get emitted.
func (q *queryCompiler) structure(s term.Structure, into wam.Register) {
	regs := make([]wam.Register, len(s.Children))
	for i, c := range s.Children {
		regs[i] = q.alloc.register(c)
	}

	for i, c := range s.Children {
		sub, ok := c.(term.Structure)
		if !ok {
			continue
		}

		if !q.generated[regs[i]] {
			q.generated[regs[i]] = true
			q.structure(sub, regs[i])
		}
	}

	q.ops.PutStructure(s.Functor, into)

	for i, c := range s.Children {
		if _, ok := c.(term.Structure); ok {
			// Always already generated: built recursively above.
			q.ops.SetValue(regs[i])
			continue
		}

		if !q.generated[regs[i]] {
			q.generated[regs[i]] = true
			q.ops.SetVariable(regs[i])
		} else {
			q.ops.SetValue(regs[i])
		}
	}
}

// Program compiles root, a program term, against ops, matching it top-down
// against whatever Register(0) currently holds. It returns the first
// functor-mismatch error encountered, short-circuiting the remainder of the
// instruction stream, per the recoverable-failure error category.
func Program(ops wam.Ops, root term.Structure) error {
	p := &programCompiler{
		ops:       ops,
		alloc:     newAllocator(),
		generated: make(map[wam.Register]bool),
	}

	return p.structure(root, wam.Register(0))
}

type programCompiler struct {
	ops       wam.Ops
	alloc     *allocator
	generated map[wam.Register]bool
}

// structure matches s top-down against into: it emits get_structure and the
// unify_* sequence for s's direct children first, then recurses into each
// child structure, in order, to emit that child's own block. This mirrors
// how a program is matched against an already-built query: the parent's
// shape is confirmed before its children are inspected.
func (p *programCompiler) structure(s term.Structure, into wam.Register) error {
	regs := make([]wam.Register, len(s.Children))
	for i, c := range s.Children {
		regs[i] = p.alloc.register(c)
	}

	if err := p.ops.GetStructure(s.Functor, into); err != nil {
		log.DefaultLogger().Warn("program: get_structure failed", "register", into, "err", err)
		return err
	}

	for i, c := range s.Children {
		if _, ok := c.(term.Structure); ok {
			if err := p.ops.UnifyVariable(regs[i]); err != nil {
				return err
			}

			p.generated[regs[i]] = true

			continue
		}

		if !p.generated[regs[i]] {
			p.generated[regs[i]] = true

			if err := p.ops.UnifyVariable(regs[i]); err != nil {
				return err
			}
		} else {
			if err := p.ops.UnifyValue(regs[i]); err != nil {
				log.DefaultLogger().Warn("program: unify_value failed", "register", regs[i], "err", err)
				return err
			}
		}
	}

	for i, c := range s.Children {
		sub, ok := c.(term.Structure)
		if !ok {
			continue
		}

		if err := p.structure(sub, regs[i]); err != nil {
			return err
		}
	}

	return nil
}
