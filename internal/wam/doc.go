// Package wam implements the abstract machine: a tagged-cell heap, a
// register file, the six M1 instructions, and the iterative unification
// algorithm that ties them together.
//
// A Machine owns its own Memory and never shares it with another Machine.
// Callers build one Machine per query+program cycle, drive it via the Ops
// interface (normally by compiling terms with the internal/compile package),
// and read the result off the heap with MGU.
//
// # Worked example
//
// Compiling the query p(Z, h(Z, W), f(W)) against a freshly created
// 5-register Machine and executing the resulting instruction stream leaves
// the heap laid out as:
//
//	H0:  Structure(H1)
//	H1:  Functor(h/2)
//	H2:  Ref(H2)
//	H3:  Ref(H3)
//	H4:  Structure(H5)
//	H5:  Functor(f/1)
//	H6:  Ref(H3)
//	H7:  Structure(H8)
//	H8:  Functor(p/3)
//	H9:  Ref(H2)
//	H10: Structure(H1)
//	H11: Structure(H5)
//
// Register 0 holds Structure(H8): the built term's root. Running a program
// compiled from a unifiable term against the same Machine, in Read mode,
// binds the query's variables; afterwards Machine.MGU(Register(0).Address())
// renders the most general unifier as text.
package wam
