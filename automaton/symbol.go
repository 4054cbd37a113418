// Package automaton implements nondeterministic and deterministic finite
// automata over a generic, totally ordered alphabet, with dense integer
// state identity. It provides the constructors, predicates, and closure
// operations (union, intersection, concatenation, Kleene star, bounded
// repetition, complement, reversal, reachability trimming) needed to treat
// the regular languages as an algebra, plus the subset-construction
// determiniser and the Brzozowski minimiser.
//
// States are never heap nodes linked by pointers; they are indices into
// [0, n) and every transformation that adds, removes, or renumbers states
// does so by remapping those indices, the same way the LALR automaton
// package this one descends from numbers its parser states.
package automaton

import "cmp"

// Symbol is the constraint satisfied by an automaton's alphabet members. It
// must be comparable (for use as a map key in the transition table) and
// totally ordered (so that alphabets and subsets have a canonical,
// deterministic iteration order for things like Graphviz emission and
// transition-table dumps).
type Symbol interface {
	cmp.Ordered
}
