// Package kleenex is a library of regular languages over a generic
// alphabet, represented three ways - as a nondeterministic finite
// automaton (automaton.NFA), a deterministic finite automaton
// (automaton.DFA), or a regular expression tree (regex.REG) - together
// with constructive conversions between all three and the closure
// operations (union, intersection, concatenation, Kleene star, bounded
// repetition, complement, reversal) that make them useful as a single
// algebra rather than three unrelated data types.
package kleenex

import (
	"fmt"

	"github.com/dekarrin/kleenex/automaton"
	"github.com/dekarrin/kleenex/regex"
)

// Symbol is the alphabet constraint shared by every representation in
// this package.
type Symbol = automaton.Symbol

// repr discriminates which concrete representation an Automaton wraps.
type repr int

const (
	reprNFA repr = iota
	reprDFA
	reprREG
)

// Automaton is a regular language over an alphabet of V, represented by
// whichever of NFA, DFA, or REG it was built from. Operations that need
// a particular representation convert on demand; the zero value is not
// valid, use one of the From* constructors.
type Automaton[V Symbol] struct {
	kind repr
	nfa  automaton.NFA[V]
	dfa  automaton.DFA[V]
	reg  regex.REG[V]
}

// FromNFA wraps n.
func FromNFA[V Symbol](n automaton.NFA[V]) Automaton[V] { return Automaton[V]{kind: reprNFA, nfa: n} }

// FromDFA wraps d.
func FromDFA[V Symbol](d automaton.DFA[V]) Automaton[V] { return Automaton[V]{kind: reprDFA, dfa: d} }

// FromRegex wraps r.
func FromRegex[V Symbol](r regex.REG[V]) Automaton[V] { return Automaton[V]{kind: reprREG, reg: r} }

// ParseRegex parses pattern with regex.Parse and wraps the result.
func ParseRegex(pattern string, alphabet []rune) (Automaton[rune], error) {
	r, err := regex.Parse(pattern, alphabet)
	if err != nil {
		return Automaton[rune]{}, err
	}
	return FromRegex(r), nil
}

// ToNFA returns the NFA representation of a's language, constructing it
// from whichever representation a actually holds.
func (a Automaton[V]) ToNFA() automaton.NFA[V] {
	switch a.kind {
	case reprNFA:
		return a.nfa
	case reprDFA:
		return a.dfa.ToNFA()
	case reprREG:
		return a.reg.ToNFA()
	default:
		panic("kleenex: invalid Automaton")
	}
}

// ToDFA returns the (subset-construction) DFA representation of a's
// language.
func (a Automaton[V]) ToDFA() automaton.DFA[V] {
	if a.kind == reprDFA {
		return a.dfa
	}
	return a.ToNFA().Determinize()
}

// ToRegex returns a REG recognizing a's language, built by state
// elimination over a's NFA representation when a does not already hold
// one.
func (a Automaton[V]) ToRegex() regex.REG[V] {
	if a.kind == reprREG {
		return a.reg
	}
	return regex.Eliminate(a.ToNFA())
}

// Run reports whether word is accepted by a's language.
func (a Automaton[V]) Run(word []V) bool {
	if a.kind == reprDFA {
		return a.dfa.Run(word)
	}
	return a.ToNFA().Run(word)
}

// IsEmpty reports whether a's language is empty.
func (a Automaton[V]) IsEmpty() bool { return a.ToNFA().IsEmpty() }

// Minimize returns a's language as a minimal DFA, via Brzozowski's
// double-reversal-and-determinize construction.
func (a Automaton[V]) Minimize() automaton.DFA[V] {
	return automaton.Minimize(a.ToDFA())
}

// Equivalent reports whether a and other recognize the same language.
func (a Automaton[V]) Equivalent(other Automaton[V]) bool {
	return a.ToNFA().Equivalent(other.ToNFA())
}

// Contains reports whether a's language is a superset of other's.
func (a Automaton[V]) Contains(other Automaton[V]) bool {
	return a.ToNFA().Contains(other.ToNFA())
}

// Ordering is the result of comparing two languages by set inclusion:
// unlike a total order, two languages can be Incomparable (neither is a
// subset of the other).
type Ordering int

const (
	Incomparable Ordering = iota
	Equal
	Subset
	Superset
)

func (o Ordering) String() string {
	switch o {
	case Equal:
		return "Equal"
	case Subset:
		return "Subset"
	case Superset:
		return "Superset"
	default:
		return "Incomparable"
	}
}

// Compare orders a and other by language inclusion, the partial order
// the original Rust implementation derives from `contains` (`self <=
// other` iff `other.contains(self)`): Subset means L(a) is a strict
// subset of L(other), Superset the reverse, Equal means the
// languages coincide, and Incomparable means neither contains the
// other.
func (a Automaton[V]) Compare(other Automaton[V]) Ordering {
	aSubOther := other.Contains(a)
	bSubA := a.Contains(other)
	switch {
	case aSubOther && bSubA:
		return Equal
	case aSubOther:
		return Subset
	case bSubA:
		return Superset
	default:
		return Incomparable
	}
}

// Unite returns the union of a and other's languages.
func (a Automaton[V]) Unite(other Automaton[V]) Automaton[V] {
	return FromNFA(a.ToNFA().Unite(other.ToNFA()))
}

// Concatenate returns the concatenation of a and other's languages.
func (a Automaton[V]) Concatenate(other Automaton[V]) Automaton[V] {
	return FromNFA(a.ToNFA().Concatenate(other.ToNFA()))
}

// Intersect returns the intersection of a and other's languages.
func (a Automaton[V]) Intersect(other Automaton[V]) Automaton[V] {
	return FromNFA(a.ToNFA().Intersect(other.ToNFA()))
}

// Difference returns a's language minus other's.
func (a Automaton[V]) Difference(other Automaton[V]) Automaton[V] {
	return FromNFA(a.ToNFA().Difference(other.ToNFA()))
}

// Negate returns the complement of a's language relative to Sigma*.
func (a Automaton[V]) Negate() Automaton[V] {
	return FromNFA(a.ToNFA().Negate())
}

// Kleene returns the Kleene star of a's language.
func (a Automaton[V]) Kleene() Automaton[V] {
	return FromNFA(a.ToNFA().Kleene())
}

// Repeat returns the language of words formed by concatenating between
// lo and hi copies of a's language, inclusive. hi < 0 means unbounded.
func (a Automaton[V]) Repeat(lo, hi int) Automaton[V] {
	return FromNFA(a.ToNFA().Repeat(lo, hi))
}

// Reverse returns the language of every word in a's language, reversed.
func (a Automaton[V]) Reverse() Automaton[V] {
	return FromNFA(a.ToNFA().Reverse())
}

// Graphviz renders a's NFA representation as a Graphviz "dot" digraph.
func (a Automaton[V]) Graphviz() string {
	return a.ToNFA().Graphviz()
}

// String gives a compact description of a, showing the underlying
// representation and its kind.
func (a Automaton[V]) String() string {
	switch a.kind {
	case reprNFA:
		return fmt.Sprintf("Automaton(NFA: %v)", a.nfa)
	case reprDFA:
		return fmt.Sprintf("Automaton(DFA: %v)", a.dfa)
	case reprREG:
		return fmt.Sprintf("Automaton(REG: %v)", a.reg)
	default:
		return "Automaton(invalid)"
	}
}
