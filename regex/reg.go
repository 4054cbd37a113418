// Package regex implements regular expressions over a generic alphabet:
// the REG tree type, an algebraic simplifier that canonicalises it, a
// recursive-descent parser for the classical Kleene-algebra surface
// syntax, a Thompson-style constructor converting a REG to an
// automaton.NFA, and a state-elimination algorithm converting an
// automaton.NFA back to a REG.
package regex

import (
	"sort"

	"github.com/dekarrin/kleenex/automaton"
)

// Symbol is the alphabet constraint, shared with the automaton package.
type Symbol = automaton.Symbol

// kind discriminates the variant a node holds.
type kind int

const (
	kindEmpty kind = iota
	kindEpsilon
	kindDot
	kindLetter
	kindUnion
	kindConcat
	kindRepeat
)

// REG is a regular expression tree over an alphabet of V: the empty
// language, the empty word, any single symbol (Dot), a specific symbol
// (Letter), a union of sub-expressions, a concatenation of
// sub-expressions, or a bounded repetition of a sub-expression.
//
// The zero value is not valid; use one of the constructors below.
type REG[V Symbol] struct {
	alphabet []V
	alphaSet map[V]bool

	k        kind
	letter   V
	children []REG[V] // Union (>=2, unordered set semantics) or Concat (ordered)
	repeated *REG[V]  // Repeat's single child
	min, max int       // Repeat's bounds; max < 0 means unbounded
}

func newAlphaSet[V Symbol](alphabet []V) (sorted []V, set map[V]bool) {
	set = make(map[V]bool, len(alphabet))
	for _, v := range alphabet {
		set[v] = true
	}
	sorted = make([]V, 0, len(set))
	for v := range set {
		sorted = append(sorted, v)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, set
}

func bare[V Symbol](alphabet []V, k kind) REG[V] {
	sorted, set := newAlphaSet(alphabet)
	return REG[V]{alphabet: sorted, alphaSet: set, k: k}
}

// NewEmpty returns the REG recognizing the empty language, over alphabet.
func NewEmpty[V Symbol](alphabet []V) REG[V] { return bare(alphabet, kindEmpty) }

// NewEpsilon returns the REG recognizing {epsilon}.
func NewEpsilon[V Symbol](alphabet []V) REG[V] { return bare(alphabet, kindEpsilon) }

// NewDot returns the REG recognizing any single symbol of alphabet.
func NewDot[V Symbol](alphabet []V) REG[V] { return bare(alphabet, kindDot) }

// NewLetter returns the REG recognizing exactly the single symbol v, which
// must be a member of alphabet.
func NewLetter[V Symbol](alphabet []V, v V) REG[V] {
	r := bare(alphabet, kindLetter)
	r.letter = v
	return r
}

// Union returns the REG recognizing the union of the given sub-expressions'
// languages. It does not simplify; call Simplify for a canonical form.
func Union[V Symbol](parts ...REG[V]) REG[V] {
	r := bare[V](mergedAlphabets(parts), kindUnion)
	r.children = append(r.children, parts...)
	return r
}

// Concat returns the REG recognizing the concatenation of the given
// sub-expressions' languages, in order. It does not simplify.
func Concat[V Symbol](parts ...REG[V]) REG[V] {
	r := bare[V](mergedAlphabets(parts), kindConcat)
	r.children = append(r.children, parts...)
	return r
}

// Repeat returns the REG recognizing the union over i in [lo, hi] of
// child^i. hi < 0 means unbounded (Kleene-style). It does not simplify.
func Repeat[V Symbol](child REG[V], lo, hi int) REG[V] {
	r := bare(child.alphabet, kindRepeat)
	c := child
	r.repeated = &c
	r.min = lo
	r.max = hi
	return r
}

func mergedAlphabets[V Symbol](parts []REG[V]) []V {
	set := map[V]bool{}
	for _, p := range parts {
		for _, v := range p.alphabet {
			set[v] = true
		}
	}
	out := make([]V, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns r's alphabet, sorted ascending.
func (r REG[V]) Alphabet() []V {
	out := make([]V, len(r.alphabet))
	copy(out, r.alphabet)
	return out
}

// IsEmpty reports whether r is the Empty (bottom) node, i.e. the language
// void of every word including the empty word. This is a shallow
// structural check; simplify r first if you want it to be exact for every
// equivalent tree shape.
func (r REG[V]) IsEmpty() bool { return r.k == kindEmpty }

// IsEpsilon reports whether r is the Epsilon node.
func (r REG[V]) IsEpsilon() bool { return r.k == kindEpsilon }
