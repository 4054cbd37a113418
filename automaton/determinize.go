package automaton

import "github.com/dekarrin/kleenex/internal/collections"

// Determinize converts n to an equivalent DFA via subset construction
// (Dragon Book algorithm 3.20, adapted to a pivot with no epsilon moves).
// Subsets of NFA states are interned into DFA state identifiers in
// BFS-discovery order, so the start subset always becomes DFA state 0.
//
// Subsets are represented one of two ways depending on the NFA's state
// count, mirroring the explicit tie-break in the subset-encoding design:
// for n < 32, n < 64, or n < 128 a fixed-width bitmask (collections.
// BitSet32/BitSet64/BitSet128, whichever is the smallest that fits) is
// used as a plain comparable map key; for n >= 128 the determiniser falls
// back to a sorted-slice string key (collections.IntSet.Key), which costs
// more per operation but has no size ceiling. The encoding is chosen once
// per call and not mixed.
//
// If n's language is empty, the result is the canonical empty DFA: a
// single non-accepting state with no transitions.
func (n NFA[V]) Determinize() DFA[V] {
	if n.IsEmpty() {
		return DFA[V]{
			alphabet:  n.alphabet,
			alphaSet:  n.alphaSet,
			numStates: 1,
			initial:   0,
			final:     collections.NewIntSet(),
			trans:     map[int]map[V]int{},
		}
	}
	switch collections.BitSetWidthFor(n.numStates) {
	case 32:
		return determinizeWith[V](n, collections.NewBitSet32(n.Initial()...))
	case 64:
		return determinizeWith[V](n, collections.NewBitSet64(n.Initial()...))
	case 128:
		return determinizeWith[V](n, collections.NewBitSet128(n.Initial()...))
	default:
		return determinizeLarge(n)
	}
}

// bitset is satisfied by each of collections.BitSet32/64/128: a fixed-width,
// comparable (hence usable as a map key) bitmask of state indices.
type bitset[B any] interface {
	comparable
	With(state int) B
	Has(state int) bool
	Empty() bool
	Elements() []int
}

func determinizeWith[V Symbol, B bitset[B]](n NFA[V], start B) DFA[V] {
	seen := map[B]int{}
	var order []B

	idOf := func(set B) int {
		if id, ok := seen[set]; ok {
			return id
		}
		id := len(order)
		seen[set] = id
		order = append(order, set)
		return id
	}

	idOf(start)

	out := DFA[V]{
		alphabet: n.alphabet,
		alphaSet: n.alphaSet,
		initial:  0,
		final:    collections.NewIntSet(),
		trans:    map[int]map[V]int{},
	}

	for i := 0; i < len(order); i++ {
		subset := order[i]
		if subsetAccepts(subset, n.final) {
			out.final.Add(i)
		}
		row := map[V]int{}
		for _, sym := range n.alphabet {
			var next B
			for _, q := range subset.Elements() {
				for _, t := range n.Successors(q, sym) {
					next = next.With(t)
				}
			}
			if next.Empty() {
				continue
			}
			row[sym] = idOf(next)
		}
		out.trans[i] = row
	}
	out.numStates = len(order)
	return out
}

func subsetAccepts[B bitset[B]](subset B, final collections.IntSet) bool {
	for _, q := range final.Elements() {
		if subset.Has(q) {
			return true
		}
	}
	return false
}

func determinizeLarge[V Symbol](n NFA[V]) DFA[V] {
	seen := map[string]int{}
	var order []collections.IntSet

	idOf := func(set collections.IntSet) int {
		key := set.Key()
		if id, ok := seen[key]; ok {
			return id
		}
		id := len(order)
		seen[key] = id
		order = append(order, set)
		return id
	}

	start := collections.IntSetOf(n.Initial())
	idOf(start)

	out := DFA[V]{
		alphabet: n.alphabet,
		alphaSet: n.alphaSet,
		initial:  0,
		final:    collections.NewIntSet(),
		trans:    map[int]map[V]int{},
	}

	for i := 0; i < len(order); i++ {
		subset := order[i]
		if !subset.Intersection(n.final).Empty() {
			out.final.Add(i)
		}
		row := map[V]int{}
		for _, sym := range n.alphabet {
			next := collections.NewIntSet()
			for _, q := range subset.Elements() {
				for _, t := range n.Successors(q, sym) {
					next.Add(t)
				}
			}
			if next.Empty() {
				continue
			}
			nextID := idOf(next)
			row[sym] = nextID
		}
		out.trans[i] = row
	}
	out.numStates = len(order)
	return out
}
